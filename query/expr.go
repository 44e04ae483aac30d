// Package query compiles XPath expressions and classifies their results
// into scalars and node sets, exposing both uniformly as lazy string
// sequences.
package query

import (
	"fmt"
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/telefunkenvf14/xmlkit/debug"
)

// Expr is a compiled XPath expression. Compile once, evaluate any number
// of times; an Expr is immutable after compilation.
type Expr struct {
	src  string
	expr *xpath.Expr
}

// Compile compiles src into a reusable expression.
func Compile(src string) (*Expr, error) {
	x, err := xpath.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("could not compile xpath %q: %w", src, err)
	}
	return &Expr{src: src, expr: x}, nil
}

// CompileNS compiles src against the given prefix to namespace URI
// bindings. A nil or empty binding table behaves like Compile.
func CompileNS(src string, ns map[string]string) (*Expr, error) {
	if len(ns) == 0 {
		return Compile(src)
	}
	x, err := xpath.CompileWithNS(src, ns)
	if err != nil {
		return nil, fmt.Errorf("could not compile xpath %q: %w", src, err)
	}
	return &Expr{src: src, expr: x}, nil
}

// String returns the expression source.
func (e *Expr) String() string {
	return e.src
}

// Eval evaluates the expression against root once and classifies the
// result. The returned Result's kind is fixed for its lifetime; a node
// set is not iterated until its sequence is consumed.
func (e *Expr) Eval(root *xmlquery.Node) (*Result, error) {
	v := e.expr.Evaluate(xmlquery.CreateXPathNavigator(root))
	if debug.Query() {
		debug.Logf("eval %q gave %T\n", e.src, v)
	}
	switch v := v.(type) {
	case string:
		return &Result{kind: ScalarString, scalar: v}, nil
	case float64:
		return &Result{kind: ScalarNumber, scalar: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case bool:
		return &Result{kind: ScalarBool, scalar: strconv.FormatBool(v)}, nil
	case *xpath.NodeIterator:
		return &Result{kind: NodeSet, expr: e, root: root}, nil
	default:
		return nil, &UnsupportedResultTypeError{Expr: e.src, Type: fmt.Sprintf("%T", v)}
	}
}

// SelectAll returns the nodes selected by the expression, in document
// order. Scalar expressions select nothing.
func (e *Expr) SelectAll(root *xmlquery.Node) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(root, e.expr)
}
