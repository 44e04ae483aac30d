package query

import (
	"iter"

	"github.com/antchfx/xmlquery"
)

// Kind classifies an evaluated expression result.
type Kind int

const (
	ScalarString Kind = iota
	ScalarNumber
	ScalarBool
	NodeSet
)

func (k Kind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarNumber:
		return "number"
	case ScalarBool:
		return "boolean"
	case NodeSet:
		return "node-set"
	}
	return "unknown"
}

// Result is the classified outcome of evaluating an Expr: one of three
// scalar kinds, or a node set. The kind never changes after evaluation.
//
// A node-set Result holds a live reference to the evaluated document;
// consuming its sequence after the document has been invalidated is
// undefined.
type Result struct {
	kind   Kind
	scalar string

	// node-set only
	expr *Expr
	root *xmlquery.Node
}

// Kind returns the result's classification.
func (r *Result) Kind() Kind {
	return r.kind
}

// Strings returns the result as a lazy, finite, restartable sequence.
// Scalar results yield exactly one stringified element. Node sets yield
// each node's text value in document order; stopping early does not
// visit the remaining nodes, and iterating again re-selects from the
// compiled expression.
func (r *Result) Strings() iter.Seq[string] {
	if r.kind != NodeSet {
		return func(yield func(string) bool) {
			yield(r.scalar)
		}
	}
	return func(yield func(string) bool) {
		it := r.expr.expr.Select(xmlquery.CreateXPathNavigator(r.root))
		for it.MoveNext() {
			if !yield(it.Current().Value()) {
				return
			}
		}
	}
}

// First returns the first element of the sequence, or false when a node
// set is empty.
func (r *Result) First() (string, bool) {
	for s := range r.Strings() {
		return s, true
	}
	return "", false
}
