package xmlkit

import (
	"errors"
	"fmt"

	"github.com/antchfx/xmlquery"

	"github.com/telefunkenvf14/xmlkit/debug"
	"github.com/telefunkenvf14/xmlkit/query"
)

// NodeNotFoundError reports a patch expression that matched no node.
type NodeNotFoundError struct {
	Expr string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("no node found for xpath %q", e.Expr)
}

// Poke overwrites the value of the single node selected by src. Zero
// matches fail with NodeNotFoundError; more than one match is also an
// error. The document is returned for chaining.
func (d *Document) Poke(src, value string) (*Document, error) {
	return d.PokeNS(src, nil, value)
}

// PokeNS is Poke with prefix to namespace URI bindings consulted during
// node resolution.
func (d *Document) PokeNS(src string, ns map[string]string, value string) (*Document, error) {
	e, err := query.CompileNS(src, ns)
	if err != nil {
		return nil, err
	}
	nodes := e.SelectAll(d.root)
	switch len(nodes) {
	case 0:
		return nil, &NodeNotFoundError{Expr: src}
	case 1:
	default:
		return nil, fmt.Errorf("xpath %q matches %d nodes, want exactly one", src, len(nodes))
	}
	if debug.Poke() {
		debug.Logf("poke %q = %q\n", src, value)
	}
	if err := setNodeValue(nodes[0], value); err != nil {
		return nil, fmt.Errorf("could not set %q: %w", src, err)
	}
	return d, nil
}

// setNodeValue rewrites the value carried by n. Attribute nodes handed
// out by xmlquery selection are detached copies, so the owning
// element's attribute is updated instead.
func setNodeValue(n *xmlquery.Node, value string) error {
	switch n.Type {
	case xmlquery.AttributeNode:
		owner := n.Parent
		if owner == nil {
			return errors.New("attribute node has no owning element")
		}
		for i := range owner.Attr {
			if owner.Attr[i].Name.Local == n.Data {
				owner.Attr[i].Value = value
				return nil
			}
		}
		return fmt.Errorf("attribute %q not present on element <%s>", n.Data, owner.Data)
	case xmlquery.ElementNode:
		text := &xmlquery.Node{Type: xmlquery.TextNode, Data: value, Parent: n}
		n.FirstChild = text
		n.LastChild = text
		return nil
	case xmlquery.TextNode, xmlquery.CharDataNode:
		n.Data = value
		return nil
	default:
		return fmt.Errorf("cannot set value on node type %v", n.Type)
	}
}

// PokeFile loads the XML file at path, rewrites the single node
// selected by src, and writes the document back to the same path.
//
// The operation is read-modify-write with no atomic replace: a
// concurrent writer racing this call is a lost-update hazard the caller
// must rule out externally.
func PokeFile(path, src, value string) error {
	return PokeFileNS(path, src, nil, value)
}

// PokeFileNS is PokeFile with namespace bindings.
func PokeFileNS(path, src string, ns map[string]string, value string) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	if _, err := doc.PokeNS(src, ns, value); err != nil {
		return fmt.Errorf("could not patch %q: %w", path, err)
	}
	return doc.Save()
}
