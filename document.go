// Package xmlkit provides XPath-based query and patch helpers for XML
// documents, a fluent document writer, and directory containment checks,
// as used by build automation.
package xmlkit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/telefunkenvf14/xmlkit/query"
)

// Document is an in-memory XML tree, owned by the caller that loaded it.
// Patch operations mutate it in place. A Document is not safe for
// concurrent mutation.
type Document struct {
	root *xmlquery.Node
	path string
}

// Load reads and parses the XML file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	root, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	return &Document{root: root, path: path}, nil
}

// Parse parses an XML document from literal text.
func Parse(text string) (*Document, error) {
	root, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the underlying document node.
func (d *Document) Root() *xmlquery.Node {
	return d.root
}

// Path returns the source path, empty if the document was parsed from
// literal text.
func (d *Document) Path() string {
	return d.path
}

// String serializes the document.
func (d *Document) String() string {
	return d.root.OutputXML(false)
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

// Query compiles src and evaluates it once against the document.
func (d *Document) Query(src string) (*query.Result, error) {
	return d.QueryNS(src, nil)
}

// QueryNS is Query with prefix to namespace URI bindings consulted at
// compile time.
func (d *Document) QueryNS(src string, ns map[string]string) (*query.Result, error) {
	e, err := query.CompileNS(src, ns)
	if err != nil {
		return nil, err
	}
	return e.Eval(d.root)
}

// Save writes the document back to the path it was loaded from. The
// write is a plain overwrite with no atomic replace.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("document has no source path")
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the document to path.
func (d *Document) SaveAs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	err = d.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
