// Package stream emits XML documents through a fluent writer holding an
// explicit open-element stack.
package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// Writer builds an XML document through ordered, chained operations and
// owns its output for the lifetime of the stream. Operations validate
// against the open-element stack; the first failed operation latches,
// later operations are no-ops, and Close reports it. The document is
// serialized on Close, which always releases the output.
type Writer struct {
	doc  *etree.Document
	out  io.Writer
	file *os.File
	open []frame
	err  error
}

type frame struct {
	el         *etree.Element
	hasContent bool
}

// NewWriter starts a document stream writing to out. The XML
// declaration is written implicitly.
func NewWriter(out io.Writer) *Writer {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	return &Writer{doc: doc, out: out}
}

// NewFileWriter starts a document stream writing to the file at path.
// The file is created immediately and closed by Close, on error paths
// too.
func NewFileWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", path, err)
	}
	w := NewWriter(f)
	w.file = f
	return w, nil
}

// Err returns the first error latched by a misordered or failed
// operation, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(msg string) *Writer {
	if w.err == nil {
		w.err = &Error{Msg: msg}
	}
	return w
}

func (w *Writer) parent() *etree.Element {
	if len(w.open) == 0 {
		return &w.doc.Element
	}
	return w.open[len(w.open)-1].el
}

func (w *Writer) markContent() {
	if len(w.open) != 0 {
		w.open[len(w.open)-1].hasContent = true
	}
}

// WriteComment writes a comment at the current position.
func (w *Writer) WriteComment(text string) *Writer {
	if w.err != nil {
		return w
	}
	w.parent().CreateComment(text)
	w.markContent()
	return w
}

// StartElement opens a new element under the innermost open element.
func (w *Writer) StartElement(name string) *Writer {
	if w.err != nil {
		return w
	}
	el := w.parent().CreateElement(name)
	w.markContent()
	w.open = append(w.open, frame{el: el})
	return w
}

// EndElement closes the innermost open element.
func (w *Writer) EndElement() *Writer {
	if w.err != nil {
		return w
	}
	if len(w.open) == 0 {
		return w.fail("end element without matching start element")
	}
	w.open = w.open[:len(w.open)-1]
	return w
}

// WriteAttribute sets an attribute on the innermost open element. It is
// only valid after StartElement and before any child content.
func (w *Writer) WriteAttribute(name, value string) *Writer {
	if w.err != nil {
		return w
	}
	if len(w.open) == 0 {
		return w.fail(fmt.Sprintf("attribute %q outside of an open element", name))
	}
	cur := &w.open[len(w.open)-1]
	if cur.hasContent {
		return w.fail(fmt.Sprintf("attribute %q after child content of <%s>", name, cur.el.Tag))
	}
	cur.el.CreateAttr(name, value)
	return w
}

// WriteCDATAElement writes <name><![CDATA[data]]></name> at the current
// position. The data is emitted verbatim, without escaping.
func (w *Writer) WriteCDATAElement(name, data string) *Writer {
	if w.err != nil {
		return w
	}
	el := w.parent().CreateElement(name)
	el.CreateCData(data)
	w.markContent()
	return w
}

// Close serializes the document to the output and releases it. Elements
// still open at close time, or an earlier latched error, make Close
// fail; the output is released either way.
func (w *Writer) Close() error {
	err := w.err
	if err == nil && len(w.open) != 0 {
		err = &Error{Msg: fmt.Sprintf("%d elements left open", len(w.open))}
	}
	if err == nil {
		w.doc.Indent(2)
		_, err = w.doc.WriteTo(w.out)
	}
	if w.file != nil {
		cerr := w.file.Close()
		if err == nil && cerr != nil {
			err = cerr
		}
	}
	return err
}
