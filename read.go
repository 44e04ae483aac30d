package xmlkit

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/telefunkenvf14/xmlkit/debug"
)

// ReadStrict evaluates the XPath expression src against the XML file at
// path and returns the result as a lazy sequence of strings. Scalar
// results yield exactly one stringified element; node sets yield each
// node's text value in document order. ns may be nil. Load, compile,
// and evaluation failures abort with a descriptive error.
func ReadStrict(path string, ns map[string]string, src string) (iter.Seq[string], error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	res, err := doc.QueryNS(src, ns)
	if err != nil {
		return nil, err
	}
	return res.Strings(), nil
}

// Read is the lenient variant of ReadStrict: any failure degrades to
// the empty sequence. Callers use it for optional lookups.
func Read(path string, ns map[string]string, src string) iter.Seq[string] {
	seq, err := ReadStrict(path, ns, src)
	if err != nil {
		if debug.Query() {
			debug.Logf("read %q from %q: %v\n", src, path, err)
		}
		return func(yield func(string) bool) {}
	}
	return seq
}

// ReadIntStrict reads the result of src as an integer. Only the first
// raw result is parsed; an empty result or a parse failure is an error.
func ReadIntStrict(path string, ns map[string]string, src string) (int, error) {
	seq, err := ReadStrict(path, ns, src)
	if err != nil {
		return 0, err
	}
	first, ok := firstOf(seq)
	if !ok {
		return 0, fmt.Errorf("no result for xpath %q in %q", src, path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, fmt.Errorf("result %q of xpath %q is not an integer", first, src)
	}
	return n, nil
}

// ReadInt is the lenient variant of ReadIntStrict: a failed or absent
// read yields (0, false).
func ReadInt(path string, ns map[string]string, src string) (int, bool) {
	n, err := ReadIntStrict(path, ns, src)
	if err != nil {
		return 0, false
	}
	return n, true
}

func firstOf(seq iter.Seq[string]) (string, bool) {
	for s := range seq {
		return s, true
	}
	return "", false
}
