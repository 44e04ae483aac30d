package xmlkit

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseAndString(t *testing.T) {
	doc, err := Parse(`<a><b>x</b></a>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.String(); !strings.Contains(got, "<b>x</b>") {
		t.Errorf("unexpected serialization %q", got)
	}
	if doc.Path() != "" {
		t.Errorf("expected no source path, got %q", doc.Path())
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse(`<a><b></a>`); err == nil {
		t.Error("expected error for malformed document")
	}
}

func TestLoadNamesPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "absent.xml") {
		t.Errorf("expected error to name the path, got %q", err)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	doc, err := Parse(`<a/>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := doc.Save(); err == nil {
		t.Error("expected error saving a document with no source path")
	}
}

func TestSaveAsRoundTrip(t *testing.T) {
	doc, err := Parse(`<a><b>x</b></a>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.xml")
	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := loaded.Query("string(//b)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := res.First(); got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
}
