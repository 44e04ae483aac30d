package textdiff

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDiffEqual(t *testing.T) {
	color.NoColor = true
	const s = `<a><b>x</b></a>`
	if got := Diff(s, s); got != s {
		t.Errorf("expected identity for equal inputs, got %q", got)
	}
}

func TestDiffChange(t *testing.T) {
	color.NoColor = true
	got := Diff(`<add value="Debug"/>`, `<add value="Release"/>`)
	if !strings.Contains(got, "Release") || !strings.Contains(got, "Debug") {
		t.Errorf("expected both old and new text, got %q", got)
	}
}
