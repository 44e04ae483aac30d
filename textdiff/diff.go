// Package textdiff renders colored character diffs for terminal
// preview of document rewrites.
package textdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	insertText = color.New(color.FgGreen).SprintFunc()
	deleteText = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// Diff renders the character-level differences between from and to with
// insertions in green and deletions struck through in red. Equal text
// passes through unchanged. Colors honor the fatih/color global
// NoColor switch.
func Diff(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString(insertText(diff.Text))
		case diffpatch.DiffDelete:
			b.WriteString(deleteText(diff.Text))
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
