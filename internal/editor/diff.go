package editor

import (
	gotextdiff "github.com/shogoki/gotextdiff"
)

// buildDiff produces a unified-diff text with `--- a/<displayPath>` /
// `+++ b/<displayPath>` headers and standard `@@` hunks. Adapted from
// sam-saffron-jarvis-term-llm's internal/ui/unified_diff.go, which drives
// the same library for the same header convention; that file renders and
// colorizes the diff for a terminal, which this engine has no business
// doing — the core only needs the raw unified-diff text, its exact
// whitespace belongs to display, not to the replacement contract.
func buildDiff(oldContent, newContent, displayPath string) string {
	if oldContent == newContent {
		return ""
	}
	return string(gotextdiff.Diff("a/"+displayPath, []byte(oldContent), "b/"+displayPath, []byte(newContent)))
}
