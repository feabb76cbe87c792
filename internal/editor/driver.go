package editor

import "strings"

// DriveResult is the outcome of a successful Drive call.
type DriveResult struct {
	Content      string
	Replacements int
}

// Drive runs the replacer cascade against content, looking for oldFragment
// and substituting newFragment. It implements the precondition check, the
// per-candidate uniqueness/bulk-replace contract, and the "cascade resumes
// on ambiguity" rule: an ambiguous candidate from one replacer does not stop
// later replacers (or later candidates) from being tried.
func Drive(content, oldFragment, newFragment string, replaceAll bool) (DriveResult, error) {
	if oldFragment == newFragment {
		return DriveResult{}, &EditError{Kind: KindNoChange, Message: "old and new fragments are identical"}
	}

	foundAny := false

	for _, r := range Suite {
		for candidate := range r.Candidates(content, oldFragment) {
			idx := strings.Index(content, candidate)
			if idx < 0 {
				continue
			}
			foundAny = true

			if replaceAll {
				count := strings.Count(content, candidate)
				newContent := strings.ReplaceAll(content, candidate, newFragment)
				return DriveResult{Content: newContent, Replacements: count}, nil
			}

			last := strings.LastIndex(content, candidate)
			if last != idx {
				// Ambiguous under this candidate; let the cascade continue.
				continue
			}

			newContent := content[:idx] + newFragment + content[idx+len(candidate):]
			return DriveResult{Content: newContent, Replacements: 1}, nil
		}
	}

	if !foundAny {
		return DriveResult{}, &EditError{Kind: KindMatchNotFound, Message: summarizeFragment(oldFragment)}
	}
	return DriveResult{}, &EditError{Kind: KindAmbiguous, Message: summarizeFragment(oldFragment)}
}

// summarizeFragment produces a short, bounded description of a fragment for
// error messages. Failures name the fragment only in summary — never the
// whole file, and never the whole fragment if it is large.
func summarizeFragment(fragment string) string {
	const maxLen = 80
	s := strings.ReplaceAll(fragment, "\n", "\\n")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
