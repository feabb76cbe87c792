package editor

import (
	"iter"
	"strings"
)

// Replacer is one stage of the fixed, ordered matching cascade. Each
// replacer is a pure function of (content, oldFragment): given no match it
// yields nothing, never errors. Candidates are literal substrings of
// content — the driver locates them with a plain string search, so a
// replacer never needs to report offsets itself.
//
// This is a closed, tagged set, not an open interface hierarchy: Suite
// below is the only place new strategies are added, and they are always
// appended after the three fixed in place here.
type Replacer struct {
	Name       string
	Priority   int
	Candidates func(content, oldFragment string) iter.Seq[string]
}

// Suite is the replacer cascade in priority order. Do not reorder the first
// three entries; lower-priority strategies may only be appended.
var Suite = []Replacer{
	{Name: "exact", Priority: 1, Candidates: exactCandidates},
	{Name: "line-trimmed", Priority: 2, Candidates: lineTrimmedCandidates},
	{Name: "block-anchor", Priority: 3, Candidates: blockAnchorCandidates},
}

// exactCandidates yields oldFragment verbatim. It does not inspect content;
// the driver is responsible for checking occurrence.
func exactCandidates(content, oldFragment string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(oldFragment)
	}
}

// trimASCII trims leading/trailing ASCII whitespace (space, tab, CR, LF, FF,
// vertical tab). Unicode whitespace is deliberately excluded: a fragment
// built from pasted code should never match against full-width or
// non-breaking space padding it never contained.
func trimASCII(s string) string {
	isSpace := func(b byte) bool {
		switch b {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			return true
		}
		return false
	}
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// splitLines splits on LF, preserving a trailing empty element when s ends
// in a final LF.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// dropTrailingEmptyLine removes a trailing empty element produced by a
// final LF in oldFragment. This artifact must never be treated as a
// phantom blank line to match against content.
func dropTrailingEmptyLine(lines []string) []string {
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	return lines
}

// lineTrimmedCandidates scans content for a run of lines whose trimmed text
// matches oldFragment's lines, trimmed the same way. It recovers from
// indentation or trailing-whitespace drift an editor model introduces when
// it reproduces a fragment from memory.
func lineTrimmedCandidates(content, oldFragment string) iter.Seq[string] {
	return func(yield func(string) bool) {
		origLines := splitLines(content)
		searchLines := dropTrailingEmptyLine(splitLines(oldFragment))

		n := len(searchLines)
		if n == 0 || n > len(origLines) {
			return
		}

		// offsets[k] is the byte offset in content where origLines[k] begins.
		offsets := make([]int, len(origLines)+1)
		pos := 0
		for k, line := range origLines {
			offsets[k] = pos
			pos += len(line)
			if k < len(origLines)-1 {
				pos++ // the LF separating this line from the next
			}
		}
		offsets[len(origLines)] = pos

		for i := 0; i+n <= len(origLines); i++ {
			matched := true
			for j := 0; j < n; j++ {
				if trimASCII(origLines[i+j]) != trimASCII(searchLines[j]) {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}

			start := offsets[i]
			end := offsets[i+n-1] + len(origLines[i+n-1])
			if !yield(content[start:end]) {
				return
			}
		}
	}
}

// anchorCandidate is an (i, j) index pair into origLines bracketing a
// candidate block for the block-anchor replacer.
type anchorCandidate struct {
	i, j int
}

// blockAnchorCandidates finds a block delimited by the fragment's first and
// last lines even when the interior drifted. It anchors on the first and
// last search lines (trimmed), then scores the interior for plausibility
// before accepting a candidate; see selectAnchorCandidate.
func blockAnchorCandidates(content, oldFragment string) iter.Seq[string] {
	return func(yield func(string) bool) {
		origLines := splitLines(content)
		searchLines := dropTrailingEmptyLine(splitLines(oldFragment))

		if len(searchLines) < 3 {
			return
		}

		first := trimASCII(searchLines[0])
		last := trimASCII(searchLines[len(searchLines)-1])

		var candidates []anchorCandidate
		for i := 0; i < len(origLines); i++ {
			if trimASCII(origLines[i]) != first {
				continue
			}
			for j := i + 2; j < len(origLines); j++ {
				if trimASCII(origLines[j]) == last {
					candidates = append(candidates, anchorCandidate{i: i, j: j})
					break
				}
			}
		}

		if len(candidates) == 0 {
			return
		}

		accept, ok := selectAnchorCandidate(candidates, origLines, searchLines)
		if !ok {
			return
		}

		span := blockSpan(content, origLines, accept.i, accept.j)
		yield(span)
	}
}

// selectAnchorCandidate scores each anchor-bracketed block by interior
// similarity and decides whether to accept one. A lone candidate is held to
// a lower bar (it has no competing block to lose to); among several
// candidates, only the best-scoring one can win, and only above a higher
// bar — two anchor-matched blocks are inherently more likely to be
// coincidental than one.
func selectAnchorCandidate(candidates []anchorCandidate, origLines, searchLines []string) (anchorCandidate, bool) {
	if len(candidates) == 1 {
		c := candidates[0]
		score, hasInterior := interiorSimilarity(c, origLines, searchLines)
		if !hasInterior {
			return c, true
		}
		return c, score >= blockAnchorSingleThreshold
	}

	bestIdx := -1
	bestScore := -1.0
	for idx, c := range candidates {
		score, hasInterior := interiorSimilarity(c, origLines, searchLines)
		if !hasInterior {
			score = 1.0 // no interior to disagree on; anchors alone matched
		}
		if score > bestScore {
			bestScore = score
			bestIdx = idx
		}
	}
	if bestIdx < 0 || bestScore < blockAnchorMultiThreshold {
		return anchorCandidate{}, false
	}
	return candidates[bestIdx], true
}

// interiorSimilarity computes the mean line-level similarity over the
// aligned interior prefix shared by the candidate block and the search
// fragment. The second return value is false when interiorCount <= 0 (no
// interior to compare).
func interiorSimilarity(c anchorCandidate, origLines, searchLines []string) (float64, bool) {
	interiorCount := len(searchLines) - 2
	if blockLen := (c.j - c.i + 1) - 2; blockLen < interiorCount {
		interiorCount = blockLen
	}
	if interiorCount <= 0 {
		return 0, false
	}

	var total float64
	for k := 1; k <= len(searchLines)-2 && c.i+k < c.j; k++ {
		total += similarity(trimASCII(origLines[c.i+k]), trimASCII(searchLines[k])) / float64(interiorCount)
	}
	return total, true
}

// blockSpan returns the literal substring of content spanning origLines[i..j]
// inclusive, LF-joined. The LF that follows origLines[j] in content, if any,
// is not part of the span, matching lineTrimmedCandidates.
func blockSpan(content string, origLines []string, i, j int) string {
	var b strings.Builder
	for k := i; k <= j; k++ {
		b.WriteString(origLines[k])
		if k < j {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
