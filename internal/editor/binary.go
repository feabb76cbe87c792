package editor

// binarySniffLimit bounds how much of the file the binary heuristic
// inspects; a file large enough to matter is large enough that sampling its
// head is cheaper and just as reliable as scanning it whole.
const binarySniffLimit = 4096

// nonPrintableRatioThreshold is the cutoff above which a file is refused as
// binary. This is a heuristic, not an exact classifier — overridable at
// process start via SetThresholds, from internal/config.
var nonPrintableRatioThreshold = 0.30

// looksBinary applies the NUL-byte / non-printable-ratio heuristic to the
// first binarySniffLimit bytes of data.
func looksBinary(data []byte) bool {
	n := len(data)
	if n > binarySniffLimit {
		n = binarySniffLimit
	}
	sample := data[:n]
	if len(sample) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if b == 0 {
			return true
		}
		if isNonPrintableHeuristic(b) {
			nonPrintable++
		}
	}

	ratio := float64(nonPrintable) / float64(len(sample))
	return ratio > nonPrintableRatioThreshold
}

// isNonPrintableHeuristic treats common textual control bytes (tab, LF, CR,
// form feed) as printable and everything else below 0x20, plus the DEL
// byte, as non-printable.
func isNonPrintableHeuristic(b byte) bool {
	switch b {
	case '\t', '\n', '\r', '\f':
		return false
	}
	if b < 0x20 {
		return true
	}
	if b == 0x7f {
		return true
	}
	return false
}
