package editor

// blockAnchorSingleThreshold and blockAnchorMultiThreshold are the
// block-anchor acceptance thresholds (defaults 0.3 / 0.5). They are package
// variables, not constants, so a host program can load overrides from
// internal/config at startup via SetThresholds.
var (
	blockAnchorSingleThreshold = 0.3
	blockAnchorMultiThreshold  = 0.5
)

// SetThresholds overrides the binary-heuristic and block-anchor acceptance
// thresholds. A zero value leaves the corresponding threshold unchanged,
// so callers can override a subset.
func SetThresholds(binaryNonPrintableRatio, blockAnchorSingle, blockAnchorMulti float64) {
	if binaryNonPrintableRatio > 0 {
		nonPrintableRatioThreshold = binaryNonPrintableRatio
	}
	if blockAnchorSingle > 0 {
		blockAnchorSingleThreshold = blockAnchorSingle
	}
	if blockAnchorMulti > 0 {
		blockAnchorMultiThreshold = blockAnchorMulti
	}
}
