// Package config holds the handful of tunable knobs the edit engine leaves
// open (binary-file heuristic thresholds, block-anchor acceptance
// thresholds). This is a narrowly scoped loader modeled on
// kvit-s-kvit-coder's YAML config file convention.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration for the edit engine. Every
// field has a default; a missing or absent config file is not an error.
type Config struct {
	// BinaryNonPrintableRatio is the fraction (0,1] of non-printable bytes
	// in the first 4 KiB above which a file is refused as binary.
	BinaryNonPrintableRatio float64 `yaml:"binary_non_printable_ratio"`

	// BlockAnchorSingleThreshold is the minimum mean interior similarity
	// required to accept a lone block-anchor candidate (default 0.3).
	BlockAnchorSingleThreshold float64 `yaml:"block_anchor_single_threshold"`

	// BlockAnchorMultiThreshold is the minimum best-of score required to
	// accept a block-anchor candidate when more than one was found (default
	// 0.5).
	BlockAnchorMultiThreshold float64 `yaml:"block_anchor_multi_threshold"`
}

// Default returns the built-in configuration: 0.30 non-printable ratio, 0.3
// single-candidate threshold, 0.5 multi-candidate threshold.
func Default() Config {
	return Config{
		BinaryNonPrintableRatio:    0.30,
		BlockAnchorSingleThreshold: 0.3,
		BlockAnchorMultiThreshold:  0.5,
	}
}

// Load reads a YAML config file at path, falling back to Default() for any
// field the file omits, and to Default() entirely if path does not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	// Decode into the defaulted struct so omitted keys keep their default.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
