// Package logging provides the CLI's structured logger. The core
// internal/editor package never imports this — it has no global state and
// no side channel for diagnostics. Only the program wrapped around it
// (cmd/) logs.
package logging

import (
	"go.uber.org/zap"
)

// New builds a SugaredLogger. verbose selects development-mode (human,
// colorized, debug-level) output; otherwise the logger runs at info level
// with a quieter production encoder. This mirrors how kvit-s-kvit-coder
// wires zap for its own TUI program.
func New(verbose bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "" // the CLI is interactive, not shipped to a log pipeline
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything, used when logging is not
// requested.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
