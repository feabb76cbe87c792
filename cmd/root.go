package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuzzyedit/fuzzyedit/internal/config"
	"github.com/fuzzyedit/fuzzyedit/internal/editor"
	"github.com/fuzzyedit/fuzzyedit/internal/logging"

	"go.uber.org/zap"
)

var (
	verbose    bool
	configPath string

	log *zap.SugaredLogger = logging.Nop()
)

// rootCmd is the CLI surface around editor.Edit. The core has no notion of
// a command line; this is the surrounding program: a single
// persistent-config cobra.Command tree with a PersistentPreRunE that does
// real work, errors printed directly rather than propagated.
var rootCmd = &cobra.Command{
	Use:   "fuzzyedit",
	Short: "fuzzyedit applies fuzzy, anchor-based textual replacements to a file",
	Long: `fuzzyedit locates a region of a file from an old/new text fragment pair,
even when the fragment's whitespace or interior lines don't match the file
literally, and replaces it after a diff and a confirmation step.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		editor.SetThresholds(cfg.BinaryNonPrintableRatio, cfg.BlockAnchorSingleThreshold, cfg.BlockAnchorMultiThreshold)

		if verbose {
			l, err := logging.New(true)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			log = l
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable structured logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".fuzzyedit.yaml", "path to an optional config file")
	rootCmd.AddCommand(editCmd)
}
