package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fuzzyedit/fuzzyedit/internal/editor"
	"github.com/fuzzyedit/fuzzyedit/internal/ui"
)

var (
	editOldString  string
	editNewString  string
	editReplaceAll bool
	editYes        bool
	editDryRun     bool
	editJSON       bool
)

// editCmd exercises the public Edit operation end-to-end. It is the CLI's
// only command: the core is a single operation, so the surrounding program
// needs nothing more than one subcommand to drive it, following the
// flag-per-parameter convention other Cobra-based CLIs in this space use
// for their leaf commands.
var editCmd = &cobra.Command{
	Use:   "edit [path]",
	Short: "Apply a fuzzy old_string/new_string replacement to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var confirmer editor.Confirmer = editor.ConfirmFunc(ui.Confirm)
		if editYes {
			confirmer = editor.AlwaysConfirm
		}
		if editDryRun {
			confirmer = editor.ConfirmFunc(func(diffText, displayPath string) bool {
				fmt.Print(diffText)
				return false
			})
		}

		result, err := editor.Edit(editor.Options{
			FilePath:   path,
			OldString:  editOldString,
			NewString:  editNewString,
			ReplaceAll: editReplaceAll,
			Confirmer:  confirmer,
		})

		if err != nil {
			return reportEditError(path, err)
		}
		return reportEditSuccess(result)
	},
}

func reportEditSuccess(result editor.Result) error {
	log.Infow("edit applied", "request_id", result.RequestID, "path", result.Title, "replacements", result.Replacements)

	if editJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"request_id":   result.RequestID,
			"title":        result.Title,
			"output":       result.Output,
			"replacements": result.Replacements,
		})
	}
	if editYes {
		fmt.Println(ui.FallbackLine(result.Title, true))
	}
	fmt.Printf("%s (%d replacement(s))\n", result.Output, result.Replacements)
	return nil
}

func reportEditError(path string, err error) error {
	kind, _ := editor.AsKind(err)
	requestID := ""
	if ee, ok := err.(*editor.EditError); ok {
		requestID = ee.RequestID
	}
	log.Warnw("edit failed", "request_id", requestID, "path", path, "kind", kind)

	if editDryRun && kind == editor.KindUserCancelled {
		// --dry-run always declines after printing the diff; that is not
		// a real user cancellation, just how dry-run is implemented.
		fmt.Println("(dry run — no changes written)")
		return nil
	}

	if editJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"request_id": requestID,
			"kind":       kind,
			"error":      err.Error(),
		})
	}
	return err
}

func init() {
	editCmd.Flags().StringVar(&editOldString, "old", "", "the text to locate (required)")
	editCmd.Flags().StringVar(&editNewString, "new", "", "the replacement text (required)")
	editCmd.Flags().BoolVar(&editReplaceAll, "replace-all", false, "replace every occurrence of the located candidate")
	editCmd.Flags().BoolVar(&editYes, "yes", false, "skip interactive confirmation (non-interactive bypass)")
	editCmd.Flags().BoolVar(&editDryRun, "dry-run", false, "print the diff and exit without writing")
	editCmd.Flags().BoolVar(&editJSON, "json", false, "emit machine-readable JSON instead of text")
	_ = editCmd.MarkFlagRequired("old")
	_ = editCmd.MarkFlagRequired("new")
}
