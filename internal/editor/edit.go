package editor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Result is the success surface returned from Edit. RequestID correlates
// one Edit call across its confirmation prompt and any log lines a caller
// emits around it — useful once more than one edit is in flight against the
// same file, e.g. from an agent loop issuing edits concurrently.
type Result struct {
	RequestID    string
	Title        string
	Output       string
	Replacements int
}

// Options configures one Edit call. ReplaceAll defaults to false. Confirmer
// and FileSystem are injectable collaborators — nil Confirmer falls back to
// AlwaysConfirm (the non-interactive bypass), nil FileSystem falls back to
// DefaultFileSystem.
type Options struct {
	FilePath   string
	OldString  string
	NewString  string
	ReplaceAll bool

	Confirmer  Confirmer
	FileSystem FileSystem
}

// Edit runs the full read → drive → diff → confirm → write pipeline. It
// suspends, conceptually, at exactly three points (read, confirm, write)
// and never re-reads the file between building the diff and writing — the
// same in-memory snapshot taken at ReadContent flows through to
// WriteContent.
func Edit(opts Options) (Result, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = DefaultFileSystem
	}
	confirmer := opts.Confirmer
	if confirmer == nil {
		confirmer = AlwaysConfirm
	}

	requestID := uuid.NewString()

	// ValidateArgs
	if opts.OldString == opts.NewString {
		return Result{}, &EditError{Kind: KindNoChange, Message: "old_string and new_string are identical", RequestID: requestID}
	}

	// ResolvePath
	absPath := resolvePath(opts.FilePath)
	displayPath := displayPathFor(absPath)

	// VerifyFile
	if !fs.Exists(absPath) {
		return Result{}, &EditError{Kind: KindFileNotFound, Message: displayPath, RequestID: requestID}
	}
	if fs.IsDirectory(absPath) {
		return Result{}, &EditError{Kind: KindIsDirectory, Message: displayPath, RequestID: requestID}
	}

	// ReadContent (the binary heuristic of VerifyFile is checked as part of
	// this single read — see osFileSystem.ReadText in fileio.go)
	oldContent, err := fs.ReadText(absPath)
	if err != nil {
		if ee, ok := err.(*EditError); ok {
			ee.RequestID = requestID
			return Result{}, ee
		}
		return Result{}, &EditError{Kind: KindFileNotFound, Message: displayPath, RequestID: requestID}
	}

	// DriveReplacement
	driven, err := Drive(oldContent, opts.OldString, opts.NewString, opts.ReplaceAll)
	if err != nil {
		if ee, ok := err.(*EditError); ok {
			ee.RequestID = requestID
		}
		return Result{}, err
	}

	// BuildDiff
	diffText := buildDiff(oldContent, driven.Content, displayPath)

	// RequestConfirmation
	if !safeConfirm(confirmer, diffText, displayPath) {
		return Result{}, &EditError{Kind: KindUserCancelled, Message: displayPath, RequestID: requestID}
	}

	// WriteContent
	if err := fs.WriteText(absPath, driven.Content); err != nil {
		return Result{}, err
	}

	// ReportResult
	return Result{
		RequestID:    requestID,
		Title:        displayPath,
		Output:       "Edit applied successfully.",
		Replacements: driven.Replacements,
	}, nil
}

// resolvePath resolves filePath against the process working directory when
// it is relative.
func resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return filepath.Clean(filePath)
	}
	return filepath.Clean(filepath.Join(wd, filePath))
}

// displayPathFor renders absPath relative to the working directory when
// possible, falling back to the absolute path. This is purely cosmetic: it
// feeds Result.Title and diff headers, never the lookup that locates the
// file.
func displayPathFor(absPath string) string {
	wd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(wd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return rel
}
