package editor

import (
	"os"
	"path/filepath"
	"testing"
)

// These tests exercise the real osFileSystem against actual files on disk,
// complementing the in-memory FileSystem double used elsewhere.

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestEditOnDiskSuccess(t *testing.T) {
	path := writeTemp(t, "a=1\nb=2\nc=3\n")

	result, err := Edit(Options{
		FilePath:  path,
		OldString: "b=2",
		NewString: "b=20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Replacements != 1 {
		t.Fatalf("replacements = %d, want 1", result.Replacements)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to re-read file: %v", err)
	}
	if string(data) != "a=1\nb=20\nc=3\n" {
		t.Fatalf("on-disk content = %q", string(data))
	}
}

func TestEditOnDiskBinaryRefused(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin.dat")
	data := append([]byte("leading text"), 0x00, 0x01, 0x02)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	_, err := Edit(Options{FilePath: path, OldString: "a", NewString: "b"})
	if k, _ := AsKind(err); k != KindBinaryRefused {
		t.Fatalf("err = %v, want KindBinaryRefused", err)
	}
}

func TestEditOnDiskDirectoryRefused(t *testing.T) {
	dir := t.TempDir()
	_, err := Edit(Options{FilePath: dir, OldString: "a", NewString: "b"})
	if k, _ := AsKind(err); k != KindIsDirectory {
		t.Fatalf("err = %v, want KindIsDirectory", err)
	}
}

func TestEditOnDiskRelativePathResolution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rel.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer os.Chdir(origWD)

	result, err := Edit(Options{FilePath: "rel.txt", OldString: "hello", NewString: "world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Title != "rel.txt" {
		t.Fatalf("Title = %q, want %q", result.Title, "rel.txt")
	}
}
