package editor

import "testing"

func TestLooksBinaryNulByte(t *testing.T) {
	data := append([]byte("some text here"), 0x00)
	data = append(data, []byte("more text")...)
	if !looksBinary(data) {
		t.Fatal("expected NUL byte to be refused as binary")
	}
}

func TestLooksBinaryPlainText(t *testing.T) {
	data := []byte("package main\n\nfunc main() {}\n")
	if looksBinary(data) {
		t.Fatal("plain source text misclassified as binary")
	}
}

func TestLooksBinaryEmptyIsText(t *testing.T) {
	if looksBinary(nil) {
		t.Fatal("empty content should not be refused as binary")
	}
}

func TestLooksBinaryHighNonPrintableRatio(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i%2 + 1) // bytes 1 and 2, both non-printable control chars
	}
	if !looksBinary(data) {
		t.Fatal("expected high non-printable ratio to be refused as binary")
	}
}
