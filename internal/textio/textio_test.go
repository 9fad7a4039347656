package textio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_text.txt")
	if err := os.WriteFile(path, []byte("first line\nsecond line\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	expect := "first line second line "
	actual, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestReadText_Missing(t *testing.T) {
	if _, err := ReadText(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteText(path, "3:a3:b2:c1:d"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(raw) != "3:a3:b2:c1:d" {
		t.Errorf("wrong output: %q", raw)
	}
}
