// Package textio reads and writes the files textcompress works on.  The
// codecs themselves only ever see strings and byte slices.
package textio

import (
	"fmt"
	"os"
	"strings"
)

// ReadText reads a text file, turning every newline into a space so the
// whole file reads as one line.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.ReplaceAll(string(raw), "\n", " "), nil
}

// WriteText writes content to path, replacing any existing file.
func WriteText(path string, content string) error {
	return WriteBytes(path, []byte(content))
}

// WriteBytes writes data to path, replacing any existing file.
func WriteBytes(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
