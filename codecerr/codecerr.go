// Package codecerr holds the error conditions shared by the textcodec
// packages.  Errors returned by the codecs wrap one of these sentinels, so
// callers should test for them with errors.Is.
package codecerr

import (
	"errors"
)

var (
	// ErrInvalidInput is returned when an operation is handed an input it
	// cannot work with at all, e.g. building a Huffman tree from an empty
	// alphabet.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLookup is returned when encoding a symbol that has no entry in
	// the code table.
	ErrLookup = errors.New("symbol not found in code table")

	// ErrMalformedStream is returned when decoding data that was not
	// produced by the matching encoder: a bitstring that stops in the
	// middle of a code, a run with a non-positive count, a truncated
	// archive, and so on.
	ErrMalformedStream = errors.New("malformed stream")
)
