package huffman

import (
	"fmt"
	"unicode/utf8"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

// SymbolCodec knows how to write a single symbol of type S to a bit stream,
// and how to read it back.  WriteTree and ReadTree use it to serialize the
// leaves of a tree.
type SymbolCodec[S comparable] interface {
	WriteSymbol(w *bitio.Writer, symbol S) error
	ReadSymbol(r *bitio.Reader) (S, error)
}

// runeBits is enough bits to hold utf8.MaxRune.
const runeBits = 21

// RuneCodec is a SymbolCodec for Unicode code points.  Each rune occupies 21
// bits.
type RuneCodec struct{}

// WriteSymbol writes a rune.  Negative runes and runes above utf8.MaxRune
// are rejected.
func (RuneCodec) WriteSymbol(w *bitio.Writer, symbol rune) error {
	if symbol < 0 || symbol > utf8.MaxRune {
		return fmt.Errorf("%w: rune %d is out of range", codecerr.ErrInvalidInput, symbol)
	}
	return w.WriteBits(uint64(symbol), runeBits)
}

// ReadSymbol reads a rune.
func (RuneCodec) ReadSymbol(r *bitio.Reader) (rune, error) {
	u, err := r.ReadBits(runeBits)
	if err != nil {
		return 0, err
	}
	if u > utf8.MaxRune {
		return 0, fmt.Errorf("%w: rune %d is out of range", codecerr.ErrMalformedStream, u)
	}
	return rune(u), nil
}

// ByteCodec is a SymbolCodec for bytes.
type ByteCodec struct{}

// WriteSymbol writes a byte.
func (ByteCodec) WriteSymbol(w *bitio.Writer, symbol byte) error {
	return w.WriteByte(symbol)
}

// ReadSymbol reads a byte.
func (ByteCodec) ReadSymbol(r *bitio.Reader) (byte, error) {
	return r.ReadByte()
}

var (
	_ SymbolCodec[rune] = RuneCodec{}
	_ SymbolCodec[byte] = ByteCodec{}
)
