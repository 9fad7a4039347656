package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"

	"github.com/icza/bitio"
)

// log2ceil returns the number of bits needed to give each of x symbols a
// distinct fixed-length code.  Alphabets of 0 or 1 symbols still need 1 bit.
func log2ceil(x int) int {
	if x <= 2 {
		return 1
	}
	return mathbits.Len64(uint64(x - 1))
}

// formatSymbol renders a symbol for error messages and debugging dumps.
func formatSymbol(s interface{}) string {
	switch x := s.(type) {
	case rune:
		return strconv.QuoteRune(x)
	case byte:
		return strconv.QuoteRune(rune(x))
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprint(x)
	}
}

// writeUvarint writes u in little-endian groups of 7 bits, each group
// preceded by a continuation flag.
func writeUvarint(w *bitio.Writer, u uint64) error {
	for {
		more := u >= 0x80
		if err := w.WriteBool(more); err != nil {
			return err
		}
		if err := w.WriteBits(u&0x7f, 7); err != nil {
			return err
		}
		if !more {
			return nil
		}
		u >>= 7
	}
}

func readUvarint(r *bitio.Reader) (uint64, error) {
	var u uint64
	for shift := uint(0); shift < 64; shift += 7 {
		more, err := r.ReadBool()
		if err != nil {
			return 0, err
		}
		group, err := r.ReadBits(7)
		if err != nil {
			return 0, err
		}
		u |= group << shift
		if !more {
			return u, nil
		}
	}
	return 0, fmt.Errorf("varint overflows 64 bits")
}
