package textcodec

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/textcodec/codecerr"
	"github.com/chronos-tachyon/textcodec/huffman"
	"github.com/chronos-tachyon/textcodec/rle"
)

// Options controls Compress.
type Options struct {
	// RLE runs the text through run-length encoding before Huffman
	// coding.  The runs are flattened with rle.Format, so the Huffman
	// alphabet is the digits, the ':' delimiter, and the runes of text.
	RLE bool
}

// Archive is the output of Compress: the Huffman bitstring together with the
// tree needed to decode it.
type Archive struct {
	// RLE is true iff the payload is the rle.Format form of the text.
	RLE bool

	// Tree is the Huffman tree of the payload.  It is nil iff the text
	// was empty.
	Tree *huffman.Tree[rune]

	// Bits is the Huffman-coded payload, as '0' and '1' bytes.
	Bits string
}

// Compress encodes text.  An empty text yields an Archive with no tree and no
// bits.  It fails with codecerr.ErrInvalidInput if text is not valid UTF-8.
func Compress(text string, opts Options) (*Archive, error) {
	a := &Archive{RLE: opts.RLE}
	if text == "" {
		return a, nil
	}

	payload := text
	if opts.RLE {
		if err := checkText(text); err != nil {
			return nil, err
		}
		payload = rle.Format(CompressRLE(text))
	}

	tree, table, err := BuildHuffman(payload)
	if err != nil {
		return nil, err
	}
	bits, err := HuffmanEncode(payload, table)
	if err != nil {
		return nil, err
	}
	a.Tree = tree
	a.Bits = bits
	return a, nil
}

// Decompress is the inverse of Compress.
func Decompress(a *Archive) (string, error) {
	if a == nil {
		return "", fmt.Errorf("%w: nil archive", codecerr.ErrInvalidInput)
	}
	if a.Tree == nil {
		if a.Bits != "" {
			return "", fmt.Errorf("%w: %d bits but no tree", codecerr.ErrMalformedStream, len(a.Bits))
		}
		return "", nil
	}

	payload, err := HuffmanDecode(a.Bits, a.Tree)
	if err != nil {
		return "", err
	}
	if !a.RLE {
		return payload, nil
	}

	stream, err := rle.Parse(payload)
	if err != nil {
		return "", err
	}
	return DecompressRLE(stream)
}

// archiveMagic starts every marshaled Archive.
const archiveMagic = "TXC1"

const (
	flagRLE  = 0x01
	flagTree = 0x02
)

// MarshalBinary serializes the archive: the magic "TXC1", a flags byte, the
// tree as written by huffman.WriteTree, a 64-bit bit count, and the packed
// bits, first bit in the most significant position.
func (a *Archive) MarshalBinary() ([]byte, error) {
	var flags byte
	if a.RLE {
		flags |= flagRLE
	}
	if a.Tree != nil {
		flags |= flagTree
	} else if a.Bits != "" {
		return nil, fmt.Errorf("%w: %d bits but no tree", codecerr.ErrInvalidInput, len(a.Bits))
	}

	packed, err := huffman.PackBits(a.Bits)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for index := 0; index < len(archiveMagic); index++ {
		if err := w.WriteByte(archiveMagic[index]); err != nil {
			return nil, err
		}
	}
	if err := w.WriteByte(flags); err != nil {
		return nil, err
	}
	if a.Tree != nil {
		if err := huffman.WriteTree[rune](w, a.Tree, huffman.RuneCodec{}); err != nil {
			return nil, err
		}
	}
	if err := w.WriteBits(uint64(len(a.Bits)), 64); err != nil {
		return nil, err
	}
	if _, err := w.Align(); err != nil {
		return nil, err
	}
	if _, err := w.Write(packed); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary is the inverse of MarshalBinary.  It fails with
// codecerr.ErrMalformedStream if data is truncated or not an archive.
func (a *Archive) UnmarshalBinary(data []byte) error {
	br := bytes.NewReader(data)
	r := bitio.NewReader(br)

	var magic [len(archiveMagic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil || string(magic[:]) != archiveMagic {
		return fmt.Errorf("%w: missing %q header", codecerr.ErrMalformedStream, archiveMagic)
	}
	flags, err := r.ReadByte()
	if err != nil {
		return wrapReadError(err)
	}
	if flags&^(flagRLE|flagTree) != 0 {
		return fmt.Errorf("%w: unknown flags %#02x", codecerr.ErrMalformedStream, flags)
	}

	var tree *huffman.Tree[rune]
	if flags&flagTree != 0 {
		tree, err = huffman.ReadTree[rune](r, huffman.RuneCodec{})
		if err != nil {
			return err
		}
	}

	n, err := r.ReadBits(64)
	if err != nil {
		return wrapReadError(err)
	}
	r.Align()
	rest, err := io.ReadAll(r)
	if err != nil {
		return wrapReadError(err)
	}
	if n > uint64(len(rest))*8 {
		return fmt.Errorf("%w: archive claims %d bits, holds at most %d", codecerr.ErrMalformedStream, n, len(rest)*8)
	}
	if tree == nil && n != 0 {
		return fmt.Errorf("%w: %d bits but no tree", codecerr.ErrMalformedStream, n)
	}
	bits, err := huffman.UnpackBits(rest, int(n))
	if err != nil {
		return err
	}

	*a = Archive{RLE: flags&flagRLE != 0, Tree: tree, Bits: bits}
	return nil
}

var (
	_ encoding.BinaryMarshaler   = (*Archive)(nil)
	_ encoding.BinaryUnmarshaler = (*Archive)(nil)
)

func wrapReadError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of data", codecerr.ErrMalformedStream)
	}
	return fmt.Errorf("%w: %v", codecerr.ErrMalformedStream, err)
}
