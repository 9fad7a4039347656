package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

// maxTreeDepth bounds the depth ReadTree will accept.  A Huffman tree of
// depth d needs a total weight of at least Fib(d+2), so no tree built from an
// in-memory input comes anywhere near it.
const maxTreeDepth = 128

// PackBits packs a bitstring of '0' and '1' bytes into bytes, first bit in
// the most significant position.  The last byte is padded with zeroes; the
// caller must keep len(bits) to undo the padding.
func PackBits(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for index := 0; index < len(bits); index++ {
		var err error
		switch bits[index] {
		case '0':
			err = w.WriteBool(false)
		case '1':
			err = w.WriteBool(true)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at bit %d", codecerr.ErrMalformedStream, bits[index], index)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits is the inverse of PackBits: it returns the first n bits of data
// as a string of '0' and '1' bytes.
func UnpackBits(data []byte, n int) (string, error) {
	if n < 0 || (n+7)/8 > len(data) {
		return "", fmt.Errorf("%w: cannot unpack %d bits from %d bytes", codecerr.ErrMalformedStream, n, len(data))
	}
	out := make([]byte, n)
	r := bitio.NewReader(bytes.NewReader(data))
	for index := 0; index < n; index++ {
		b, err := r.ReadBool()
		if err != nil {
			return "", wrapReadError(err)
		}
		out[index] = '0'
		if b {
			out[index] = '1'
		}
	}
	return string(out), nil
}

// WriteTree serializes a tree in pre-order.  Each internal node is a single 0
// bit; each leaf is a 1 bit, its weight, and its symbol as written by codec.
func WriteTree[S comparable](w *bitio.Writer, tree *Tree[S], codec SymbolCodec[S]) error {
	if tree == nil || tree.root == nil {
		return fmt.Errorf("%w: empty tree", codecerr.ErrInvalidInput)
	}
	if err := writeUvarint(w, uint64(tree.leaves)); err != nil {
		return err
	}
	return writeNode(w, tree.root, codec)
}

func writeNode[S comparable](w *bitio.Writer, n *Node[S], codec SymbolCodec[S]) error {
	if err := w.WriteBool(n.IsLeaf()); err != nil {
		return err
	}
	if n.IsLeaf() {
		if err := writeUvarint(w, uint64(n.weight)); err != nil {
			return err
		}
		return codec.WriteSymbol(w, n.symbol)
	}
	if err := writeNode(w, n.left, codec); err != nil {
		return err
	}
	return writeNode(w, n.right, codec)
}

// ReadTree reads a tree written by WriteTree.  It fails with
// codecerr.ErrMalformedStream if the data is truncated or does not describe
// a valid tree.
func ReadTree[S comparable](r *bitio.Reader, codec SymbolCodec[S]) (*Tree[S], error) {
	leaves, err := readUvarint(r)
	if err != nil {
		return nil, wrapReadError(err)
	}
	if leaves == 0 {
		return nil, fmt.Errorf("%w: tree has no leaves", codecerr.ErrMalformedStream)
	}

	tr := treeReader[S]{r: r, codec: codec, seen: make(map[S]struct{})}
	root, err := tr.readNode(0)
	if err != nil {
		return nil, err
	}
	if uint64(len(tr.seen)) != leaves {
		return nil, fmt.Errorf("%w: tree header says %d leaves, found %d", codecerr.ErrMalformedStream, leaves, len(tr.seen))
	}
	return &Tree[S]{root: root, leaves: len(tr.seen)}, nil
}

type treeReader[S comparable] struct {
	r     *bitio.Reader
	codec SymbolCodec[S]
	seen  map[S]struct{}
	total int
}

func (tr *treeReader[S]) readNode(depth int) (*Node[S], error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: tree deeper than %d", codecerr.ErrMalformedStream, maxTreeDepth)
	}

	isLeaf, err := tr.r.ReadBool()
	if err != nil {
		return nil, wrapReadError(err)
	}

	if !isLeaf {
		left, err := tr.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := tr.readNode(depth + 1)
		if err != nil {
			return nil, err
		}
		return newInternal(left, right), nil
	}

	weight, err := readUvarint(tr.r)
	if err != nil {
		return nil, wrapReadError(err)
	}
	// Bounding the running total keeps every internal node's sum in range.
	if weight == 0 || weight > uint64(maxInt-tr.total) {
		return nil, fmt.Errorf("%w: leaf weight %d out of range", codecerr.ErrMalformedStream, weight)
	}
	tr.total += int(weight)
	symbol, err := tr.codec.ReadSymbol(tr.r)
	if err != nil {
		return nil, wrapReadError(err)
	}
	if _, found := tr.seen[symbol]; found {
		return nil, fmt.Errorf("%w: duplicate symbol %s", codecerr.ErrMalformedStream, formatSymbol(symbol))
	}
	tr.seen[symbol] = struct{}{}
	return NewLeaf(symbol, int(weight)), nil
}

const maxInt = int(^uint(0) >> 1)

func wrapReadError(err error) error {
	if errors.Is(err, codecerr.ErrMalformedStream) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of data", codecerr.ErrMalformedStream)
	}
	return fmt.Errorf("%w: %v", codecerr.ErrMalformedStream, err)
}
