package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

// Decode inverts Encode.  It walks tree from the root, stepping left on '0'
// and right on '1', emits a symbol whenever it lands on a leaf, and starts
// over from the root.
//
// Decode fails with codecerr.ErrMalformedStream if bits contains anything
// other than '0' and '1', or if it ends in the middle of a code.  For a
// degenerate tree every '0' decodes to the single symbol and '1' is
// malformed.
func Decode[S comparable](bits string, tree *Tree[S]) ([]S, error) {
	if tree == nil || tree.root == nil {
		return nil, fmt.Errorf("%w: empty tree", codecerr.ErrInvalidInput)
	}

	root := tree.root
	if root.IsLeaf() {
		out := make([]S, 0, len(bits))
		for index := 0; index < len(bits); index++ {
			if Code(bits[index:index+1]) != degenerateCode {
				return nil, fmt.Errorf("%w: unexpected %q at bit %d of a single-symbol code", codecerr.ErrMalformedStream, bits[index], index)
			}
			out = append(out, root.symbol)
		}
		return out, nil
	}

	var out []S
	cursor := root
	for index := 0; index < len(bits); index++ {
		switch bits[index] {
		case '0':
			cursor = cursor.left
		case '1':
			cursor = cursor.right
		default:
			return nil, fmt.Errorf("%w: unexpected %q at bit %d", codecerr.ErrMalformedStream, bits[index], index)
		}
		if cursor.IsLeaf() {
			out = append(out, cursor.symbol)
			cursor = root
		}
	}
	if cursor != root {
		return nil, fmt.Errorf("%w: bitstring ends in the middle of a code", codecerr.ErrMalformedStream)
	}
	if out == nil {
		out = []S{}
	}
	return out, nil
}
