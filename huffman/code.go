package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Code represents the sequence of bits assigned to one symbol, as a string of
// '0' and '1' bytes.  The first byte is the first bit, i.e. the branch taken
// from the root.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// IsPrefixOf returns true iff hc is a proper prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	return len(hc) < len(other) && strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// degenerateCode is assigned to the only symbol of a single-leaf tree, since
// the empty path from the root is not a usable code.
const degenerateCode = Code("0")

// CodeTable maps each symbol of a tree to its Code.  The table is prefix-free:
// no Code is a proper prefix of another.
type CodeTable[S comparable] struct {
	codes map[S]Code
	order []S
}

// NewCodeTable derives the CodeTable for a tree by walking every root-to-leaf
// path, appending '0' for each step to a left child and '1' for each step to a
// right child.  The single symbol of a degenerate tree gets the Code "0".
func NewCodeTable[S comparable](tree *Tree[S]) CodeTable[S] {
	ct := CodeTable[S]{
		codes: make(map[S]Code, tree.leaves),
		order: make([]S, 0, tree.leaves),
	}
	walk(tree.root, func(path []byte, n *Node[S]) {
		if !n.IsLeaf() {
			return
		}
		hc := Code(path)
		if len(path) == 0 {
			hc = degenerateCode
		}
		ct.codes[n.symbol] = hc
		ct.order = append(ct.order, n.symbol)
	})
	return ct
}

// Code returns the Code for symbol.  The second return value is false if the
// symbol is not in the table.
func (ct CodeTable[S]) Code(symbol S) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct CodeTable[S]) Len() int {
	return len(ct.order)
}

// Symbols returns the symbols of the table in tree order, left to right.
func (ct CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest Code.
func (ct CodeTable[S]) MinSize() int {
	min := 0
	for index, s := range ct.order {
		if size := len(ct.codes[s]); index == 0 || size < min {
			min = size
		}
	}
	return min
}

// MaxSize is the bit length of the longest Code.
func (ct CodeTable[S]) MaxSize() int {
	max := 0
	for _, s := range ct.order {
		if size := len(ct.codes[s]); size > max {
			max = size
		}
	}
	return max
}

// EncodedLen returns the number of bits Encode would produce for an input with
// the given frequencies, or -1 if some symbol in ft is missing from the table.
func (ct CodeTable[S]) EncodedLen(ft FrequencyTable[S]) int {
	var sum int
	for _, s := range ft.order {
		hc, found := ct.codes[s]
		if !found {
			return -1
		}
		sum += ft.weights[s] * len(hc)
	}
	return sum
}

// FixedLen returns the number of bits needed to encode an input with the given
// frequencies using a fixed-length code just wide enough for its alphabet.
// It is the baseline a Huffman code is measured against.
func FixedLen[S comparable](ft FrequencyTable[S]) int {
	return ft.total * log2ceil(len(ft.order))
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, s := range ct.order {
		fmt.Fprintf(&buf, "\tCode(%s) = %s\n", formatSymbol(s), ct.codes[s])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString is like Dump, but returns a string.
func (ct CodeTable[S]) DebugString() string {
	var buf bytes.Buffer
	_, _ = ct.Dump(&buf)
	return buf.String()
}
