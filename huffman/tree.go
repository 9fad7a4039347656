package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

// Node is a node of an encoding tree.  A Node is either a leaf, which holds a
// weight and a symbol, or an internal node, which holds a weight equal to
// the sum of its children's weights and exactly two children.
//
// Nodes are immutable.  Internal nodes are only ever created by BuildTree,
// and each one exclusively owns its children.
type Node[S comparable] struct {
	weight int
	symbol S
	left   *Node[S]
	right  *Node[S]
}

// NewLeaf constructs a leaf for symbol with the given weight.
func NewLeaf[S comparable](symbol S, weight int) *Node[S] {
	return &Node[S]{weight: weight, symbol: symbol}
}

func newInternal[S comparable](left, right *Node[S]) *Node[S] {
	return &Node[S]{weight: left.weight + right.weight, left: left, right: right}
}

// IsLeaf returns true iff this node is a leaf.
func (n *Node[S]) IsLeaf() bool {
	return n.left == nil
}

// Weight returns the weight of this node.
func (n *Node[S]) Weight() int {
	return n.weight
}

// Symbol returns the symbol of a leaf.  The second return value is false for
// internal nodes.
func (n *Node[S]) Symbol() (S, bool) {
	if !n.IsLeaf() {
		var zero S
		return zero, false
	}
	return n.symbol, true
}

// Left returns the left ('0') child, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the right ('1') child, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// Tree is a fully built encoding tree.  A Tree is immutable and may be shared
// by any number of concurrent decoders.
type Tree[S comparable] struct {
	root   *Node[S]
	leaves int
}

// NewTree builds the encoding tree for a frequency table.  It fails with
// codecerr.ErrInvalidInput if the table is empty.
func NewTree[S comparable](ft FrequencyTable[S]) (*Tree[S], error) {
	return BuildTree(ft.Leaves())
}

// BuildTree builds an encoding tree from a list of leaves, one per distinct
// symbol, using the greedy minimum-weight merge: the two lightest nodes are
// repeatedly popped from a min-heap and replaced with a new internal node
// whose left child is the first one popped.
//
// Ties are broken first-in, first-out.  The leaves are numbered in the order
// given, each merged node is numbered after everything created before it,
// and among nodes of equal weight the lowest number is popped first.  The
// same leaves in the same order therefore always produce the same tree.
//
// A single leaf yields a degenerate tree whose root is that leaf.
//
// BuildTree fails with codecerr.ErrInvalidInput if leaves is empty, contains
// an internal node, a non-positive weight, or the same symbol twice.
func BuildTree[S comparable](leaves []*Node[S]) (*Tree[S], error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("%w: cannot build a Huffman tree from zero symbols", codecerr.ErrInvalidInput)
	}

	seen := make(map[S]struct{}, len(leaves))
	h := nodeHeap[S]{list: make([]nodeAndSeq[S], 0, len(leaves))}
	for index, leaf := range leaves {
		if leaf == nil || !leaf.IsLeaf() {
			return nil, fmt.Errorf("%w: item %d is not a leaf", codecerr.ErrInvalidInput, index)
		}
		if leaf.weight <= 0 {
			return nil, fmt.Errorf("%w: symbol %s has weight %d", codecerr.ErrInvalidInput, formatSymbol(leaf.symbol), leaf.weight)
		}
		if _, found := seen[leaf.symbol]; found {
			return nil, fmt.Errorf("%w: duplicate symbol %s", codecerr.ErrInvalidInput, formatSymbol(leaf.symbol))
		}
		seen[leaf.symbol] = struct{}{}
		h.list = append(h.list, nodeAndSeq[S]{leaf, uint64(index)})
	}
	h.Init()

	nextSeq := uint64(len(leaves))
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq[S])
		b := heap.Pop(&h).(nodeAndSeq[S])
		heap.Push(&h, nodeAndSeq[S]{newInternal(a.node, b.node), nextSeq})
		nextSeq++
	}

	// n leaves always take exactly n-1 merges.
	assert.Assertf(nextSeq == uint64(2*len(leaves)-1), "merged %d nodes from %d leaves", nextSeq, len(leaves))

	root := heap.Pop(&h).(nodeAndSeq[S]).node
	return &Tree[S]{root: root, leaves: len(leaves)}, nil
}

// Root returns the root node.
func (t *Tree[S]) Root() *Node[S] {
	return t.root
}

// Len returns the number of leaves, i.e. the size of the alphabet.
func (t *Tree[S]) Len() int {
	return t.leaves
}

// Weight returns the weight of the root, i.e. the length of the input the
// tree was built from.
func (t *Tree[S]) Weight() int {
	return t.root.weight
}

// IsDegenerate returns true iff the tree consists of a single leaf.
func (t *Tree[S]) IsDegenerate() bool {
	return t.root.IsLeaf()
}

// String returns a short human-readable description of the tree.
func (t *Tree[S]) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, weight %d)", t.leaves, t.root.weight)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one line per node in depth-first order, left before right.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.leaves)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.root.weight)
	walk(t.root, func(path []byte, n *Node[S]) {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%q) = {%d, %s}\n", path, n.weight, formatSymbol(n.symbol))
		} else {
			fmt.Fprintf(&buf, "\tNode(%q) = {%d}\n", path, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString is like Dump, but returns a string.
func (t *Tree[S]) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// walk visits every node of the tree rooted at root in depth-first order,
// passing the root-to-node path as a sequence of '0' and '1' bytes.  The
// path buffer is reused; fn must copy it if it needs to keep it.
//
// We use an explicit stack rather than recursion.  walkItem.x records where
// we are at each level:
//   x=0 → We just arrived at this node
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func walk[S comparable](root *Node[S], fn func(path []byte, n *Node[S])) {
	path := make([]byte, 0, 32)
	stack := make([]walkItem[S], 0, 32)
	stack = append(stack, walkItem[S]{n: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch {
		case x == 0:
			fn(path, top.n)
			if top.n.IsLeaf() {
				stack = stack[:len(stack)-1]
				continue
			}
			path = append(path, '0')
			stack = append(stack, walkItem[S]{n: top.n.left})
		case x == 1:
			path[len(path)-1] = '1'
			stack = append(stack, walkItem[S]{n: top.n.right})
		default:
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}
}

type walkItem[S comparable] struct {
	n *Node[S]
	x byte
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq[S comparable] struct {
	node *Node[S]
	seq  uint64
}

type nodeHeap[S comparable] struct {
	list []nodeAndSeq[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[rune])(nil)

// }}}
