// Package huffman implements Huffman prefix codes over an arbitrary alphabet
// of comparable symbols.
//
// The usual flow is:
//
//     freq := huffman.CountFrequencies(symbols)
//     tree, err := huffman.NewTree(freq)
//     table := huffman.NewCodeTable(tree)
//     bits, err := huffman.Encode(symbols, table)
//     symbols, err = huffman.Decode(bits, tree)
//
// Bitstrings are plain strings over the bytes '0' and '1'.  PackBits and
// UnpackBits convert them to and from packed bytes, and WriteTree / ReadTree
// serialize the tree that a decoder needs alongside them.
//
// Trees are not canonicalized: the exact codes depend on the tie-break rule
// documented on BuildTree, which is stable across runs.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
