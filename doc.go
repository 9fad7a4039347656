// Package textcodec compresses text losslessly with run-length encoding,
// Huffman coding, or both.
//
// The symbols are the runes of the text.  The building blocks live in the
// huffman and rle packages; this package wires them together for strings and
// adds Archive, a self-contained binary container holding the Huffman tree
// alongside the packed bitstream.
//
// All operations are pure and synchronous.  Trees and code tables are
// immutable, so they may be shared freely between goroutines.
//
package textcodec
