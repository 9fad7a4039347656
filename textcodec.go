package textcodec

import (
	"fmt"
	"unicode/utf8"

	"github.com/chronos-tachyon/textcodec/codecerr"
	"github.com/chronos-tachyon/textcodec/huffman"
	"github.com/chronos-tachyon/textcodec/rle"
)

// CompressRLE splits text into maximal runs of runes.  Invalid UTF-8 is
// read as utf8.RuneError, like any []rune conversion.
func CompressRLE(text string) rle.Stream[rune] {
	return rle.Encode([]rune(text))
}

// DecompressRLE expands a run stream back into text.  It fails with
// codecerr.ErrMalformedStream if some run has a count below 1.
func DecompressRLE(stream rle.Stream[rune]) (string, error) {
	symbols, err := rle.Decode(stream)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}

// BuildHuffman counts the runes of text and builds its Huffman tree and code
// table.  It fails with codecerr.ErrInvalidInput if text is empty or is not
// valid UTF-8.  An empty text has no alphabet to build a tree from.
func BuildHuffman(text string) (*huffman.Tree[rune], huffman.CodeTable[rune], error) {
	if err := checkText(text); err != nil {
		return nil, huffman.CodeTable[rune]{}, err
	}
	tree, err := huffman.NewTree(huffman.CountFrequencies([]rune(text)))
	if err != nil {
		return nil, huffman.CodeTable[rune]{}, err
	}
	return tree, huffman.NewCodeTable(tree), nil
}

// HuffmanEncode encodes text as a bitstring of '0' and '1' bytes.  It fails
// with codecerr.ErrLookup if text contains a rune missing from table.
func HuffmanEncode(text string, table huffman.CodeTable[rune]) (string, error) {
	if err := checkText(text); err != nil {
		return "", err
	}
	return huffman.Encode([]rune(text), table)
}

// HuffmanDecode decodes a bitstring produced by HuffmanEncode with the code
// table of tree.  It fails with codecerr.ErrMalformedStream if bits ends in
// the middle of a code or contains anything other than '0' and '1'.
func HuffmanDecode(bits string, tree *huffman.Tree[rune]) (string, error) {
	symbols, err := huffman.Decode(bits, tree)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}

func checkText(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: text is not valid UTF-8", codecerr.ErrInvalidInput)
	}
	return nil
}
