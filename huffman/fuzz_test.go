package huffman

import (
	"testing"
)

func FuzzEncodeDecode(f *testing.F) {
	f.Add("aaabbbccd")
	f.Add("a")
	f.Add("the quick brown fox")
	f.Add("日本語テキスト")

	f.Fuzz(func(t *testing.T, input string) {
		symbols := []rune(input)
		if len(symbols) == 0 {
			return
		}
		tree, err := NewTree(CountFrequencies(symbols))
		if err != nil {
			t.Fatalf("NewTree failed: %v", err)
		}
		bits, err := Encode(symbols, NewCodeTable(tree))
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := Decode(bits, tree)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if string(decoded) != string(symbols) {
			t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", string(symbols), string(decoded))
		}
	})
}
