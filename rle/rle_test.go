package rle

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

func TestEncode(t *testing.T) {
	type testRow struct {
		input  string
		expect Stream[rune]
	}

	testData := [...]testRow{
		{"", Stream[rune]{}},
		{"a", Stream[rune]{{1, 'a'}}},
		{"aaabbbccd", Stream[rune]{{3, 'a'}, {3, 'b'}, {2, 'c'}, {1, 'd'}}},
		{"abab", Stream[rune]{{1, 'a'}, {1, 'b'}, {1, 'a'}, {1, 'b'}}},
		{strings.Repeat("x", 12) + "11", Stream[rune]{{12, 'x'}, {2, '1'}}},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			actual := Encode([]rune(row.input))
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
			if err := actual.Validate(); err != nil {
				t.Errorf("Validate failed: %v", err)
			}
			if actual.Len() != len([]rune(row.input)) {
				t.Errorf("expected Len() %d, got %d", len([]rune(row.input)), actual.Len())
			}

			decoded, err := Decode(actual)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if row.input != string(decoded) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.input, string(decoded))
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	decoded, err := Decode(Stream[rune]{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected no symbols, got %q", string(decoded))
	}
}

func TestDecode_BadCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		_, err := Decode(Stream[rune]{{2, 'a'}, {count, 'b'}})
		if !errors.Is(err, codecerr.ErrMalformedStream) {
			t.Errorf("count %d: expected ErrMalformedStream, got %v", count, err)
		}
	}
}

func TestDecode_TooLong(t *testing.T) {
	type testRow struct {
		name   string
		stream Stream[rune]
	}

	testData := [...]testRow{
		{"max-int", Stream[rune]{{math.MaxInt, 'a'}}},
		{"overflowing-sum", Stream[rune]{{math.MaxInt, 'a'}, {math.MaxInt, 'b'}}},
		{"over-limit", Stream[rune]{{MaxLen, 'a'}, {1, 'b'}}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := Decode(row.stream)
			if !errors.Is(err, codecerr.ErrMalformedStream) {
				t.Errorf("expected ErrMalformedStream, got %v", err)
			}
			if out != nil {
				t.Errorf("expected no output, got %d symbols", len(out))
			}
		})
	}
}

func TestParse_HugeCount(t *testing.T) {
	stream, err := Parse("9223372036854775807:a")
	if err != nil {
		// 32-bit platforms reject the count while parsing.
		if !errors.Is(err, codecerr.ErrMalformedStream) {
			t.Fatalf("expected ErrMalformedStream, got %v", err)
		}
		return
	}
	if _, err := Decode(stream); !errors.Is(err, codecerr.ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	err := Stream[rune]{{2, 'a'}, {1, 'a'}}.Validate()
	if !errors.Is(err, codecerr.ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream for non-maximal runs, got %v", err)
	}
	err = Stream[rune]{{0, 'a'}}.Validate()
	if !errors.Is(err, codecerr.ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream for zero count, got %v", err)
	}
}

func TestEncode_Bytes(t *testing.T) {
	expect := Stream[byte]{{2, 0x00}, {1, 0xff}}
	actual := Encode([]byte{0x00, 0x00, 0xff})
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestFormatParse(t *testing.T) {
	type testRow struct {
		input string
		flat  string
	}

	testData := [...]testRow{
		{"", ""},
		{"aaabbbccd", "3:a3:b2:c1:d"},
		{strings.Repeat("a", 10) + "b", "10:a1:b"},
		{"1112333", "3:11:23:3"},
		{"::x", "2::1:x"},
		{"ééé€", "3:é1:€"},
	}
	for _, row := range testData {
		t.Run(row.flat, func(t *testing.T) {
			stream := Encode([]rune(row.input))
			actualFlat := Format(stream)
			if row.flat != actualFlat {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.flat, actualFlat)
			}

			parsed, err := Parse(actualFlat)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(stream, parsed) {
				t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", stream, parsed)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"3a",
		"3:",
		":a",
		"0:a",
		"-1:a",
		"+1:a",
		"3:a2",
		"x:a",
		"99999999999999999999999:a",
		"1:a1:a",
		"2:b3:b",
		"1:\xff",
		"2:a1:\xc3",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if !errors.Is(err, codecerr.ErrMalformedStream) {
				t.Errorf("expected ErrMalformedStream, got %v", err)
			}
		})
	}
}

func FuzzFormatParse(f *testing.F) {
	f.Add("aaabbbccd")
	f.Add("1112333")
	f.Add("::")

	f.Fuzz(func(t *testing.T, input string) {
		symbols := []rune(input)
		stream := Encode(symbols)
		parsed, err := Parse(Format(stream))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		decoded, err := Decode(parsed)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if string(symbols) != string(decoded) {
			t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", string(symbols), string(decoded))
		}
	})
}
