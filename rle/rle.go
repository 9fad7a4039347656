// Package rle implements run-length encoding over sequences of comparable
// symbols.
//
// Format and Parse give rune streams a flat textual form, "<count>:<symbol>"
// per run, e.g. "3:a3:b2:c1:d" for "aaabbbccd".  The explicit ':' delimiter
// keeps the form unambiguous for counts of 10 or more and for symbols that are
// themselves digits or colons.
package rle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/textcodec/codecerr"
)

// Delimiter separates a run's count from its symbol in the flat form.
const Delimiter = ':'

// MaxLen is the largest number of symbols Decode will expand a stream to.
const MaxLen = 1 << 28

// Run is a maximal repetition of one symbol.
type Run[S comparable] struct {
	Count  int
	Symbol S
}

// String returns the string representation of this Run.
func (r Run[S]) String() string {
	return fmt.Sprintf("(%d,%v)", r.Count, r.Symbol)
}

// Stream is an ordered sequence of runs.  In a well-formed Stream every count
// is at least 1 and no two adjacent runs share a symbol.
type Stream[S comparable] []Run[S]

// Len returns the number of symbols the stream expands to.
func (stream Stream[S]) Len() int {
	var n int
	for _, r := range stream {
		n += r.Count
	}
	return n
}

// Validate checks that every count is at least 1 and that the runs are
// maximal.
func (stream Stream[S]) Validate() error {
	for index, r := range stream {
		if r.Count < 1 {
			return fmt.Errorf("%w: run %d has count %d", codecerr.ErrMalformedStream, index, r.Count)
		}
		if index > 0 && stream[index-1].Symbol == r.Symbol {
			return fmt.Errorf("%w: runs %d and %d share a symbol", codecerr.ErrMalformedStream, index-1, index)
		}
	}
	return nil
}

// Encode splits seq into maximal runs, in order.  An empty seq yields an
// empty stream.
func Encode[S comparable](seq []S) Stream[S] {
	stream := make(Stream[S], 0, 8)
	for _, s := range seq {
		if last := len(stream) - 1; last >= 0 && stream[last].Symbol == s {
			stream[last].Count++
			continue
		}
		stream = append(stream, Run[S]{Count: 1, Symbol: s})
	}
	return stream
}

// Decode expands every run of the stream, in order.  It fails with
// codecerr.ErrMalformedStream if some count is less than 1 or if the stream
// expands to more than MaxLen symbols.
func Decode[S comparable](stream Stream[S]) ([]S, error) {
	var n int
	for index, r := range stream {
		if r.Count < 1 {
			return nil, fmt.Errorf("%w: run %d has count %d", codecerr.ErrMalformedStream, index, r.Count)
		}
		if r.Count > MaxLen-n {
			return nil, fmt.Errorf("%w: stream expands to more than %d symbols", codecerr.ErrMalformedStream, MaxLen)
		}
		n += r.Count
	}
	out := make([]S, 0, n)
	for _, r := range stream {
		for i := 0; i < r.Count; i++ {
			out = append(out, r.Symbol)
		}
	}
	return out, nil
}

// Format renders a rune stream in the flat "<count>:<symbol>" form.
func Format(stream Stream[rune]) string {
	var sb strings.Builder
	for _, r := range stream {
		sb.WriteString(strconv.Itoa(r.Count))
		sb.WriteRune(Delimiter)
		sb.WriteRune(r.Symbol)
	}
	return sb.String()
}

// Parse is the inverse of Format.  It fails with codecerr.ErrMalformedStream
// if text is not a sequence of decimal counts of at least 1, each followed
// by the delimiter and exactly one valid UTF-8 symbol, or if the runs are
// not maximal.
func Parse(text string) (Stream[rune], error) {
	stream := make(Stream[rune], 0, 8)
	for offset := 0; offset < len(text); {
		end := strings.IndexByte(text[offset:], Delimiter)
		if end < 0 {
			return nil, fmt.Errorf("%w: missing %q after count at offset %d", codecerr.ErrMalformedStream, Delimiter, offset)
		}
		digits := text[offset : offset+end]
		count, err := parseCount(digits)
		if err != nil {
			return nil, fmt.Errorf("%w: bad count %q at offset %d", codecerr.ErrMalformedStream, digits, offset)
		}
		offset += end + 1

		if offset >= len(text) {
			return nil, fmt.Errorf("%w: missing symbol at offset %d", codecerr.ErrMalformedStream, offset)
		}
		symbol, size := utf8.DecodeRuneInString(text[offset:])
		if symbol == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("%w: invalid UTF-8 at offset %d", codecerr.ErrMalformedStream, offset)
		}
		stream = append(stream, Run[rune]{Count: count, Symbol: symbol})
		offset += size
	}
	if err := stream.Validate(); err != nil {
		return nil, err
	}
	return stream, nil
}

func parseCount(digits string) (int, error) {
	if digits == "" {
		return 0, strconv.ErrSyntax
	}
	for index := 0; index < len(digits); index++ {
		if digits[index] < '0' || digits[index] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	count, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, strconv.ErrRange
	}
	return count, nil
}
