// Package stats measures how well an Archive compresses its text, against a
// fixed-length code and against the adaptive byte-level Huffman coder in
// github.com/icza/huffman/hufio.
package stats

import (
	"bytes"
	"fmt"

	"github.com/icza/huffman/hufio"
	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/textcodec"
	"github.com/chronos-tachyon/textcodec/huffman"
)

// Report holds the sizes of one text under several encodings.
type Report struct {
	TextBytes    int
	Symbols      int
	Alphabet     int
	Bits         int
	FixedBits    int
	ArchiveBytes int
	HufioBytes   int
}

// Measure builds the Report for text and the archive Compress produced for
// it.
func Measure(text string, a *textcodec.Archive) (Report, error) {
	ft := huffman.CountFrequencies([]rune(text))

	data, err := a.MarshalBinary()
	if err != nil {
		return Report{}, fmt.Errorf("marshal archive: %w", err)
	}
	baseline, err := hufioSize([]byte(text))
	if err != nil {
		return Report{}, fmt.Errorf("hufio baseline: %w", err)
	}

	return Report{
		TextBytes:    len(text),
		Symbols:      ft.Total(),
		Alphabet:     ft.Len(),
		Bits:         len(a.Bits),
		FixedBits:    huffman.FixedLen(ft),
		ArchiveBytes: len(data),
		HufioBytes:   baseline,
	}, nil
}

// Ratio returns ArchiveBytes / TextBytes, or 0 for an empty text.
func (r Report) Ratio() float64 {
	if r.TextBytes == 0 {
		return 0
	}
	return float64(r.ArchiveBytes) / float64(r.TextBytes)
}

// MarshalZerologObject lets a Report be logged with zerolog's Object().
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Int("text_bytes", r.TextBytes).
		Int("symbols", r.Symbols).
		Int("alphabet", r.Alphabet).
		Int("bits", r.Bits).
		Int("fixed_bits", r.FixedBits).
		Int("archive_bytes", r.ArchiveBytes).
		Int("hufio_bytes", r.HufioBytes).
		Float64("ratio", r.Ratio())
}

var _ zerolog.LogObjectMarshaler = Report{}

func hufioSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w := hufio.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
