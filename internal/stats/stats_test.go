package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/textcodec"
)

func TestMeasure(t *testing.T) {
	text := strings.Repeat("e", 300) + strings.Repeat("t", 90) + "aoinshrdlu"
	a, err := textcodec.Compress(text, textcodec.Options{})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	r, err := Measure(text, a)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if r.TextBytes != 400 || r.Symbols != 400 || r.Alphabet != 12 {
		t.Errorf("wrong counts: %+v", r)
	}
	if r.FixedBits != 400*4 {
		t.Errorf("expected fixed-length baseline %d, got %d", 400*4, r.FixedBits)
	}
	if r.Bits >= r.FixedBits {
		t.Errorf("Huffman code (%d bits) no better than fixed length (%d bits)", r.Bits, r.FixedBits)
	}
	if r.ArchiveBytes == 0 || r.HufioBytes == 0 {
		t.Errorf("expected non-zero sizes: %+v", r)
	}
	if ratio := r.Ratio(); ratio <= 0 || ratio >= 1 {
		t.Errorf("expected a ratio in (0, 1), got %f", ratio)
	}
}

func TestMeasure_Empty(t *testing.T) {
	a, err := textcodec.Compress("", textcodec.Options{})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	r, err := Measure("", a)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if r.Ratio() != 0 || r.Bits != 0 {
		t.Errorf("expected an empty report, got %+v", r)
	}
}

func TestReport_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().Object("stats", Report{TextBytes: 10, ArchiveBytes: 5}).Msg("measured")

	out := buf.String()
	for _, want := range []string{`"text_bytes":10`, `"archive_bytes":5`, `"ratio":0.5`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}
