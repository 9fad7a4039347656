// Package app runs the textcompress demonstrations: run-length coding,
// Huffman coding, and the two combined, each checked for an exact round trip.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/textcodec"
	"github.com/chronos-tachyon/textcodec/internal/config"
	"github.com/chronos-tachyon/textcodec/internal/stats"
	"github.com/chronos-tachyon/textcodec/internal/textio"
	"github.com/chronos-tachyon/textcodec/rle"
)

// App holds what the demonstrations need: the configuration and a logger.
type App struct {
	conf   *config.Conf
	logger zerolog.Logger
}

// New constructs an App.
func New(conf *config.Conf, logger zerolog.Logger) *App {
	return &App{conf: conf, logger: logger}
}

// Run reads the configured input, runs every demonstration, and writes the
// archive to the configured output, if any.
func (app *App) Run() error {
	input := app.conf.String("input")
	text, err := textio.ReadText(input)
	if err != nil {
		return err
	}
	app.logger.Info().Str("input", input).Int("bytes", len(text)).Msg("loaded text")

	if err := app.runRLE(text); err != nil {
		return err
	}
	if _, err := app.runArchive("huffman", text, textcodec.Options{}); err != nil {
		return err
	}
	if _, err := app.runArchive("rle+huffman", text, textcodec.Options{RLE: true}); err != nil {
		return err
	}

	output := app.conf.String("output")
	if output == "" {
		return nil
	}
	opts := textcodec.Options{RLE: app.conf.Bool("rle")}
	a, err := textcodec.Compress(text, opts)
	if err != nil {
		return err
	}
	data, err := a.MarshalBinary()
	if err != nil {
		return err
	}
	if err := textio.WriteBytes(output, data); err != nil {
		return err
	}
	app.logger.Info().Str("output", output).Bool("rle", opts.RLE).Int("bytes", len(data)).Msg("wrote archive")
	return nil
}

func (app *App) runRLE(text string) error {
	stream := textcodec.CompressRLE(text)
	flat := rle.Format(stream)

	decoded, err := textcodec.DecompressRLE(stream)
	if err != nil {
		return fmt.Errorf("rle: %w", err)
	}
	if decoded != text {
		return fmt.Errorf("rle: round trip mismatch")
	}

	app.logger.Debug().Str("compressed", flat).Msg("rle")
	app.logger.Info().
		Str("mode", "rle").
		Int("runs", len(stream)).
		Int("flat_bytes", len(flat)).
		Int("text_bytes", len(text)).
		Msg("round trip ok")
	return nil
}

func (app *App) runArchive(mode string, text string, opts textcodec.Options) (stats.Report, error) {
	a, err := textcodec.Compress(text, opts)
	if err != nil {
		return stats.Report{}, fmt.Errorf("%s: %w", mode, err)
	}
	decoded, err := textcodec.Decompress(a)
	if err != nil {
		return stats.Report{}, fmt.Errorf("%s: %w", mode, err)
	}
	if decoded != text {
		return stats.Report{}, fmt.Errorf("%s: round trip mismatch", mode)
	}

	report, err := stats.Measure(text, a)
	if err != nil {
		return stats.Report{}, fmt.Errorf("%s: %w", mode, err)
	}

	app.logger.Debug().Str("compressed", a.Bits).Msg(mode)
	app.logger.Info().Str("mode", mode).Object("stats", report).Msg("round trip ok")
	return report, nil
}
