// Package logging builds the zerolog logger used by textcompress.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/textcodec/internal/config"
)

// New builds a logger from the "logger.*" keys of conf, writing to stderr.
func New(conf *config.Conf) (zerolog.Logger, error) {
	return NewWithWriter(conf, os.Stderr)
}

// NewWithWriter is like New, but writes to out.
func NewWithWriter(conf *config.Conf, out io.Writer) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = conf.String("logger.timeformat", time.RFC3339)

	level, err := zerolog.ParseLevel(conf.String("logger.level", "info"))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	if conf.Bool("logger.prettier", true) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
