package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/chronos-tachyon/textcodec/internal/app"
	"github.com/chronos-tachyon/textcodec/internal/config"
	"github.com/chronos-tachyon/textcodec/internal/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("TEXTCODEC_CONFIG"), "path to a YAML config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, err := logging.New(conf)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build logger")
	}

	if err := app.New(conf, logger).Run(); err != nil {
		logger.Fatal().Err(err).Msg("textcompress failed")
	}
}
