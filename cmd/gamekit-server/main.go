package main

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamekit/server"
)

type config struct {
	Addr     string `env:"GAMEKIT_ADDR" envDefault:":8000"`
	LogLevel string `env:"GAMEKIT_LOG_LEVEL" envDefault:"info"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	app := server.New()
	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
