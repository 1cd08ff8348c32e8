package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamekit/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	c, err := cli.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	if err := c.Run(); err != nil {
		log.Fatal().Err(err).Msg("cli failed")
	}
}
