package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamekit/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	games := flag.Int("games", 200, "games per matchup")
	workers := flag.Int("workers", 8, "concurrent games")
	outDir := flag.String("out", "results", "output directory")
	seed := flag.Uint64("seed", 42, "master random seed")
	flag.Parse()

	start := time.Now()
	err := experiments.Run(experiments.Config{
		GamesPerMatchup: *games,
		Workers:         *workers,
		OutDir:          *outDir,
		Seed:            *seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("simulation complete")
}
