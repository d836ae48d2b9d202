package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/talosati/refundrebel-dev-challenge/pkg/api"
	"github.com/talosati/refundrebel-dev-challenge/pkg/board"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("REFUNDREBEL_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("REFUNDREBEL_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "refundrebel",
		Description: "Journey and arrival lookup gateway for the DB Vendo API",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			board.RegisterCLI(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
