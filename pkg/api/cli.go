package api

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/talosati/refundrebel-dev-challenge/pkg/config"
	"github.com/talosati/refundrebel-dev-challenge/pkg/database"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey and arrival lookup web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":3000",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := config.Load()

					// The application database is provisioned but carries no
					// gateway data yet, so a failed connection is not fatal
					if err := database.Connect(cfg.MongoConnection, cfg.MongoDatabase); err != nil {
						log.Warn().Err(err).Msg("Failed to connect to MongoDB")
					} else {
						log.Info().Msg("Connected to MongoDB")
					}

					return SetupServer(c.String("listen"), cfg)
				},
			},
		},
	}
}
