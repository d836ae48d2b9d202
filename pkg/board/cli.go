package board

import (
	"context"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/talosati/refundrebel-dev-challenge/pkg/config"
	"github.com/talosati/refundrebel-dev-challenge/pkg/dbvendo"
	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Show a filtered arrival or departure board for a station",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "station",
				Usage:    "station id to look up",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "departures",
				Usage: "show the departure board instead of arrivals",
			},
			&cli.IntFlag{
				Name:  "min-delay",
				Usage: "only show events delayed at least this many minutes",
			},
			&cli.IntFlag{
				Name:  "max-delay",
				Usage: "only show events delayed at most this many minutes",
			},
			&cli.StringFlag{
				Name:  "horizon",
				Usage: "only show events within this ISO8601 duration from now (e.g. PT45M)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "dump the raw provider response",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			client := dbvendo.NewClient(cfg.DBVendoBaseURL, cfg.FrontendOrigin)

			stationID := c.String("station")
			ctx := context.Background()

			var rawEvents []raildata.RawStationEvent
			var err error
			if c.Bool("departures") {
				rawEvents, err = client.Departures(ctx, stationID)
			} else {
				rawEvents, err = client.Arrivals(ctx, stationID)
			}
			if err != nil {
				return err
			}

			if c.Bool("debug") {
				pretty.Println(rawEvents)
			}

			events, err := raildata.StationEventsFromRaw(rawEvents)
			if err != nil {
				return err
			}

			now := time.Now()

			var filter raildata.BoardFilter
			if c.IsSet("min-delay") {
				minDelay := c.Int("min-delay")
				filter.MinDelay = &minDelay
			}
			if c.IsSet("max-delay") {
				maxDelay := c.Int("max-delay")
				filter.MaxDelay = &maxDelay
			}
			if horizon := c.String("horizon"); horizon != "" {
				minutes, err := horizonToMinutes(horizon, now)
				if err != nil {
					return err
				}
				filter.MaxHorizon = &minutes
			}

			renderBoard(os.Stdout, filter.Apply(events, now))

			return nil
		},
	}
}
