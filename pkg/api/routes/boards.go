package routes

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

// BoardClient is the slice of the db-vendo client the board routes need.
type BoardClient interface {
	Arrivals(ctx context.Context, stationID string) ([]raildata.RawStationEvent, error)
	Departures(ctx context.Context, stationID string) ([]raildata.RawStationEvent, error)
}

func ArrivalsRouter(router fiber.Router, client BoardClient) {
	router.Get("/station/:stationId", getArrivals(client))
}

func ArrivalsAndDeparturesRouter(router fiber.Router, client BoardClient) {
	router.Get("/station/:stationId", getArrivalsAndDepartures(client))
}

func getArrivals(client BoardClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stationID := c.Params("stationId")

		filter, err := boardFilterFromQuery(c)
		if err != nil {
			return badRequestResponse(c, err.Error())
		}

		rawArrivals, err := client.Arrivals(c.Context(), stationID)
		if err != nil {
			log.Error().Err(err).Str("station", stationID).Msg("Failed to fetch arrivals")
			return providerErrorResponse(c, err)
		}

		arrivals, err := raildata.StationEventsFromRaw(rawArrivals)
		if err != nil {
			log.Error().Err(err).Msg("Failed to transform arrivals")
			return internalErrorResponse(c, err)
		}

		return successResponse(c, filter.Apply(arrivals, time.Now()))
	}
}

func getArrivalsAndDepartures(client BoardClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stationID := c.Params("stationId")

		filter, err := boardFilterFromQuery(c)
		if err != nil {
			return badRequestResponse(c, err.Error())
		}

		// Arrivals first, then departures; either failure aborts the whole
		// lookup so a partial board is never returned
		rawArrivals, err := client.Arrivals(c.Context(), stationID)
		if err != nil {
			log.Error().Err(err).Str("station", stationID).Msg("Failed to fetch arrivals")
			return providerErrorResponse(c, err)
		}

		rawDepartures, err := client.Departures(c.Context(), stationID)
		if err != nil {
			log.Error().Err(err).Str("station", stationID).Msg("Failed to fetch departures")
			return providerErrorResponse(c, err)
		}

		arrivals, err := raildata.StationEventsFromRaw(rawArrivals)
		if err != nil {
			log.Error().Err(err).Msg("Failed to transform arrivals")
			return internalErrorResponse(c, err)
		}

		departures, err := raildata.StationEventsFromRaw(rawDepartures)
		if err != nil {
			log.Error().Err(err).Msg("Failed to transform departures")
			return internalErrorResponse(c, err)
		}

		now := time.Now()

		return successResponse(c, raildata.Board{
			Arrivals:   filter.Apply(arrivals, now),
			Departures: filter.Apply(departures, now),
		})
	}
}

// boardFilterFromQuery reads the optional minDelay/maxDelay/horizon query
// parameters (all minutes) into a BoardFilter.
func boardFilterFromQuery(c *fiber.Ctx) (raildata.BoardFilter, error) {
	var filter raildata.BoardFilter

	for param, target := range map[string]**int{
		"minDelay": &filter.MinDelay,
		"maxDelay": &filter.MaxDelay,
		"horizon":  &filter.MaxHorizon,
	} {
		value := c.Query(param)
		if value == "" {
			continue
		}

		parsed, err := strconv.Atoi(value)
		if err != nil {
			return raildata.BoardFilter{}, fmt.Errorf("Parameter %s should be an integer", param)
		}

		*target = &parsed
	}

	return filter, nil
}
