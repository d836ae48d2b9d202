package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

// StationSource provides the full searchable station list.
type StationSource interface {
	Stations() ([]raildata.Station, error)
}

func StationsRouter(router fiber.Router, source StationSource) {
	router.Get("/", getAllStations(source))
}

func getAllStations(source StationSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stations, err := source.Stations()
		if err != nil {
			log.Error().Err(err).Msg("Failed to load stations")
			return internalErrorResponse(c, err)
		}

		return successResponse(c, stations)
	}
}
