package routes

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/talosati/refundrebel-dev-challenge/pkg/raildata"
)

// JourneyClient is the slice of the db-vendo client the journeys route needs.
type JourneyClient interface {
	Journeys(ctx context.Context, from string, to string, departure string) ([]raildata.RawJourney, error)
}

func JourneysRouter(router fiber.Router, client JourneyClient) {
	router.Get("/", getJourneys(client))
}

func getJourneys(client JourneyClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from := strings.TrimSpace(c.Query("from"))
		to := strings.TrimSpace(c.Query("to"))
		departure := c.Query("departure")

		if from == "" || to == "" {
			return badRequestResponse(c, "Missing required parameters: from and to are required")
		}

		if departure != "" {
			if _, err := time.Parse(time.RFC3339, departure); err != nil {
				return badRequestResponse(c, "Parameter departure should be an RFC3339/ISO8601 datetime")
			}
		}

		rawJourneys, err := client.Journeys(c.Context(), from, to, departure)
		if err != nil {
			log.Error().Err(err).Str("from", from).Str("to", to).Msg("Failed to fetch journeys")
			return providerErrorResponse(c, err)
		}

		journeys, err := raildata.JourneysFromRaw(rawJourneys, raildata.JourneyQuery{From: from, To: to})
		if err != nil {
			log.Error().Err(err).Msg("Failed to transform journeys")
			return internalErrorResponse(c, err)
		}

		return successResponse(c, journeys)
	}
}
