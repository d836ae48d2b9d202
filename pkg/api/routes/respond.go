package routes

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"

	"github.com/talosati/refundrebel-dev-challenge/pkg/dbvendo"
)

// successResponse wraps data in the {success,data} envelope, reduced to the
// "basic" field group.
func successResponse(c *fiber.Ctx, data any) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, data)

	if err != nil {
		log.Error().Err(err).Msg("Failed to reduce response")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "Could not serialise response",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reduced,
	})
}

func badRequestResponse(c *fiber.Ctx, message string) error {
	c.SendStatus(fiber.StatusBadRequest)
	return c.JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func internalErrorResponse(c *fiber.Ctx, err error) error {
	c.SendStatus(fiber.StatusInternalServerError)
	return c.JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// providerErrorResponse maps a db-vendo client failure onto our own status
// codes: upstream statuses pass through verbatim, a dead upstream becomes
// 503, anything failing before a request existed becomes 500.
func providerErrorResponse(c *fiber.Ctx, err error) error {
	var upstreamErr *dbvendo.UpstreamError
	var noResponseErr *dbvendo.NoResponseError

	switch {
	case errors.As(err, &upstreamErr):
		c.SendStatus(upstreamErr.StatusCode)

		message := upstreamErr.Message
		if message == "" {
			message = "Error from DB Vendo API"
		}

		response := fiber.Map{
			"success": false,
			"error":   message,
		}
		if json.Valid(upstreamErr.Body) {
			response["details"] = json.RawMessage(upstreamErr.Body)
		}

		return c.JSON(response)
	case errors.As(err, &noResponseErr):
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"success": false,
			"error":   noResponseErr.Error(),
		})
	default:
		return internalErrorResponse(c, err)
	}
}
