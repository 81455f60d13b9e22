package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/busnetwork/pkg/journeyplanner"
	"github.com/travigo/busnetwork/pkg/network"
)

func sendError(c *fiber.Ctx, status int, message string) error {
	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": message,
	})
}

// sendLookupError maps the read errors onto status codes.
func sendLookupError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, network.ErrStopNotFound), errors.Is(err, network.ErrOutOfRange):
		return sendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, journeyplanner.ErrUnreachable):
		return sendError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return sendError(c, fiber.StatusInternalServerError, err.Error())
	}
}
