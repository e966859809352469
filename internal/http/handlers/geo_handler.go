package handlers

import (
	"grentify/internal/geo"

	"github.com/gofiber/fiber/v2"
)

type GeoHandler struct {
	Geo *geo.Client
}

// GET /api/location — raw provider JSON forwarded; any provider trouble is
// a generic server error.
func (h *GeoHandler) Location(c *fiber.Ctx) error {
	body, err := h.Geo.Lookup()
	if err != nil {
		return serverError(c, "geo.lookup.fail", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
