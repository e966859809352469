package handlers

import (
	applog "grentify/internal/log"

	"github.com/gofiber/fiber/v2"
)

func clientError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// serverError logs the real cause and answers with a generic body. Store
// errors never reach the caller verbatim.
func serverError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false, "message": "internal server error",
	})
}
