package http

import "github.com/gofiber/fiber/v2"

// HealthAction handles the health check endpoint. The body shape is fixed;
// monitoring consumers match it byte for byte.
func (h *Handlers) HealthAction(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "avatar-api",
	})
}
