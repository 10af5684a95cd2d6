package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// SharedKeyAuth validates the shared API key on protected routes. The key may
// be supplied as an `x-api-key` header or an `apiKey` query parameter. When
// no secret is configured the check is skipped entirely — running open is an
// explicit deployment choice, not an oversight.
func SharedKeyAuth(secret string, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		provided := c.Get("x-api-key")
		if provided == "" {
			provided = c.Query("apiKey")
		}

		// Constant-time comparison to prevent timing attacks
		if !secureCompare(provided, secret) {
			logger.Warn("Rejected request with missing or invalid API key",
				slog.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Provide a valid key via the x-api-key header or apiKey query parameter",
			})
		}

		return c.Next()
	}
}

// secureCompare performs constant-time string comparison
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := 0; i < len(a); i++ {
		result |= a[i] ^ b[i]
	}
	return result == 0
}
