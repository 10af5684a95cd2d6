// Package http contains the JSON route handlers.
package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"terretahub/internal/avatars"
	"terretahub/internal/cache"
)

// AvatarResponse is the composite derivation result for one identifier. It is
// immutable once cached; cache entries are replaced wholesale, never patched.
type AvatarResponse struct {
	AvatarURL string          `json:"avatarUrl"`
	Element   avatars.Element `json:"element"`
	StyleID   string          `json:"styleId"`
	StyleName string          `json:"styleName"`
}

// Handlers bundles the dependencies the route handlers need. The caches are
// injected here rather than living as package globals so tests can build a
// fresh set per case.
type Handlers struct {
	Logger       *slog.Logger
	DB           *gorm.DB
	ElementCache *cache.Bounded[avatars.Element]
	AvatarCache  *cache.Bounded[AvatarResponse]
}

// NewHandlers builds the handler set with caches bounded at cacheMaxLen
// entries each.
func NewHandlers(logger *slog.Logger, db *gorm.DB, cacheMaxLen int) *Handlers {
	return &Handlers{
		Logger:       logger,
		DB:           db,
		ElementCache: cache.NewBounded[avatars.Element](cacheMaxLen),
		AvatarCache:  cache.NewBounded[AvatarResponse](cacheMaxLen),
	}
}

// ErrorHandler converts unhandled handler errors into JSON. Fiber errors keep
// their status; anything else becomes a 500 with a generic body so internals
// never leak to clients.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		logger.Error("Unhandled error",
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
