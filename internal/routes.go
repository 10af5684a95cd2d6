package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"terretahub/internal/config"
	"terretahub/internal/http"
	"terretahub/internal/http/middleware"
)

// publicCORSConfig is the CORS setup for the read-only avatar endpoints;
// they are consumed cross-origin by the web frontend and third parties.
var publicCORSConfig = cors.Config{
	AllowOrigins: "*",
	AllowMethods: "GET,POST,OPTIONS",
	AllowHeaders: "Origin, Content-Type, Accept, x-api-key",
}

// MountRoutes mounts all application routes on the fiber app.
func MountRoutes(app *fiber.App, h *http.Handlers, cfg *config.Config) {
	app.Use(cors.New(publicCORSConfig))

	// Health stays open even when a shared secret is configured.
	app.Get("/health", h.HealthAction)

	auth := middleware.SharedKeyAuth(cfg.AvatarAPIKey, h.Logger)

	// === AVATAR DERIVATION ROUTES ===
	app.Get("/element/:userId", auth, h.ElementAction)
	app.Get("/avatar/:userId", auth, h.AvatarAction)
	app.Get("/styles", auth, h.StylesAction)
	app.Get("/styles/:element", auth, h.StylesByElementAction)

	// === COMMUNITY API ROUTES ===
	api := app.Group("/api/v1", auth)
	api.Post("/members", h.MemberCreateAction)
	api.Get("/members", h.MembersIndexAction)
	api.Get("/members/:handle", h.MemberShowAction)

	api.Post("/events", h.EventCreateAction)
	api.Get("/events", h.EventsIndexAction)
	api.Get("/events/:slug", h.EventShowAction)
	api.Post("/events/:slug/registrations", h.EventRegisterAction)
	api.Post("/registrations/:id/approve", h.RegistrationApproveAction)
	api.Post("/registrations/:id/cancel", h.RegistrationCancelAction)

	// Unmatched routes get a JSON 404.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})
}
