// Package internal contains core application functionality
package internal

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"terretahub/internal/config"
	"terretahub/internal/database"
	"terretahub/internal/http"
	"terretahub/internal/logging"
)

// Application wires configuration, logging, storage and the HTTP server.
type Application struct {
	Config    *config.Config
	DBManager *database.DBManager
	Fiber     *fiber.App
}

// NewApp creates a new application instance with default settings
func NewApp() (*Application, error) {
	return NewAppWithConfig(config.GetConfig())
}

// NewAppWithConfig creates a new application with the provided config
func NewAppWithConfig(cfg *config.Config) (*Application, error) {
	logger := logging.New(cfg)

	dbManager := database.NewDBManager(cfg, logger)
	if err := dbManager.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: !cfg.IsDevelopment(),
		UnescapePath:          true,
		ErrorHandler:          http.ErrorHandler(logger),
	})

	handlers := http.NewHandlers(logger, dbManager.GetConnection(), cfg.AvatarCacheMaxLen)
	MountRoutes(app, handlers, cfg)

	return &Application{
		Config:    cfg,
		DBManager: dbManager,
		Fiber:     app,
	}, nil
}

// Start blocks serving HTTP on the configured port.
func (a *Application) Start() error {
	return a.Fiber.Listen(":" + a.Config.AppPort)
}

// Shutdown stops the HTTP server and closes the database.
func (a *Application) Shutdown(ctx context.Context) error {
	if err := a.Fiber.ShutdownWithContext(ctx); err != nil {
		return err
	}
	return a.DBManager.Close()
}
