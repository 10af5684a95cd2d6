// Package testsupport holds shared helpers for package tests.
package testsupport

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"terretahub/internal"
	"terretahub/internal/config"
	"terretahub/internal/database"
	httpapi "terretahub/internal/http"
	"terretahub/internal/logging"
)

// SetupTestDB opens a fresh migrated SQLite database in the test's temp
// directory. The connection is closed in test cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "terretahub-test.db")
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_fk=true", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

// TestConfig returns a config suitable for in-process tests. An empty apiKey
// runs the server in open mode.
func TestConfig(apiKey string) *config.Config {
	return &config.Config{
		AppName:           "terretahub",
		AppPort:           "0",
		Environment:       config.Test,
		LogLevel:          config.LogLevelError,
		AvatarAPIKey:      apiKey,
		AvatarCacheMaxLen: 10000,
	}
}

// NewTestApp builds a fiber app with all routes mounted, a fresh handler set
// (including fresh caches), and the supplied shared secret.
func NewTestApp(t *testing.T, db *gorm.DB, apiKey string) *fiber.App {
	t.Helper()

	cfg := TestConfig(apiKey)
	logger := logging.NewNop()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          httpapi.ErrorHandler(logger),
	})

	handlers := httpapi.NewHandlers(logger, db, cfg.AvatarCacheMaxLen)
	internal.MountRoutes(app, handlers, cfg)
	return app
}
