// Package database manages the SQLite connection and schema migrations.
package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"terretahub/internal/config"
	"terretahub/internal/events"
	"terretahub/internal/members"
)

// DBManager owns the GORM connection and the schema migrations.
type DBManager struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

// NewDBManager creates a database manager. Call Init before use.
func NewDBManager(cfg *config.Config, logger *slog.Logger) *DBManager {
	return &DBManager{cfg: cfg, logger: logger}
}

// Init opens the SQLite database with WAL and a busy timeout, and applies the
// configured pool limits.
func (dm *DBManager) Init() error {
	path := dm.cfg.GetDatabasePath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_fk=true", path)

	logLevel := gormlogger.Warn
	if dm.cfg.IsTest() {
		logLevel = gormlogger.Silent
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(dm.cfg.GetMaxOpenConns())
	sqlDB.SetMaxIdleConns(dm.cfg.GetMaxIdleConns())

	dm.db = db
	dm.logger.Info("Database initialized", slog.String("path", path))
	return nil
}

// GetConnection returns the shared GORM connection.
func (dm *DBManager) GetConnection() *gorm.DB {
	return dm.db
}

// MigrateDatabase runs the schema migrations.
func (dm *DBManager) MigrateDatabase() error {
	if dm.db == nil {
		return gorm.ErrInvalidDB
	}

	err := dm.db.Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(Models()...)
	})
	if err != nil {
		dm.logger.Error("Failed to auto-migrate database", slog.Any("error", err))
		return err
	}

	return nil
}

// Close releases the underlying connection pool.
func (dm *DBManager) Close() error {
	if dm.db == nil {
		return nil
	}
	sqlDB, err := dm.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Models lists every persisted model; shared with testsupport so test
// schemas stay in sync with production migrations.
func Models() []any {
	return []any{
		&members.Member{},
		&events.CommunityEvent{},
		&events.Registration{},
	}
}
