// Package logging builds the application's structured loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"terretahub/internal/config"
)

// New builds a slog.Logger configured from the application config. Production
// logs are JSON; everything else is text. When a logs directory is configured
// output also goes to a size-rotated file.
func New(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(string(cfg.LogLevel))}

	var w io.Writer = os.Stdout
	if cfg.LogsDirectory != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogsDirectory, cfg.AppName+".log"),
			MaxSize:    cfg.LogsMaxSizeInMb,
			MaxBackups: cfg.LogsMaxBackups,
			MaxAge:     cfg.LogsMaxAgeInDays,
			Compress:   true,
		})
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewNop returns a logger that discards everything; intended for tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
