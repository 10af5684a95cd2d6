// Package config provides configuration management using Viper
package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Environment types
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// LogLevel represents the logging level for the application
type LogLevel string

// Available log levels
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Application settings
	AppName     string   `mapstructure:"appname"`
	AppPort     string   `mapstructure:"appport"`
	Environment string   `mapstructure:"environment"`
	LogLevel    LogLevel `mapstructure:"loglevel"`

	// Avatar API settings. An empty key disables authentication entirely
	// (open mode); that is a deliberate operational choice.
	AvatarAPIKey      string `mapstructure:"avatarapikey"`
	AvatarCacheMaxLen int    `mapstructure:"avatarcachemaxlen"`

	// File paths
	DatabasePath string `mapstructure:"storagepath"`
	DatabaseName string `mapstructure:"-"` // Derived from other settings

	// Logging settings
	LogsDirectory    string `mapstructure:"logsdir"`
	LogsMaxSizeInMb  int    `mapstructure:"logsmaxsizeinmb"`
	LogsMaxBackups   int    `mapstructure:"logsmaxbackups"`
	LogsMaxAgeInDays int    `mapstructure:"logsmaxageindays"`

	// Database settings
	DatabaseMaxOpenConns int `mapstructure:"dbmaxopenconns"`
	DatabaseMaxIdleConns int `mapstructure:"dbmaxidleconns"`
}

var (
	cfg  *Config
	once sync.Once
)

// GetConfig returns the application configuration
func GetConfig() *Config {
	once.Do(func() {
		v := viper.New()

		// Set defaults
		v.SetDefault("appname", "terretahub")
		v.SetDefault("appport", "3001")
		v.SetDefault("environment", Development)
		v.SetDefault("loglevel", string(LogLevelDebug))
		v.SetDefault("avatarapikey", "")
		v.SetDefault("avatarcachemaxlen", 10000)
		v.SetDefault("storagepath", "storage")
		v.SetDefault("logsdir", "logs")
		v.SetDefault("logsmaxsizeinmb", 20)
		v.SetDefault("logsmaxbackups", 10)
		v.SetDefault("logsmaxageindays", 30)
		v.SetDefault("dbmaxopenconns", 0)
		v.SetDefault("dbmaxidleconns", 0)

		// Bind environment variables. PORT and AVATAR_API_KEY keep their
		// original names; everything else is namespaced.
		v.BindEnv("appname", "TERRETA_APP_NAME")
		v.BindEnv("appport", "PORT", "TERRETA_APP_PORT")
		v.BindEnv("environment", "TERRETA_ENV")
		v.BindEnv("loglevel", "TERRETA_LOG_LEVEL")
		v.BindEnv("avatarapikey", "AVATAR_API_KEY")
		v.BindEnv("avatarcachemaxlen", "TERRETA_AVATAR_CACHE_MAX_LEN")
		v.BindEnv("storagepath", "TERRETA_STORAGE_PATH")
		v.BindEnv("logsdir", "TERRETA_LOGS_DIR")
		v.BindEnv("logsmaxsizeinmb", "TERRETA_LOGS_MAX_SIZE_IN_MB")
		v.BindEnv("logsmaxbackups", "TERRETA_LOGS_MAX_BACKUPS")
		v.BindEnv("logsmaxageindays", "TERRETA_LOGS_MAX_AGE_IN_DAYS")
		v.BindEnv("dbmaxopenconns", "TERRETA_DB_MAX_OPEN_CONNS")
		v.BindEnv("dbmaxidleconns", "TERRETA_DB_MAX_IDLE_CONNS")

		cfg = &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("config: failed to unmarshal configuration: %v", err)
		}

		// Validate
		if err := cfg.validate(); err != nil {
			log.Fatalf("config: invalid configuration: %v", err)
		}

		// Set derived values
		cfg.DatabaseName = cfg.GetDatabasePath()
	})
	return cfg
}

// validate checks the configuration for errors
func (c *Config) validate() error {
	validEnvs := map[string]bool{
		Development: true,
		Production:  true,
		Test:        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	if c.AvatarCacheMaxLen < 0 {
		return fmt.Errorf("invalid avatar cache size: %d", c.AvatarCacheMaxLen)
	}

	return nil
}

// GetDatabasePath returns the appropriate database path based on environment
func (c *Config) GetDatabasePath() string {
	if c.DatabaseName == "" {
		c.DatabaseName = filepath.Join(c.DatabasePath,
			fmt.Sprintf("%s-%s.db", c.AppName, c.Environment))
	}
	return c.DatabaseName
}

// AuthEnabled reports whether the shared-secret check applies to requests.
func (c *Config) AuthEnabled() bool {
	return c.AvatarAPIKey != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// IsTest returns true if the environment is test
func (c *Config) IsTest() bool {
	return c.Environment == Test
}

// GetMaxOpenConns returns the appropriate MaxOpenConns value based on environment.
// If explicitly set via env var, uses that value. Otherwise:
// - Test: 1 (required for E2E test stability)
// - Development/Production: 10 (allows concurrent reads)
func (c *Config) GetMaxOpenConns() int {
	if c.DatabaseMaxOpenConns > 0 {
		return c.DatabaseMaxOpenConns
	}

	if c.Environment == Test {
		return 1
	}

	return 10
}

// GetMaxIdleConns returns the appropriate MaxIdleConns value based on environment.
func (c *Config) GetMaxIdleConns() int {
	if c.DatabaseMaxIdleConns > 0 {
		return c.DatabaseMaxIdleConns
	}

	if c.Environment == Test {
		return 1
	}

	return 5
}

// Reset clears the cached configuration; intended for tests.
func Reset() {
	once = sync.Once{}
	cfg = nil
}
