package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := GetConfig()
	assert.Equal(t, "terretahub", cfg.AppName)
	assert.Equal(t, "3001", cfg.AppPort)
	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, 10000, cfg.AvatarCacheMaxLen)
	assert.False(t, cfg.AuthEnabled())
}

func TestEnvironmentOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("PORT", "4100")
	t.Setenv("AVATAR_API_KEY", "secret")
	t.Setenv("TERRETA_ENV", Test)

	cfg := GetConfig()
	assert.Equal(t, "4100", cfg.AppPort)
	assert.Equal(t, "secret", cfg.AvatarAPIKey)
	assert.True(t, cfg.AuthEnabled())
	assert.True(t, cfg.IsTest())
	assert.Equal(t, 1, cfg.GetMaxOpenConns())
}

func TestDatabasePathDerivation(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := GetConfig()
	assert.Contains(t, cfg.GetDatabasePath(), "terretahub-development.db")
}
