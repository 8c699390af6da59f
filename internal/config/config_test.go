package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devConfig() *Config {
	return &Config{
		Port:           "8000",
		JWTSecret:      "your-secret-key-change-in-production",
		DBPassword:     "password",
		DBSSLMode:      "disable",
		AllowedOrigins: "http://localhost:3000",
		Env:            "development",
	}
}

func TestValidateDevelopmentDefaults(t *testing.T) {
	assert.NoError(t, devConfig().Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := devConfig()
	cfg.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = devConfig()
	cfg.JWTSecret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionHardening(t *testing.T) {
	cfg := devConfig()
	cfg.Env = "production"
	cfg.DBPassword = "a-real-password"

	// Default secret is rejected in production.
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = strings.Repeat("s", 32)
	assert.NoError(t, cfg.Validate())

	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "env-provided-secret-for-config-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "env-provided-secret-for-config-test", cfg.JWTSecret)
	// Untouched values fall back to defaults.
	assert.Equal(t, "crud_board", cfg.DBName)
}
