package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.Otel.Enabled)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 10, cfg.App.BodyLimitMB)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("FLAG_ON", "1")
	t.Setenv("FLAG_BAD", "maybe")

	assert.True(t, getEnvAsBool("FLAG_ON", false))
	assert.True(t, getEnvAsBool("FLAG_BAD", true))
	assert.False(t, getEnvAsBool("FLAG_MISSING", false))
}
