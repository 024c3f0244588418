package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "feedback-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Postgres.DSN, "in-memory repositories by default")
	assert.Empty(t, cfg.Redis.Addr, "in-memory sessions by default")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "nonsense")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 30, cfg.Session.TTLMinutes)
	assert.NotZero(t, cfg.Session.TTL())
	assert.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes, "unparseable values fall back to defaults")
}
