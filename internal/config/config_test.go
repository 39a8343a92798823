package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "taskdeck", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Migrations.Enabled)
	assert.Contains(t, cfg.Database.URL, "postgres://")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TOKEN_TTL", "24h")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/tasks?sslmode=disable")
	t.Setenv("RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, "postgres://u:p@db:5432/tasks?sslmode=disable", cfg.Database.URL)
	assert.False(t, cfg.Migrations.Enabled)
}

func TestLoad_SecretRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}
