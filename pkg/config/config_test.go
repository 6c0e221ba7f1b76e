package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("PAGINATION_MAX_LIMIT", "")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 100, cfg.PaginationMaxLimit)
	assert.Contains(t, cfg.DatabaseURL, "dbname=")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("JWT_ACCESS_EXPIRY", "1h")
	t.Setenv("AI_MAX_CONCURRENCY", "9")
	t.Setenv("SEED_ON_START", "false")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DatabaseURL)
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, int64(9), cfg.AIMaxConcurrency)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_REFRESH_EXPIRY", "soon")
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "-3")

	cfg := Load()

	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, 10, cfg.PaginationDefaultLimit)
}

func TestLoad_SettingsAdmins(t *testing.T) {
	t.Setenv("SETTINGS_ADMIN_EMAILS", "")
	t.Setenv("SEED_ADMIN_EMAIL", "root@example.com")
	assert.Equal(t, []string{"root@example.com"}, Load().SettingsAdminEmails)

	t.Setenv("SETTINGS_ADMIN_EMAILS", " Ops@Example.com, ,dev@example.com")
	assert.Equal(t, []string{"ops@example.com", "dev@example.com"}, Load().SettingsAdminEmails)
}
