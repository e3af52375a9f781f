package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable a developer machine might already export.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_PORT", "PORT", "STORE_BACKEND", "TOKEN_BACKEND", "MONGODB_URI",
		"REDIS_HOST", "ADMIN_EMAIL", "ADMIN_PASSWORD", "FRONTEND_URL", "MINIO_ENDPOINT",
		"RATE_LIMIT_ENABLED", "TOKEN_TTL_HOURS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "3001", cfg.Server.Port)
	require.Equal(t, "*", cfg.Server.FrontendURL)
	require.Equal(t, BackendFile, cfg.Store.Backend)
	require.Equal(t, "database/db.json", cfg.Store.ContentFile)
	require.Equal(t, BackendFile, cfg.Tokens.Backend)
	require.Equal(t, 24*time.Hour, cfg.Tokens.TTL)
	require.False(t, cfg.RateLimit.Enabled)
	require.False(t, cfg.MinIO.Enabled())
	require.Equal(t, "", cfg.Redis.Addr())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("TOKEN_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "ops@example.com", cfg.Admin.Email)
	require.Equal(t, BackendRedis, cfg.Tokens.Backend)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.True(t, cfg.MinIO.Enabled())
	require.True(t, cfg.RateLimit.Enabled)

	t.Setenv("SERVER_PORT", "9090")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_RejectsIncompleteBackends(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "mongo")
	_, err := LoadConfig()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("TOKEN_BACKEND", "redis")
	_, err = LoadConfig()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("STORE_BACKEND", "sqlite")
	_, err = LoadConfig()
	require.Error(t, err)
}
