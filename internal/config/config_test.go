package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("MICROBLOG_PRIMARY.ENV", "test")

	t.Setenv("MICROBLOG_SERVER.PORT", "8080")
	t.Setenv("MICROBLOG_SERVER.READ_TIMEOUT", "10")
	t.Setenv("MICROBLOG_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("MICROBLOG_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("MICROBLOG_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	t.Setenv("MICROBLOG_DATABASE.HOST", "localhost")
	t.Setenv("MICROBLOG_DATABASE.PORT", "5432")
	t.Setenv("MICROBLOG_DATABASE.USER", "microblog")
	t.Setenv("MICROBLOG_DATABASE.PASSWORD", "secret")
	t.Setenv("MICROBLOG_DATABASE.NAME", "microblog")
	t.Setenv("MICROBLOG_DATABASE.SSL_MODE", "disable")
	t.Setenv("MICROBLOG_DATABASE.MAX_OPEN_CONNS", "10")
	t.Setenv("MICROBLOG_DATABASE.MAX_IDLE_CONNS", "5")
	t.Setenv("MICROBLOG_DATABASE.CONN_MAX_LIFETIME", "300")
	t.Setenv("MICROBLOG_DATABASE.CONN_MAX_IDLE_TIME", "60")

	t.Setenv("MICROBLOG_REDIS.ADDRESS", "localhost:6379")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)

	// Observability defaults kick in when the block is absent, and the
	// service name is pinned regardless of env input.
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "microblog", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MICROBLOG_DATABASE.HOST", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
