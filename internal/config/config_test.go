package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Book Catalog API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 0, cfg.Cache.TTLSeconds)
	assert.Empty(t, cfg.JWT.Secret)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("CACHE_TTL_SECONDS", "300")
	t.Setenv("REDIS_HOST", "cache.internal:6379")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, "cache.internal:6379", cfg.Cache.Redis.Host)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "memcached")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache driver")
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Cache.TTLSeconds)
}
