package config

import (
	"fmt"
	"os"
	"strconv"
)

// Cache driver names accepted by CacheConfig.Driver.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverBolt   = "bolt"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App   AppConfig
	Cache CacheConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type CacheConfig struct {
	Driver     string // memory, redis, bolt
	TTLSeconds int    // 0 keeps entries until they are evicted
	Redis      RedisConfig
	BoltPath   string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string // empty disables auth on mutating routes
	ExpiryHours int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Cache: CacheConfig{
			Driver:     getEnv("CACHE_DRIVER", CacheDriverMemory),
			TTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 0),
			Redis: RedisConfig{
				Host:     getEnv("REDIS_HOST", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvInt("REDIS_DB", 0),
			},
			BoltPath: getEnv("CACHE_BOLT_PATH", "catalog-cache.db"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", ""),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for values the server cannot start with.
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis, CacheDriverBolt:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}

	if c.Cache.Driver == CacheDriverBolt && c.Cache.BoltPath == "" {
		return fmt.Errorf("CACHE_BOLT_PATH must be set when the bolt driver is used")
	}

	if c.Cache.Driver == CacheDriverRedis && c.Cache.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST must be set when the redis driver is used")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
