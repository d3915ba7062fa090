package container

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/config"
	"book-catalog/internal/domains/catalog/handler"
	"book-catalog/internal/domains/catalog/repository"
	"book-catalog/internal/domains/catalog/service"
	infraCache "book-catalog/internal/infrastructure/cache"
	"book-catalog/pkg/cache"
	"book-catalog/pkg/jwt"
	"book-catalog/pkg/logger"
)

// Container is the root of the dependency graph. Initialization order is
// config, infrastructure, repository, service, handler; each layer only
// sees the ones built before it.
type Container struct {
	Config     *config.Config
	Cache      cache.Cache
	JWTManager *jwt.Manager // nil when JWT_SECRET is unset

	CatalogRepo    repository.RepositoryInterface
	CatalogService service.ServiceInterface
	CatalogHandler *handler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Info("config loaded", map[string]interface{}{
		"environment":  cfg.App.Environment,
		"cache_driver": cfg.Cache.Driver,
	})

	cacheClient, err := newCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init cache: %w", err)
	}
	c.Cache = cacheClient

	if cfg.JWT.Secret != "" {
		c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	}

	c.CatalogRepo = repository.NewMemoryRepository()
	c.CatalogService = service.NewService(
		c.CatalogRepo,
		c.Cache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
	)
	c.CatalogHandler = handler.NewHandler(c.CatalogService)

	return c, nil
}

// newCache picks the cache driver from config.
func newCache(cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		rc := infraCache.NewRedisCache(
			cfg.Cache.Redis.Host,
			cfg.Cache.Redis.Password,
			cfg.Cache.Redis.DB,
		)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rc.Ping(ctx); err != nil {
			// Not fatal: the service degrades to store-only reads until
			// Redis comes back.
			logger.Warn("redis unreachable at startup", err)
		}

		return rc, nil

	case config.CacheDriverBolt:
		return infraCache.NewBoltCache(cfg.Cache.BoltPath)

	default:
		return infraCache.NewMemoryCache(5 * time.Minute), nil
	}
}

// Cleanup releases container resources during shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close cache", err)
		}
	}
}
