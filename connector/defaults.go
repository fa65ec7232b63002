// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the logger, cache backends and HTTP dialer

package connector

import (
	"io"
	"time"

	"newsapi-connector/core/interfaces"
	"newsapi-connector/core/news"
	"newsapi-connector/infrastructure/cache/gocache"
	"newsapi-connector/infrastructure/cache/memory"
	"newsapi-connector/infrastructure/cache/redis"
	"newsapi-connector/infrastructure/cache/sqlite"
	"newsapi-connector/infrastructure/http/standard"
	"newsapi-connector/infrastructure/logger/structured"
	"newsapi-connector/pkg/config"
)

// goCacheCleanupInterval is how often the go-cache janitor sweeps
const goCacheCleanupInterval = 10 * time.Minute

// DefaultLogger creates a logger that reports warnings and errors to stdout
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: "warn"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// NewCache builds the backend named by cfg.Type. A redis or sqlite backend
// that cannot be opened falls back to memory and the failure is logged.
// The returned closer is nil when the backend holds no resources.
func NewCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case config.CacheGoCache:
		expiration := time.Duration(cfg.Memory.DefaultExpiration) * time.Second
		if expiration <= 0 {
			expiration = config.DefaultCacheTTL
		}
		logger.Info("Using go-cache cache", map[string]interface{}{"default_expiration": expiration.String()})
		return gocache.NewCache(expiration, goCacheCleanupInterval), nil

	case config.CacheRedis:
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"address": cfg.Redis.Address,
				"error":   err.Error(),
			})
			return memory.NewMemoryCache(), nil
		}
		logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Redis.Address})
		return redisCache, redisCache

	case config.CacheSQLite:
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path, sqlite.WithLogger(logger))
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"path":  cfg.SQLite.Path,
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), nil
		}
		logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.SQLite.Path})
		return sqliteCache, sqliteCache
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(), nil
}

// dialer returns the news.Dialer for cfg. A custom HTTP client wins over
// the retrying transport.
func dialer(cfg Config) news.Dialer {
	return func(newsCfg config.NewsAPIConfig) interfaces.HTTPClient {
		if cfg.HTTPClient != nil {
			return cfg.HTTPClient
		}
		return standard.NewStandardHTTPClient(cfg.HTTP.Timeout,
			standard.WithMaxRetries(newsCfg.MaxRetries),
			standard.WithRateLimit(cfg.HTTP.RateLimit),
			standard.WithLogger(cfg.Logger),
		)
	}
}
