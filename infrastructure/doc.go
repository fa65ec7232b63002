// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging and user notices.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache with an injectable clock
// - cache/gocache: patrickmn/go-cache backed cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-based persistent cache
// - http/standard: HTTP client with retries, backoff and rate limiting
// - logger/structured: logrus-backed structured logger
// - notify: Notifiers that log or collect user-facing notices
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// Transient failures are retried with exponential backoff:
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithMaxRetries(5),
//	    standard.WithLogger(logger),
//	)
//	resp, err := client.Get(ctx, "https://newsapi.org/v2/top-headlines?country=us")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Query served from cache", map[string]interface{}{
//	    "endpoint": "everything",
//	})
package infrastructure
