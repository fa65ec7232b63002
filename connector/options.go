// ABOUTME: Configuration options for the connector library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package connector

import (
	"time"

	"newsapi-connector/core/interfaces"
	"newsapi-connector/pkg/config"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithNewsAPI sets the API key and base URL. maxRetries applies to https requests.
func WithNewsAPI(apiKey, baseURL string, maxRetries int) Option {
	return func(c *Config) error {
		c.NewsAPI = config.NewsAPIConfig{
			APIKey:     apiKey,
			BaseURL:    baseURL,
			MaxRetries: maxRetries,
		}
		return nil
	}
}

// WithConfig copies the news, HTTP, TTL and cache sections of an application config
func WithConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return NewError(ErrorTypeConfiguration, "config is nil")
		}
		c.NewsAPI = cfg.NewsAPI
		c.HTTP = cfg.HTTP
		c.DefaultTTL = cfg.Query.DefaultTTL
		c.CacheConfig = cfg.Cache
		return nil
	}
}

// FromEnv loads configuration from the environment, see config.LoadFromEnv
func FromEnv() Option {
	return func(c *Config) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to load environment").WithCause(err)
		}
		return WithConfig(cfg)(c)
	}
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithCacheConfig selects a cache backend by type
func WithCacheConfig(cfg config.CacheConfig) Option {
	return func(c *Config) error {
		c.CacheConfig = cfg
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client, replacing the retrying transport
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithNotifier sets the receiver of user-facing notices
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(c *Config) error {
		c.Notifier = notifier
		return nil
	}
}

// WithDefaultTTL sets how long results are cached when a query passes ttl <= 0
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeValidation, "default TTL must be positive")
		}
		c.DefaultTTL = ttl
		return nil
	}
}

// WithTimeout bounds each HTTP attempt
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.HTTP.Timeout = timeout
		return nil
	}
}

// WithRateLimit caps outbound requests per second; 0 disables the limiter
func WithRateLimit(perSecond float64) Option {
	return func(c *Config) error {
		c.HTTP.RateLimit = perSecond
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		NewsAPI: config.NewsAPIConfig{
			MaxRetries: config.DefaultMaxRetries,
		},
		HTTP: config.HTTPConfig{
			Timeout: 30 * time.Second,
		},
		DefaultTTL: config.DefaultCacheTTL,
		CacheConfig: config.CacheConfig{
			Type: config.CacheMemory,
		},
		Logger: DefaultLogger(),
	}
}
