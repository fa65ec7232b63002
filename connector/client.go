// ABOUTME: Main client for the connector library wrapping the news query façade
// ABOUTME: Builds the HTTP transport, cache and connection from options with sensible defaults

package connector

import (
	"context"
	"io"
	"sync"
	"time"

	"newsapi-connector/core/domain"
	"newsapi-connector/core/interfaces"
	"newsapi-connector/core/news"
	"newsapi-connector/infrastructure/notify"
	"newsapi-connector/pkg/config"
)

// Client is the main entry point for the connector library
type Client struct {
	conn    *news.Connection
	service *news.Service

	closers   []io.Closer
	closeOnce sync.Once
	closed    chan struct{}
}

// Config holds the configuration for the client
type Config struct {
	// NewsAPI holds the key, base URL and retry budget
	NewsAPI config.NewsAPIConfig

	// HTTP holds the per-attempt timeout and outbound rate limit
	HTTP config.HTTPConfig

	// DefaultTTL applies when a query passes ttl <= 0
	DefaultTTL time.Duration

	// Cache overrides the cache built from CacheConfig
	Cache interfaces.Cache

	// CacheConfig selects a cache backend when Cache is nil
	CacheConfig config.CacheConfig

	// HTTPClient overrides the retrying transport
	HTTPClient interfaces.HTTPClient

	// Logger receives structured logs
	Logger interfaces.Logger

	// Notifier receives user-facing notices; defaults to logging them
	Notifier interfaces.Notifier
}

// New creates a client. The connection is established eagerly, so a
// missing key or base URL fails here with a ConfigurationError and no
// network call is made.
func New(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	client := &Client{closed: make(chan struct{})}

	cache := cfg.Cache
	if cache == nil {
		built, closer := NewCache(cfg.CacheConfig, cfg.Logger)
		cache = built
		if closer != nil {
			client.closers = append(client.closers, closer)
		}
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(cfg.Logger)
	}

	client.conn = news.NewConnection(cfg.NewsAPI, dialer(cfg), cfg.Logger)
	if _, err := client.conn.Connect(); err != nil {
		client.Close()
		return nil, err
	}

	client.service = news.NewService(client.conn, interfaces.Dependencies{
		Cache:    cache,
		Logger:   cfg.Logger,
		Notifier: notifier,
	}, news.WithDefaultTTL(cfg.DefaultTTL))

	return client, nil
}

// Close releases cache resources. It is safe to call more than once.
func (c *Client) Close() error {
	var firstErr error
	c.closeOnce.Do(func() {
		close(c.closed)
		for _, closer := range c.closers {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	})
	return firstErr
}

func (c *Client) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// SearchByTopic searches all articles. params must include a non-empty "q".
func (c *Client) SearchByTopic(ctx context.Context, params Params, ttl time.Duration) (Result, error) {
	if c.isClosed() {
		return Result{}, ErrClientClosed
	}
	return c.service.SearchByTopic(ctx, params, ttl)
}

// TopHeadlines returns top headlines filtered by params such as country and category
func (c *Client) TopHeadlines(ctx context.Context, params Params, ttl time.Duration) (Result, error) {
	if c.isClosed() {
		return Result{}, ErrClientClosed
	}
	return c.service.TopHeadlines(ctx, params, ttl)
}

// Search is SearchByTopic for a bare topic with the default TTL
func (c *Client) Search(ctx context.Context, topic string) (Result, error) {
	return c.SearchByTopic(ctx, Params{"q": topic}, 0)
}

// Headlines is TopHeadlines for a country and category with the default TTL.
// Empty arguments are omitted so NewsAPI applies its own defaults.
func (c *Client) Headlines(ctx context.Context, country, category string) (Result, error) {
	params := Params{}
	if country != "" {
		params["country"] = country
	}
	if category != "" {
		params["category"] = category
	}
	return c.TopHeadlines(ctx, params, 0)
}

// Invalidate drops the cached result of one query
func (c *Client) Invalidate(ctx context.Context, endpoint domain.Endpoint, params Params) error {
	if c.isClosed() {
		return ErrClientClosed
	}
	return c.service.Invalidate(ctx, endpoint, params)
}

// Service exposes the underlying façade, e.g. for mounting the HTTP API
func (c *Client) Service() *news.Service {
	return c.service
}

// validateConfig checks the settings New cannot default
func validateConfig(cfg *Config) error {
	if cfg.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}
	if cfg.HTTP.Timeout <= 0 {
		return NewError(ErrorTypeConfiguration, "HTTP timeout must be positive").
			WithContext("timeout", cfg.HTTP.Timeout.String())
	}
	if cfg.HTTP.RateLimit < 0 {
		return NewError(ErrorTypeConfiguration, "rate limit cannot be negative")
	}
	return nil
}
