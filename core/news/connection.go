// ABOUTME: Connection owns the lazily dialed HTTP handle to the NewsAPI host
// ABOUTME: Builds endpoint URLs, injects the API key and decodes article result sets

package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"

	"newsapi-connector/core/domain"
	coreerrors "newsapi-connector/core/errors"
	"newsapi-connector/core/interfaces"
	"newsapi-connector/pkg/config"
)

// maxBodyBytes bounds how much of a response body is read
const maxBodyBytes = 10 << 20

// Dialer builds the HTTP handle for a validated configuration
type Dialer func(cfg config.NewsAPIConfig) interfaces.HTTPClient

// Connection is a reusable handle bound to one NewsAPI configuration.
// The underlying client is created on first use and shared by every later call.
type Connection struct {
	cfg    config.NewsAPIConfig
	dial   Dialer
	logger interfaces.Logger

	mu     sync.Mutex
	client interfaces.HTTPClient
}

// NewConnection creates an unconnected handle. Nothing is validated or dialed
// until Connect or Request is called.
func NewConnection(cfg config.NewsAPIConfig, dial Dialer, logger interfaces.Logger) *Connection {
	return &Connection{
		cfg:    cfg.Normalized(),
		dial:   dial,
		logger: logger,
	}
}

// Connect validates the configuration and dials the client once. Later calls
// return the same client. A ConfigurationError is returned without any
// network activity and is not remembered, so a corrected setup can retry.
func (c *Connection) Connect() (interfaces.HTTPClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	if c.dial == nil {
		return nil, &coreerrors.ConfigurationError{Field: "dialer", Message: "no HTTP dialer configured"}
	}

	client := c.dial(c.cfg)
	if client == nil {
		return nil, &coreerrors.ConfigurationError{Field: "dialer", Message: "dialer returned no client"}
	}
	c.client = client

	if c.logger != nil {
		c.logger.Info("Connected to NewsAPI", map[string]interface{}{
			"base_url":    c.cfg.BaseURL,
			"max_retries": c.cfg.MaxRetries,
		})
	}

	return c.client, nil
}

// Config returns the normalized configuration
func (c *Connection) Config() config.NewsAPIConfig {
	return c.cfg
}

// apiError is the body NewsAPI sends with non-2xx responses
type apiError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Request performs a GET against endpoint with params and the API key.
// Configuration faults come back as *ConfigurationError; every other fault
// (network, non-2xx status, unreadable or invalid JSON body) as *TransportError.
func (c *Connection) Request(ctx context.Context, endpoint domain.Endpoint, params domain.Params) (*domain.ArticleResultSet, error) {
	client, err := c.Connect()
	if err != nil {
		return nil, err
	}

	values := params.Values()
	values.Set(domain.APIKeyParam, c.cfg.APIKey)
	reqURL := c.cfg.BaseURL + string(endpoint) + "?" + values.Encode()

	resp, err := client.Get(ctx, reqURL)
	if err != nil {
		return nil, &coreerrors.TransportError{Endpoint: string(endpoint), Err: c.scrub(err)}
	}
	if resp == nil {
		return nil, &coreerrors.TransportError{Endpoint: string(endpoint), Message: "empty response"}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return nil, &coreerrors.TransportError{
			Endpoint:   string(endpoint),
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("read body: %w", err),
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		transportErr := &coreerrors.TransportError{
			Endpoint:   string(endpoint),
			StatusCode: resp.StatusCode(),
		}
		var payload apiError
		if json.Unmarshal(body, &payload) == nil {
			transportErr.Code = payload.Code
			transportErr.Message = payload.Message
		}
		return nil, transportErr
	}

	var resultSet domain.ArticleResultSet
	if err := json.Unmarshal(body, &resultSet); err != nil {
		return nil, &coreerrors.TransportError{
			Endpoint:   string(endpoint),
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("invalid JSON body: %w", err),
		}
	}

	return &resultSet, nil
}

// scrub removes the API key from URLs embedded in transport errors
func (c *Connection) scrub(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			q := u.Query()
			if q.Has(domain.APIKeyParam) {
				q.Set(domain.APIKeyParam, "REDACTED")
				u.RawQuery = q.Encode()
			}
			urlErr.URL = u.String()
		}
	}
	return err
}
