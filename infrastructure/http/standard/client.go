// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Retries https requests with exponential backoff and optional rate limiting

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"newsapi-connector/core/interfaces"

	"golang.org/x/time/rate"
)

const (
	defaultMaxRetries = 5
	defaultBackoff    = 100 * time.Millisecond
	maxBackoff        = 5 * time.Second
	userAgent         = "newsapi-connector/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client     *http.Client
	maxRetries int
	backoff    time.Duration
	limiter    *rate.Limiter
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithMaxRetries sets how many times an https request is retried after the first attempt
func WithMaxRetries(n int) Option {
	return func(c *StandardHTTPClient) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithBackoff sets the base delay between retries; it doubles per attempt
func WithBackoff(d time.Duration) Option {
	return func(c *StandardHTTPClient) {
		if d > 0 {
			c.backoff = d
		}
	}
}

// WithRateLimit caps outbound requests per second. Values <= 0 disable the limiter.
func WithRateLimit(perSecond float64) Option {
	return func(c *StandardHTTPClient) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = rt
	}
}

// WithLogger wraps the current transport with request logging
func WithLogger(logger interfaces.Logger) Option {
	return func(c *StandardHTTPClient) {
		if logger == nil {
			return
		}
		base := c.client.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.client.Transport = &LoggingRoundTripper{Transport: base, Logger: logger}
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request. Only https requests are retried; they
// are retried on transport errors and on 5xx responses, never on 4xx. A
// NewsAPI outage answering 5xx therefore costs up to maxRetries+1 upstream
// requests per call, each counted against the API key's quota.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	attempts := 1
	if strings.EqualFold(req.URL.Scheme, "https") {
		attempts += c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.delay(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		// Success, 4xx, or out of attempts: hand the response back as is
		if resp.StatusCode < 500 || attempt == attempts-1 {
			return &httpResponse{
				statusCode: resp.StatusCode,
				body:       resp.Body,
				headers:    resp.Header,
			}, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return nil, lastErr
}

// delay is the exponential backoff before the given attempt: base, 2*base, 4*base...
func (c *StandardHTTPClient) delay(attempt int) time.Duration {
	d := c.backoff << (attempt - 1)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
