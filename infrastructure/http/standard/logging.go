// ABOUTME: Outgoing request logging for the HTTP client
// ABOUTME: Redacts the API key before URLs reach the logs

package standard

import (
	"net/http"
	"net/url"
	"time"

	"newsapi-connector/core/interfaces"
)

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := RedactURL(req.URL)

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    target,
	})

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      target,
			"duration": duration.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"method":   req.Method,
		"url":      target,
		"status":   resp.StatusCode,
		"duration": duration.String(),
	})

	return resp, nil
}

// redactedParams are query parameters never written to logs
var redactedParams = []string{"apiKey", "apikey", "api_key"}

// RedactURL renders u with secret query values replaced
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	q := clone.Query()
	changed := false
	for _, name := range redactedParams {
		if q.Has(name) {
			q.Set(name, "REDACTED")
			changed = true
		}
	}
	if changed {
		clone.RawQuery = q.Encode()
	}
	return clone.String()
}
