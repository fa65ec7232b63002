// ABOUTME: Huma API server configuration and setup
// ABOUTME: Exposes the news query façade over HTTP with OpenAPI documentation

package api

import (
	"net/http"
	"time"

	"newsapi-connector/api/middleware"
	"newsapi-connector/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// Title and Version describe the OpenAPI document
const (
	Title   = "NewsAPI Connector"
	Version = "1.0.0"
)

// NewAPI creates a Huma API on a chi router with CORS, request logging and
// per-client rate limiting applied in that order
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit"},
		MaxAge:         300,
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Cached, failure-tolerant access to the NewsAPI everything and top-headlines endpoints"

	// OpenAPI is served at /openapi.json and docs at /docs
	api := humachi.New(router, config)

	return api, router
}
