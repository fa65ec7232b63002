// ABOUTME: Configuration management with environment variable and secrets file support
// ABOUTME: Defines the NewsAPI connection settings plus cache, server and logging settings

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strconv"
	"strings"
	"time"

	coreerrors "newsapi-connector/core/errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Environment variable names for the NewsAPI connection
const (
	EnvNewsAPIKey        = "NEWSAPI_KEY"
	EnvNewsAPIBaseURL    = "NEWSAPI_BASE_URL"
	EnvNewsAPIMaxRetries = "NEWSAPI_MAX_RETRIES"
)

// DefaultMaxRetries is used when NEWSAPI_MAX_RETRIES is unset or invalid
const DefaultMaxRetries = 5

// DefaultCacheTTL is how long query outcomes are cached unless overridden
const DefaultCacheTTL = time.Hour

// Config holds all application configuration
type Config struct {
	// NewsAPI contains the connection settings for the remote API
	NewsAPI NewsAPIConfig

	// HTTP contains outbound transport settings
	HTTP HTTPConfig

	// Query contains query façade settings
	Query QueryConfig

	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig
}

// NewsAPIConfig is the immutable connection configuration
type NewsAPIConfig struct {
	// APIKey is the NewsAPI secret key
	APIKey string

	// BaseURL is the API origin, e.g. https://newsapi.org/v2/
	BaseURL string

	// MaxRetries is the retry budget applied to https requests
	MaxRetries int
}

// HTTPConfig holds outbound HTTP settings
type HTTPConfig struct {
	// Timeout bounds a single request attempt
	Timeout time.Duration

	// RateLimit caps outbound requests per second; 0 disables the limiter
	RateLimit float64
}

// QueryConfig holds query façade settings
type QueryConfig struct {
	// DefaultTTL applies when a caller passes ttl <= 0
	DefaultTTL time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per RateWindow
	RateLimit int

	// RateWindow is the rate limiting window
	RateWindow time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/gocache/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for gocache entries in seconds
	DefaultExpiration int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string
}

// Cache backend names
const (
	CacheMemory  = "memory"
	CacheGoCache = "gocache"
	CacheRedis   = "redis"
	CacheSQLite  = "sqlite"
)

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Load reads configuration from environment variables, falling back to the
// optional secrets file at path (TOML, YAML or JSON). Environment wins.
// A missing secrets file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read secrets file %s: %w", path, err)
		}
	}

	cfg := &Config{
		NewsAPI: NewsAPIConfig{
			APIKey:     getOrDefault(v, EnvNewsAPIKey, ""),
			BaseURL:    getOrDefault(v, EnvNewsAPIBaseURL, ""),
			MaxRetries: getIntOrDefault(v, EnvNewsAPIMaxRetries, DefaultMaxRetries),
		},
		HTTP: HTTPConfig{
			Timeout:   time.Duration(getIntOrDefault(v, "NEWSAPI_TIMEOUT", 30)) * time.Second,
			RateLimit: getFloatOrDefault(v, "NEWSAPI_RATE_LIMIT", 0),
		},
		Query: QueryConfig{
			DefaultTTL: time.Duration(getIntOrDefault(v, "NEWSAPI_CACHE_TTL", int(DefaultCacheTTL.Seconds()))) * time.Second,
		},
		Server: ServerConfig{
			Port:       getOrDefault(v, "PORT", "8000"),
			RateLimit:  getIntOrDefault(v, "RATE_LIMIT", 100),
			RateWindow: time.Minute,
		},
		Cache: CacheConfig{
			Type: getOrDefault(v, "CACHE_TYPE", CacheMemory),
			Redis: RedisConfig{
				Address:  getOrDefault(v, "REDIS_ADDRESS", "localhost:6379"),
				Password: getOrDefault(v, "REDIS_PASSWORD", ""),
				DB:       getIntOrDefault(v, "REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getOrDefault(v, "SQLITE_PATH", "newsapi-cache.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getIntOrDefault(v, "MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Log: LogConfig{
			Level:  strings.ToLower(getOrDefault(v, "LOG_LEVEL", "info")),
			Format: strings.ToLower(getOrDefault(v, "LOG_FORMAT", "text")),
		},
	}

	return cfg, nil
}

// getOrDefault returns the trimmed value for key or a default
func getOrDefault(v *viper.Viper, key, defaultValue string) string {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		return value
	}
	return defaultValue
}

// getIntOrDefault returns the value for key as int or a default
func getIntOrDefault(v *viper.Viper, key string, defaultValue int) int {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getFloatOrDefault returns the value for key as float64 or a default
func getFloatOrDefault(v *viper.Viper, key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks the ambient settings. The NewsAPI section is validated
// separately by NewsAPIConfig.Validate when the connection is built.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Port, validation.Required),
		validation.Field(&c.Server.RateLimit, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := validation.ValidateStruct(&c.Cache,
		validation.Field(&c.Cache.Type, validation.Required, validation.In(CacheMemory, CacheGoCache, CacheRedis, CacheSQLite)),
	); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Cache.Type == CacheRedis && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == CacheSQLite && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Log.Format, validation.In("text", "json")),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Query.DefaultTTL <= 0 {
		return errors.New("cache ttl must be at least 1 second")
	}

	return nil
}

// Validate reports the first invalid connection setting as a ConfigurationError
func (c NewsAPIConfig) Validate() error {
	checks := []struct {
		field string
		value interface{}
		rules []validation.Rule
	}{
		{EnvNewsAPIKey, strings.TrimSpace(c.APIKey), []validation.Rule{validation.Required}},
		{EnvNewsAPIBaseURL, strings.TrimSpace(c.BaseURL), []validation.Rule{validation.Required, validation.By(httpOrigin)}},
		{EnvNewsAPIMaxRetries, c.MaxRetries, []validation.Rule{validation.Min(0)}},
	}

	for _, check := range checks {
		if err := validation.Validate(check.value, check.rules...); err != nil {
			return &coreerrors.ConfigurationError{Field: check.field, Message: err.Error()}
		}
	}

	return nil
}

// Normalized returns a copy whose BaseURL ends with a path separator
func (c NewsAPIConfig) Normalized() NewsAPIConfig {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	return c
}

// httpOrigin accepts absolute http(s) URLs with a host
func httpOrigin(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}
