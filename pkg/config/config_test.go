package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	coreerrors "newsapi-connector/core/errors"
)

var configEnvVars = []string{
	EnvNewsAPIKey, EnvNewsAPIBaseURL, EnvNewsAPIMaxRetries,
	"NEWSAPI_TIMEOUT", "NEWSAPI_RATE_LIMIT", "NEWSAPI_CACHE_TTL",
	"PORT", "RATE_LIMIT", "CACHE_TYPE", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
	"SQLITE_PATH", "MEMORY_CACHE_EXPIRATION", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every variable the loader reads; blank values count as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.NewsAPI.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %v, want %v", cfg.NewsAPI.MaxRetries, DefaultMaxRetries)
	}
	if cfg.Query.DefaultTTL != time.Hour {
		t.Errorf("DefaultTTL = %v, want 1h", cfg.Query.DefaultTTL)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.HTTP.Timeout)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != CacheMemory {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want info/text", cfg.Log)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantRetries int
		wantTTL     time.Duration
	}{
		{
			name:        "uses NEWSAPI_MAX_RETRIES when set",
			envVars:     map[string]string{EnvNewsAPIMaxRetries: "2"},
			wantRetries: 2,
			wantTTL:     time.Hour,
		},
		{
			name:        "falls back to default on invalid retries",
			envVars:     map[string]string{EnvNewsAPIMaxRetries: "many"},
			wantRetries: DefaultMaxRetries,
			wantTTL:     time.Hour,
		},
		{
			name:        "uses NEWSAPI_CACHE_TTL when set",
			envVars:     map[string]string{"NEWSAPI_CACHE_TTL": "60"},
			wantRetries: DefaultMaxRetries,
			wantTTL:     time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.NewsAPI.MaxRetries != tt.wantRetries {
				t.Errorf("MaxRetries = %v, want %v", cfg.NewsAPI.MaxRetries, tt.wantRetries)
			}
			if cfg.Query.DefaultTTL != tt.wantTTL {
				t.Errorf("DefaultTTL = %v, want %v", cfg.Query.DefaultTTL, tt.wantTTL)
			}
		})
	}
}

func TestLoad_SecretsFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.toml")
	content := "NEWSAPI_KEY = \"file-key\"\nNEWSAPI_BASE_URL = \"https://newsapi.org/v2/\"\nNEWSAPI_MAX_RETRIES = 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write secrets file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NewsAPI.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.NewsAPI.APIKey)
	}
	if cfg.NewsAPI.BaseURL != "https://newsapi.org/v2/" {
		t.Errorf("BaseURL = %q", cfg.NewsAPI.BaseURL)
	}
	if cfg.NewsAPI.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.NewsAPI.MaxRetries)
	}

	// Environment overrides the file
	t.Setenv(EnvNewsAPIKey, "env-key")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NewsAPI.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.NewsAPI.APIKey)
	}
}

func TestLoad_MissingSecretsFileIsIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NewsAPI.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.NewsAPI.APIKey)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		clearEnv(t)
		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "memcached" }, true},
		{"redis without address", func(c *Config) { c.Cache.Type = CacheRedis; c.Cache.Redis.Address = "" }, true},
		{"sqlite without path", func(c *Config) { c.Cache.Type = CacheSQLite; c.Cache.SQLite.Path = "" }, true},
		{"gocache is accepted", func(c *Config) { c.Cache.Type = CacheGoCache }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"zero ttl", func(c *Config) { c.Query.DefaultTTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewsAPIConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       NewsAPIConfig
		wantField string
	}{
		{"valid", NewsAPIConfig{APIKey: "k", BaseURL: "https://newsapi.org/v2/", MaxRetries: 5}, ""},
		{"missing key", NewsAPIConfig{BaseURL: "https://newsapi.org/v2/"}, EnvNewsAPIKey},
		{"blank key", NewsAPIConfig{APIKey: "   ", BaseURL: "https://newsapi.org/v2/"}, EnvNewsAPIKey},
		{"missing base url", NewsAPIConfig{APIKey: "k"}, EnvNewsAPIBaseURL},
		{"non http base url", NewsAPIConfig{APIKey: "k", BaseURL: "ftp://newsapi.org/v2/"}, EnvNewsAPIBaseURL},
		{"relative base url", NewsAPIConfig{APIKey: "k", BaseURL: "/v2/"}, EnvNewsAPIBaseURL},
		{"negative retries", NewsAPIConfig{APIKey: "k", BaseURL: "https://newsapi.org/v2/", MaxRetries: -1}, EnvNewsAPIMaxRetries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			cfgErr, ok := err.(*coreerrors.ConfigurationError)
			if !ok {
				t.Fatalf("Validate() error = %T (%v), want *ConfigurationError", err, err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestNewsAPIConfig_Normalized(t *testing.T) {
	cfg := NewsAPIConfig{APIKey: " k ", BaseURL: "https://newsapi.org/v2"}.Normalized()

	if cfg.BaseURL != "https://newsapi.org/v2/" {
		t.Errorf("BaseURL = %q, want trailing slash", cfg.BaseURL)
	}
	if cfg.APIKey != "k" {
		t.Errorf("APIKey = %q, want trimmed", cfg.APIKey)
	}

	already := NewsAPIConfig{BaseURL: "https://newsapi.org/v2/"}.Normalized()
	if already.BaseURL != "https://newsapi.org/v2/" {
		t.Errorf("BaseURL = %q, should be unchanged", already.BaseURL)
	}
}
