package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"newsapi-connector/infrastructure/cache/memory"
	"newsapi-connector/infrastructure/notify"
	"newsapi-connector/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsServer(t *testing.T, body string, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const oneArticle = `{"status":"ok","totalResults":1,"articles":[{"source":{"id":null,"name":"Wire"},"title":"ChatGPT ships","url":"https://example.com/a"}]}`

func TestNew_RequiresAPIKey(t *testing.T) {
	client, err := New(WithQuietMode(), WithNewsAPI("", "https://newsapi.org/v2/", 5))

	assert.Nil(t, client)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"non-positive default TTL", []Option{WithDefaultTTL(0)}},
		{"zero timeout", []Option{WithTimeout(0)}},
		{"negative rate limit", []Option{WithRateLimit(-1)}},
		{"nil logger", []Option{WithLogger(nil)}},
		{"nil config", []Option{WithConfig(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithNewsAPI("test-key", "https://newsapi.org/v2/", 5)}, tt.opts...)
			_, err := New(opts...)
			assert.Error(t, err)
		})
	}
}

func TestClient_SearchUsesCache(t *testing.T) {
	var hits int32
	server := newsServer(t, oneArticle, &hits)

	client, err := New(
		WithQuietMode(),
		WithNewsAPI("test-key", server.URL+"/v2/", 0),
		WithCache(memory.NewMemoryCache()),
	)
	require.NoError(t, err)
	defer client.Close()

	first, err := client.Search(context.Background(), "ChatGPT")
	require.NoError(t, err)
	require.False(t, first.Absent())
	assert.Equal(t, "ChatGPT ships", first.ResultSet.Articles[0].Title)

	second, err := client.SearchByTopic(context.Background(), Params{"q": "ChatGPT"}, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, first.ResultSet, second.ResultSet)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClient_SearchRequiresTopic(t *testing.T) {
	server := newsServer(t, oneArticle, nil)
	client, err := New(WithQuietMode(), WithNewsAPI("test-key", server.URL+"/v2/", 0))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Search(context.Background(), " ")

	assert.True(t, IsValidationError(err))
}

func TestClient_HeadlinesEmptyIsAbsent(t *testing.T) {
	server := newsServer(t, `{"status":"ok","totalResults":0,"articles":[]}`, nil)
	collector := notify.NewCollector(nil)
	client, err := New(
		WithQuietMode(),
		WithNewsAPI("test-key", server.URL+"/v2/", 0),
		WithNotifier(collector),
	)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Headlines(context.Background(), "us", "")

	require.NoError(t, err)
	assert.True(t, result.Absent())
	assert.Equal(t, ReasonEmpty, result.Reason)
	assert.Len(t, collector.Notices(), 1)
}

func TestClient_InvalidateForcesRefetch(t *testing.T) {
	var hits int32
	server := newsServer(t, oneArticle, &hits)
	client, err := New(WithQuietMode(), WithNewsAPI("test-key", server.URL+"/v2/", 0))
	require.NoError(t, err)
	defer client.Close()

	params := Params{"country": "us"}
	_, err = client.TopHeadlines(context.Background(), params, 0)
	require.NoError(t, err)
	require.NoError(t, client.Invalidate(context.Background(), EndpointTopHeadlines, params))
	_, err = client.TopHeadlines(context.Background(), params, 0)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClient_ClosedClient(t *testing.T) {
	server := newsServer(t, oneArticle, nil)
	client, err := New(WithQuietMode(), WithNewsAPI("test-key", server.URL+"/v2/", 0))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err = client.Search(context.Background(), "ChatGPT")
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestNewCache_Backends(t *testing.T) {
	logger := QuietLogger()

	t.Run("memory", func(t *testing.T) {
		cache, closer := NewCache(config.CacheConfig{Type: config.CacheMemory}, logger)
		assert.IsType(t, &memory.MemoryCache{}, cache)
		assert.Nil(t, closer)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.db")
		cache, closer := NewCache(config.CacheConfig{Type: config.CacheSQLite, SQLite: config.SQLiteConfig{Path: path}}, logger)
		require.NotNil(t, closer)
		defer closer.Close()

		ctx := context.Background()
		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
		got, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("redis falls back to memory", func(t *testing.T) {
		cache, closer := NewCache(config.CacheConfig{Type: config.CacheRedis}, logger)
		assert.IsType(t, &memory.MemoryCache{}, cache)
		assert.Nil(t, closer)
	})
}

func TestError_Format(t *testing.T) {
	err := NewError(ErrorTypeConfiguration, "bad setting").WithContext("field", "x")

	assert.Equal(t, "configuration: bad setting", err.Error())
	assert.Equal(t, "x", err.Context["field"])
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsValidationError(err))
}
