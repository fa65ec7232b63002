package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"newsapi-connector/connector"
	"newsapi-connector/infrastructure/logger/structured"
	"newsapi-connector/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, baseURL string) (*app, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &app{
		out: &buf,
		cfg: &config.Config{
			NewsAPI: config.NewsAPIConfig{APIKey: "test-key", BaseURL: baseURL},
			Cache:   config.CacheConfig{Type: config.CacheMemory},
		},
		logger:    structured.NewLogger(structured.Options{Output: io.Discard}),
		newClient: connector.New,
	}, &buf
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "newsapi dev")
}

func TestSearchCommand(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/everything", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[{"source":{"name":"Wire"},"title":"ChatGPT ships","url":"https://example.com"}]}`))
	}))
	defer server.Close()

	a, buf := testApp(t, server.URL+"/v2/")
	cmd := newSearchCmd(a)
	cmd.SetArgs([]string{"open", "ai", "--fields", "title"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "open ai", gotQuery)
	assert.Contains(t, buf.String(), "title: ChatGPT ships")
}

func TestHeadlinesCommand_Params(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		assert.Equal(t, "gb", r.URL.Query().Get("country"))
		assert.Equal(t, "science", r.URL.Query().Get("category"))
		assert.False(t, r.URL.Query().Has("q"))
		w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer server.Close()

	a, buf := testApp(t, server.URL+"/v2/")
	cmd := newHeadlinesCmd(a)
	cmd.SetArgs([]string{"--country", "gb", "--category", "science"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, buf.String(), "No articles found")
}

func TestSearchCommand_UnknownField(t *testing.T) {
	a, _ := testApp(t, "https://newsapi.org/v2/")
	called := false
	a.newClient = func(opts ...connector.Option) (*connector.Client, error) {
		called = true
		return connector.New(opts...)
	}

	cmd := newSearchCmd(a)
	cmd.SetArgs([]string{"topic", "--fields", "nope"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.ExecuteContext(context.Background()))
	assert.False(t, called)
}

func TestRootCommand_MissingKeyFails(t *testing.T) {
	t.Setenv(config.EnvNewsAPIKey, "")
	t.Setenv(config.EnvNewsAPIBaseURL, "https://newsapi.org/v2/")
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	root := newRootCmd(&buf)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"search", "ChatGPT", "--secrets", filepath.Join(t.TempDir(), "missing.toml")})

	err := root.Execute()

	require.Error(t, err)
	assert.True(t, connector.IsConfigurationError(err))
}
