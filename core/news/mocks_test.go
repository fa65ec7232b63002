package news

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"newsapi-connector/core/interfaces"
	"newsapi-connector/pkg/config"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int32
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Calls() int {
	return int(atomic.LoadInt32(&m.calls))
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// jsonClient answers every request with the given status and body
func jsonClient(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockLogger records log calls by level
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (m *mockLogger) add(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.add("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.add("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.add("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.add("error", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

// mockNotifier records notices
type mockNotifier struct {
	mu      sync.Mutex
	notices []interfaces.Notice
}

func (m *mockNotifier) Notify(ctx context.Context, notice interfaces.Notice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices = append(m.notices, notice)
}

func (m *mockNotifier) all() []interfaces.Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]interfaces.Notice(nil), m.notices...)
}

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func testConfig() config.NewsAPIConfig {
	return config.NewsAPIConfig{
		APIKey:     "test-key",
		BaseURL:    "https://newsapi.org/v2/",
		MaxRetries: 5,
	}
}

// dialerFor returns a dialer handing out client and counting dials
func dialerFor(client interfaces.HTTPClient, dials *int32) Dialer {
	return func(cfg config.NewsAPIConfig) interfaces.HTTPClient {
		if dials != nil {
			atomic.AddInt32(dials, 1)
		}
		return client
	}
}
