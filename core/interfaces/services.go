// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the news query contract and the diagnostics side channel

package interfaces

import (
	"context"
	"time"

	"newsapi-connector/core/domain"
)

// NewsService is the query façade consumed by UI collaborators.
// Upstream faults come back as an Absent result, never as an error; the
// only errors are ValidationError for bad input and ConfigurationError.
type NewsService interface {
	// SearchByTopic queries the "everything" endpoint. params must carry a non-empty "q".
	SearchByTopic(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error)

	// TopHeadlines queries the "top-headlines" endpoint.
	TopHeadlines(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error)
}

// NoticeLevel distinguishes error notices from informational ones
type NoticeLevel string

const (
	NoticeError NoticeLevel = "error"
	NoticeInfo  NoticeLevel = "info"
)

// Notice is a user-facing diagnostic raised when a query degrades to Absent
type Notice struct {
	Level    NoticeLevel
	Endpoint domain.Endpoint
	Message  string
	Err      error
}

// Notifier receives notices. UI layers render them; headless callers log them.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}
