// ABOUTME: Notifier that forwards user-facing notices to the structured logger
// ABOUTME: Used by headless callers (CLI, HTTP API) that have no UI to render notices

package notify

import (
	"context"
	"sync"

	"newsapi-connector/core/interfaces"
)

// LogNotifier writes notices to a Logger
type LogNotifier struct {
	logger interfaces.Logger
}

// NewLogNotifier creates a notifier backed by logger
func NewLogNotifier(logger interfaces.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs error notices at error level and everything else at info level
func (n *LogNotifier) Notify(ctx context.Context, notice interfaces.Notice) {
	if n.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"endpoint": string(notice.Endpoint),
		"level":    string(notice.Level),
	}
	if notice.Err != nil {
		fields["error"] = notice.Err.Error()
	}

	if notice.Level == interfaces.NoticeError {
		n.logger.Error(notice.Message, fields)
		return
	}
	n.logger.Info(notice.Message, fields)
}

// Collector keeps notices in memory so callers can render them after a query
type Collector struct {
	mu      sync.Mutex
	notices []interfaces.Notice
	next    interfaces.Notifier
}

// NewCollector creates a collector that also forwards to next when non-nil
func NewCollector(next interfaces.Notifier) *Collector {
	return &Collector{next: next}
}

// Notify records the notice
func (c *Collector) Notify(ctx context.Context, notice interfaces.Notice) {
	c.mu.Lock()
	c.notices = append(c.notices, notice)
	c.mu.Unlock()
	if c.next != nil {
		c.next.Notify(ctx, notice)
	}
}

// Notices returns the recorded notices in arrival order
func (c *Collector) Notices() []interfaces.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]interfaces.Notice, len(c.notices))
	copy(out, c.notices)
	return out
}
