// ABOUTME: Duration formatting utilities for human-readable article ages
// ABOUTME: Used by the CLI story cards

package duration

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Ago describes how long before now t was, e.g. "3 hours ago".
// The zero time yields an empty string; times under a minute old, or in
// the future, read "just now".
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.Sub(t) < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
