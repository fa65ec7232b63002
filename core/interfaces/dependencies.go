// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores query outcomes for their TTL
	Cache Cache

	// Logger provides structured logging
	Logger Logger

	// Notifier receives user-facing diagnostics
	Notifier Notifier
}
