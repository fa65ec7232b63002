// Package core contains the business logic for the NewsAPI connector.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Articles, result sets, query parameters and the Found/Absent result
// - news: The connection to NewsAPI and the cached query façade
// - workers: Background warmer that keeps chosen queries cached
// - errors: Configuration, validation, transport and empty-result errors
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, notifier)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - Upstream faults never escape the façade; callers get an Absent result
// - Every outcome, including an absence, is cached for its TTL
//
// # Usage Example
//
//	import (
//	    "newsapi-connector/core/interfaces"
//	    "newsapi-connector/core/news"
//	)
//
//	conn := news.NewConnection(cfg.NewsAPI, dial, logger)
//	svc := news.NewService(conn, interfaces.Dependencies{
//	    Cache:    myCache,    // implements interfaces.Cache
//	    Logger:   myLogger,   // implements interfaces.Logger
//	    Notifier: myNotifier, // implements interfaces.Notifier
//	})
//
//	result, err := svc.SearchByTopic(ctx, domain.Params{"q": "ChatGPT"}, time.Hour)
//	if err != nil {
//	    // missing topic or broken configuration
//	}
//	if result.Absent() {
//	    // result.Reason is "transport" or "empty"
//	}
package core
