package handlers

import (
	"context"
	"time"

	"newsapi-connector/core/domain"
)

// mockNewsService is a mock implementation of NewsService
type mockNewsService struct {
	searchFunc     func(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error)
	headlinesFunc  func(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error)
	invalidateFunc func(ctx context.Context, endpoint domain.Endpoint, params domain.Params) error
}

func (m *mockNewsService) SearchByTopic(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, params, ttl)
	}
	return domain.AbsentResult(domain.ReasonEmpty), nil
}

func (m *mockNewsService) TopHeadlines(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error) {
	if m.headlinesFunc != nil {
		return m.headlinesFunc(ctx, params, ttl)
	}
	return domain.AbsentResult(domain.ReasonEmpty), nil
}

func (m *mockNewsService) Invalidate(ctx context.Context, endpoint domain.Endpoint, params domain.Params) error {
	if m.invalidateFunc != nil {
		return m.invalidateFunc(ctx, endpoint, params)
	}
	return nil
}

func chatGPTResult() domain.Result {
	return domain.Found(&domain.ArticleResultSet{
		Status:       "ok",
		TotalResults: 1,
		Articles: []domain.Article{{
			Source:      domain.ArticleSource{Name: "Wire"},
			Title:       "ChatGPT launches update",
			URL:         "https://x",
			PublishedAt: "2024-01-01T00:00:00Z",
		}},
	})
}
