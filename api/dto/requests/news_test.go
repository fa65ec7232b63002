package requests

import (
	"testing"
	"time"

	"newsapi-connector/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestSearchRequest_Params(t *testing.T) {
	req := &SearchRequest{
		Q:        "ChatGPT",
		Language: "en",
		SortBy:   "publishedAt",
		PageSize: 20,
	}

	assert.Equal(t, domain.Params{
		"q":        "ChatGPT",
		"language": "en",
		"sortBy":   "publishedAt",
		"pageSize": "20",
	}, req.Params())
}

func TestSearchRequest_ParamsOmitsEmpty(t *testing.T) {
	req := &SearchRequest{}

	assert.Empty(t, req.Params())
}

func TestHeadlinesRequest_Params(t *testing.T) {
	req := &HeadlinesRequest{Country: "us", Category: "business", Page: 2}

	assert.Equal(t, domain.Params{
		"country":  "us",
		"category": "business",
		"page":     "2",
	}, req.Params())
}

func TestCacheControl_TTLDuration(t *testing.T) {
	assert.Equal(t, time.Duration(0), CacheControl{}.TTLDuration())
	assert.Equal(t, 90*time.Second, CacheControl{TTL: 90}.TTLDuration())
}
