// ABOUTME: News handlers for the Huma API
// ABOUTME: Serves topic search and top headlines through the cached query façade

package handlers

import (
	"context"
	"net/http"

	"newsapi-connector/api/dto/mappers"
	"newsapi-connector/api/dto/requests"
	"newsapi-connector/api/dto/responses"
	"newsapi-connector/core/domain"
	"newsapi-connector/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// NewsService is the façade the handlers need, plus cache invalidation
type NewsService interface {
	interfaces.NewsService
	Invalidate(ctx context.Context, endpoint domain.Endpoint, params domain.Params) error
}

// NewsHandler handles news query requests
type NewsHandler struct {
	service NewsService
	logger  interfaces.Logger
}

// NewNewsHandler creates a new news handler. logger may be nil.
func NewNewsHandler(service NewsService, logger interfaces.Logger) *NewsHandler {
	return &NewsHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the news routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchEverything",
		Method:      http.MethodGet,
		Path:        "/everything",
		Summary:     "Search articles by topic",
		Description: "Searches all NewsAPI articles for a topic. Results are cached; upstream failures return found=false instead of an error.",
		Tags:        []string{"News"},
	}, h.SearchEverything)

	huma.Register(api, huma.Operation{
		OperationID: "topHeadlines",
		Method:      http.MethodGet,
		Path:        "/top-headlines",
		Summary:     "Top headlines by country and category",
		Description: "Returns current top headlines. Results are cached; upstream failures return found=false instead of an error.",
		Tags:        []string{"News"},
	}, h.TopHeadlines)
}

// NewsOutput is the output of both news operations
type NewsOutput struct {
	Body responses.NewsResponse
}

// SearchEverything handles GET /everything
func (h *NewsHandler) SearchEverything(ctx context.Context, input *requests.SearchRequest) (*NewsOutput, error) {
	params := input.Params()

	if input.Refresh {
		h.invalidate(ctx, domain.EndpointEverything, params)
	}

	result, err := h.service.SearchByTopic(ctx, params, input.TTLDuration())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &NewsOutput{Body: mappers.ToNewsResponse(result)}, nil
}

// TopHeadlines handles GET /top-headlines
func (h *NewsHandler) TopHeadlines(ctx context.Context, input *requests.HeadlinesRequest) (*NewsOutput, error) {
	params := input.Params()

	if input.Refresh {
		h.invalidate(ctx, domain.EndpointTopHeadlines, params)
	}

	result, err := h.service.TopHeadlines(ctx, params, input.TTLDuration())
	if err != nil {
		return nil, toHumaError(err)
	}

	return &NewsOutput{Body: mappers.ToNewsResponse(result)}, nil
}

func (h *NewsHandler) invalidate(ctx context.Context, endpoint domain.Endpoint, params domain.Params) {
	if err := h.service.Invalidate(ctx, endpoint, params); err != nil && h.logger != nil {
		h.logger.Warn("Failed to invalidate cached query", map[string]interface{}{
			"endpoint": string(endpoint),
			"error":    err.Error(),
		})
	}
}
