// ABOUTME: News service is the query façade over the NewsAPI connection
// ABOUTME: Caches every outcome for a TTL and turns upstream faults into Absent results

package news

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"newsapi-connector/core/domain"
	coreerrors "newsapi-connector/core/errors"
	"newsapi-connector/core/interfaces"
	"newsapi-connector/pkg/config"

	"golang.org/x/sync/singleflight"
)

// Service implements interfaces.NewsService
type Service struct {
	conn       *Connection
	deps       interfaces.Dependencies
	defaultTTL time.Duration

	inflight singleflight.Group
}

// Option configures a Service
type Option func(*Service)

// WithDefaultTTL sets the TTL used when a caller passes ttl <= 0
func WithDefaultTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.defaultTTL = d
		}
	}
}

// NewService creates a query façade over conn
func NewService(conn *Connection, deps interfaces.Dependencies, opts ...Option) *Service {
	s := &Service{
		conn:       conn,
		deps:       deps,
		defaultTTL: config.DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchByTopic queries the "everything" endpoint. params must carry a
// non-blank "q"; every other parameter is forwarded verbatim.
func (s *Service) SearchByTopic(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error) {
	if params.Query() == "" {
		return domain.Result{}, &coreerrors.ValidationError{
			Field:   "q",
			Message: "search topic is required",
		}
	}
	return s.query(ctx, domain.EndpointEverything, params, ttl)
}

// TopHeadlines queries the "top-headlines" endpoint. country and category
// are optional; NewsAPI applies its own defaults.
func (s *Service) TopHeadlines(ctx context.Context, params domain.Params, ttl time.Duration) (domain.Result, error) {
	return s.query(ctx, domain.EndpointTopHeadlines, params, ttl)
}

// Invalidate drops the cached outcome for one query
func (s *Service) Invalidate(ctx context.Context, endpoint domain.Endpoint, params domain.Params) error {
	if s.deps.Cache == nil {
		return nil
	}
	return s.deps.Cache.Delete(ctx, CacheKey(endpoint, params))
}

// CacheKey derives the cache key for a query. Parameter order does not
// affect the key and the API key never contributes to it.
func CacheKey(endpoint domain.Endpoint, params domain.Params) string {
	sum := sha256.Sum256([]byte(params.Encode()))
	return "newsapi:" + string(endpoint) + ":" + hex.EncodeToString(sum[:])
}

// cacheEnvelope is the stored form of a Result. Absent outcomes are stored too.
type cacheEnvelope struct {
	Absent bool                     `json:"absent"`
	Reason domain.AbsenceReason     `json:"reason,omitempty"`
	Result *domain.ArticleResultSet `json:"result,omitempty"`
}

func (s *Service) query(ctx context.Context, endpoint domain.Endpoint, params domain.Params, ttl time.Duration) (domain.Result, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	key := CacheKey(endpoint, params)

	if result, ok := s.lookup(ctx, key); ok {
		return result, nil
	}
	if ctx.Err() != nil {
		return domain.AbsentResult(domain.ReasonTransport), nil
	}

	// Concurrent identical queries share one fetch. The fetch is detached
	// from any single caller's cancellation; the transport timeout bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		if result, ok := s.lookup(fetchCtx, key); ok {
			return result, nil
		}

		result, err := s.fetch(fetchCtx, endpoint, params)
		if err != nil {
			return nil, err
		}

		s.store(fetchCtx, key, result, ttl)
		return result, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.Result{}, res.Err
		}
		return res.Val.(domain.Result), nil
	case <-ctx.Done():
		s.logDebug("Caller left before NewsAPI responded", map[string]interface{}{
			"endpoint": string(endpoint),
			"error":    ctx.Err().Error(),
		})
		return domain.AbsentResult(domain.ReasonTransport), nil
	}
}

// fetch performs the request and classifies the outcome. Only configuration
// faults are returned as errors.
func (s *Service) fetch(ctx context.Context, endpoint domain.Endpoint, params domain.Params) (domain.Result, error) {
	resultSet, err := s.conn.Request(ctx, endpoint, params)
	if err != nil {
		if coreerrors.IsConfiguration(err) {
			return domain.Result{}, err
		}

		s.logError("NewsAPI request failed", map[string]interface{}{
			"endpoint": string(endpoint),
			"error":    err.Error(),
		})
		s.notify(ctx, interfaces.Notice{
			Level:    interfaces.NoticeError,
			Endpoint: endpoint,
			Message:  "Could not fetch news articles",
			Err:      err,
		})
		return domain.AbsentResult(domain.ReasonTransport), nil
	}

	if !resultSet.IsUsable() {
		emptyErr := &coreerrors.EmptyResultError{
			Endpoint:     string(endpoint),
			Status:       resultSet.Status,
			TotalResults: resultSet.TotalResults,
		}
		s.logInfo("NewsAPI returned no usable articles", map[string]interface{}{
			"endpoint":      string(endpoint),
			"status":        resultSet.Status,
			"total_results": resultSet.TotalResults,
		})
		s.notify(ctx, interfaces.Notice{
			Level:    interfaces.NoticeInfo,
			Endpoint: endpoint,
			Message:  "No articles found for this query",
			Err:      emptyErr,
		})
		return domain.AbsentResult(domain.ReasonEmpty), nil
	}

	return domain.Found(resultSet), nil
}

// lookup returns a live cached outcome. Backend and decode failures count as a miss.
func (s *Service) lookup(ctx context.Context, key string) (domain.Result, bool) {
	if s.deps.Cache == nil {
		return domain.Result{}, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) && !isContextErr(err) {
			s.logWarn("Cache lookup failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return domain.Result{}, false
	}

	var envelope cacheEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.logWarn("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		_ = s.deps.Cache.Delete(ctx, key)
		return domain.Result{}, false
	}

	if envelope.Absent || envelope.Result == nil {
		reason := envelope.Reason
		if reason == domain.ReasonNone {
			reason = domain.ReasonEmpty
		}
		return domain.AbsentResult(reason), true
	}

	s.logDebug("Query served from cache", map[string]interface{}{"key": key})
	return domain.Found(envelope.Result), true
}

// store caches an outcome; failures are logged and otherwise ignored
func (s *Service) store(ctx context.Context, key string, result domain.Result, ttl time.Duration) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(cacheEnvelope{
		Absent: result.Absent(),
		Reason: result.Reason,
		Result: result.ResultSet,
	})
	if err != nil {
		s.logWarn("Failed to encode cache entry", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}

	if err := s.deps.Cache.Set(ctx, key, data, ttl); err != nil {
		s.logWarn("Failed to cache query result", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *Service) notify(ctx context.Context, notice interfaces.Notice) {
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify(ctx, notice)
	}
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
