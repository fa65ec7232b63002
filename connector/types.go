// ABOUTME: Public types for the connector library API
// ABOUTME: Aliases the domain model so callers need only this package

package connector

import "newsapi-connector/core/domain"

type (
	// Params are NewsAPI query parameters, forwarded verbatim
	Params = domain.Params

	// Result is either a result set or an explicit absence
	Result = domain.Result

	// ArticleResultSet is a decoded NewsAPI response
	ArticleResultSet = domain.ArticleResultSet

	// Article is a single news article
	Article = domain.Article

	// AbsenceReason explains an absent Result
	AbsenceReason = domain.AbsenceReason
)

// Endpoints accepted by Invalidate
const (
	EndpointEverything   = domain.EndpointEverything
	EndpointTopHeadlines = domain.EndpointTopHeadlines
)

// Absence reasons
const (
	ReasonTransport = domain.ReasonTransport
	ReasonEmpty     = domain.ReasonEmpty
)
