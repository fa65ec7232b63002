// ABOUTME: Query domain types describe NewsAPI endpoints, parameters and outcomes
// ABOUTME: Result makes the "no usable data" case explicit instead of nil

package domain

import (
	"net/url"
	"strings"
)

// StatusOK is the status value NewsAPI reports for successful requests
const StatusOK = "ok"

// Endpoint names a NewsAPI endpoint relative to the base URL
type Endpoint string

const (
	// EndpointEverything searches all articles by free-text query
	EndpointEverything Endpoint = "everything"

	// EndpointTopHeadlines returns breaking headlines filtered by country/category
	EndpointTopHeadlines Endpoint = "top-headlines"
)

// APIKeyParam is the query parameter carrying the API key
const APIKeyParam = "apiKey"

// Params maps query parameter names to values, forwarded verbatim to NewsAPI
type Params map[string]string

// Query returns the trimmed free-text query ("q")
func (p Params) Query() string {
	return strings.TrimSpace(p["q"])
}

// Values converts the params to url.Values, dropping any caller supplied API key
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		if k == APIKeyParam {
			continue
		}
		values.Set(k, v)
	}
	return values
}

// Encode returns the canonical query string. Names are sorted, so the
// encoding does not depend on insertion order.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// AbsenceReason explains why a Result carries no data
type AbsenceReason string

const (
	// ReasonNone marks a result that holds data
	ReasonNone AbsenceReason = ""

	// ReasonTransport covers network failures, non-2xx statuses and malformed bodies
	ReasonTransport AbsenceReason = "transport"

	// ReasonEmpty covers non-"ok" statuses and zero results
	ReasonEmpty AbsenceReason = "empty"
)

// Result is the outcome of a query: either a result set or an explicit absence
type Result struct {
	ResultSet *ArticleResultSet
	Reason    AbsenceReason
}

// Found wraps a usable result set
func Found(rs *ArticleResultSet) Result {
	return Result{ResultSet: rs}
}

// AbsentResult builds an absence with the given reason
func AbsentResult(reason AbsenceReason) Result {
	return Result{Reason: reason}
}

// Absent reports whether the result carries no usable data
func (r Result) Absent() bool {
	return r.ResultSet == nil
}
