// ABOUTME: Request DTOs for the news query endpoints
// ABOUTME: Maps Huma query parameters onto NewsAPI query parameters

package requests

import (
	"strconv"
	"time"

	"newsapi-connector/core/domain"
)

// CacheControl holds the cache options shared by both endpoints
type CacheControl struct {
	TTL     int  `query:"ttl" minimum:"0" doc:"Cache lifetime in seconds; 0 uses the server default"`
	Refresh bool `query:"refresh" doc:"Drop any cached result before querying"`
}

// TTLDuration converts TTL to a duration; 0 means the default
func (c CacheControl) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// SearchRequest is the input for GET /everything
type SearchRequest struct {
	Q              string `query:"q" doc:"Keywords or phrase to search for (required)" example:"ChatGPT"`
	SearchIn       string `query:"searchIn" doc:"Fields to restrict the search to: title, description, content"`
	Sources        string `query:"sources" doc:"Comma-separated source identifiers"`
	Domains        string `query:"domains" doc:"Comma-separated domains to restrict the search to"`
	ExcludeDomains string `query:"excludeDomains" doc:"Comma-separated domains to exclude"`
	From           string `query:"from" doc:"Oldest article date (ISO 8601)"`
	To             string `query:"to" doc:"Newest article date (ISO 8601)"`
	Language       string `query:"language" doc:"2-letter ISO-639-1 language code"`
	SortBy         string `query:"sortBy" doc:"relevancy, popularity or publishedAt"`
	PageSize       int    `query:"pageSize" minimum:"0" maximum:"100" doc:"Results per page"`
	Page           int    `query:"page" minimum:"0" doc:"Page number"`
	CacheControl
}

// Params returns the NewsAPI parameters, omitting empty values
func (r *SearchRequest) Params() domain.Params {
	p := domain.Params{}
	set(p, "q", r.Q)
	set(p, "searchIn", r.SearchIn)
	set(p, "sources", r.Sources)
	set(p, "domains", r.Domains)
	set(p, "excludeDomains", r.ExcludeDomains)
	set(p, "from", r.From)
	set(p, "to", r.To)
	set(p, "language", r.Language)
	set(p, "sortBy", r.SortBy)
	setInt(p, "pageSize", r.PageSize)
	setInt(p, "page", r.Page)
	return p
}

// HeadlinesRequest is the input for GET /top-headlines
type HeadlinesRequest struct {
	Country  string `query:"country" doc:"2-letter ISO 3166-1 country code" example:"us"`
	Category string `query:"category" doc:"business, entertainment, general, health, science, sports or technology"`
	Sources  string `query:"sources" doc:"Comma-separated source identifiers; cannot be mixed with country or category"`
	Q        string `query:"q" doc:"Keywords to filter headlines by"`
	PageSize int    `query:"pageSize" minimum:"0" maximum:"100" doc:"Results per page"`
	Page     int    `query:"page" minimum:"0" doc:"Page number"`
	CacheControl
}

// Params returns the NewsAPI parameters, omitting empty values
func (r *HeadlinesRequest) Params() domain.Params {
	p := domain.Params{}
	set(p, "country", r.Country)
	set(p, "category", r.Category)
	set(p, "sources", r.Sources)
	set(p, "q", r.Q)
	setInt(p, "pageSize", r.PageSize)
	setInt(p, "page", r.Page)
	return p
}

func set(p domain.Params, key, value string) {
	if value != "" {
		p[key] = value
	}
}

func setInt(p domain.Params, key string, value int) {
	if value > 0 {
		p[key] = strconv.Itoa(value)
	}
}
