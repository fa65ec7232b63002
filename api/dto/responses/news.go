// ABOUTME: Response DTOs for the news query endpoints
// ABOUTME: Carries either a result set or an explicit absence with its reason

package responses

// SourceResponse identifies an article's publisher
type SourceResponse struct {
	ID   string `json:"id,omitempty" doc:"NewsAPI source identifier"`
	Name string `json:"name" doc:"Publisher name"`
}

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	Source        SourceResponse `json:"source" doc:"Publisher"`
	Author        string         `json:"author,omitempty" doc:"Author"`
	Title         string         `json:"title" doc:"Headline"`
	Description   string         `json:"description,omitempty" doc:"Summary"`
	URL           string         `json:"url" doc:"Link to the full article"`
	URLToImage    string         `json:"urlToImage,omitempty" doc:"Lead image URL"`
	PublishedAt   string         `json:"publishedAt,omitempty" doc:"Publication time as reported by NewsAPI"`
	PublishedDate string         `json:"publishedDate,omitempty" doc:"Publication date formatted for display"`
	Content       string         `json:"content,omitempty" doc:"Truncated article content"`
}

// NewsResponse is returned by both query endpoints. When Found is false the
// article fields are empty and Reason says why.
type NewsResponse struct {
	Found        bool              `json:"found" doc:"Whether usable results were returned"`
	Reason       string            `json:"reason,omitempty" enum:"transport,empty" doc:"Why no results were returned"`
	Status       string            `json:"status,omitempty" doc:"NewsAPI status"`
	TotalResults int               `json:"totalResults" doc:"Total results reported by NewsAPI"`
	Articles     []ArticleResponse `json:"articles" doc:"Articles in NewsAPI order"`
}
