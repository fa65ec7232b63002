// ABOUTME: Article domain model mirrors the article records returned by NewsAPI
// ABOUTME: Provides display helpers used by the CLI and API layers

package domain

import (
	"time"

	timeutil "newsapi-connector/pkg/utils/time"
)

// displayDateLayout matches the card date shown by the demo UI
const displayDateLayout = "02 January 2006"

// ArticleSource identifies the publisher of an article
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article represents a single news article.
// Every field except Source may be null upstream; null decodes to "".
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

// IsDisplayable reports whether the article has enough data to render a story card
func (a *Article) IsDisplayable() bool {
	return a.Title != "" && !a.PublishedTime().IsZero()
}

// PublishedTime parses PublishedAt, returning the zero time when it is missing or malformed
func (a *Article) PublishedTime() time.Time {
	return timeutil.ParseFlexibleTime(a.PublishedAt)
}

// FormattedDate renders PublishedAt as "02 January 2006", or "" when unparsable
func (a *Article) FormattedDate() string {
	t := a.PublishedTime()
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}

// ArticleFields lists the wire field names accepted by Field
var ArticleFields = []string{
	"source", "author", "title", "description", "url", "urlToImage", "publishedAt", "content",
}

// Field returns the value of a field by its wire name.
// The second return value is false for unknown names.
func (a *Article) Field(name string) (string, bool) {
	switch name {
	case "source":
		return a.Source.Name, true
	case "author":
		return a.Author, true
	case "title":
		return a.Title, true
	case "description":
		return a.Description, true
	case "url":
		return a.URL, true
	case "urlToImage":
		return a.URLToImage, true
	case "publishedAt":
		return a.PublishedAt, true
	case "content":
		return a.Content, true
	}
	return "", false
}

// ArticleResultSet is the parsed body of a successful NewsAPI response
type ArticleResultSet struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// IsUsable reports whether the set carries results worth returning
func (rs *ArticleResultSet) IsUsable() bool {
	return rs != nil && rs.Status == StatusOK && rs.TotalResults > 0
}

// Take returns a copy of the set holding at most n articles.
// A negative n keeps every article.
func (rs *ArticleResultSet) Take(n int) *ArticleResultSet {
	if rs == nil {
		return nil
	}
	out := *rs
	if n >= 0 && n < len(rs.Articles) {
		out.Articles = append([]Article(nil), rs.Articles[:n]...)
	} else {
		out.Articles = append([]Article(nil), rs.Articles...)
	}
	return &out
}
