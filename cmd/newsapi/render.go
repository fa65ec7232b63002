// ABOUTME: Renders query results as text story cards or JSON
// ABOUTME: Field selection and limits mirror the story feed's field picker and slider

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"newsapi-connector/api/dto/mappers"
	"newsapi-connector/core/domain"
	"newsapi-connector/pkg/utils/duration"
	"newsapi-connector/pkg/utils/html"

	"github.com/charmbracelet/lipgloss"
)

// descriptionWidth bounds the description line of a story card
const descriptionWidth = 200

// cardStyles styles a story card for the terminal behind w. Writers that are
// not terminals get plain text.
type cardStyles struct {
	title lipgloss.Style
	meta  lipgloss.Style
	link  lipgloss.Style
}

func newCardStyles(w io.Writer) cardStyles {
	r := lipgloss.NewRenderer(w)
	return cardStyles{
		title: r.NewStyle().Bold(true),
		meta:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#A0A0A0"}),
		link:  r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
	}
}

// renderOptions controls how a result is printed
type renderOptions struct {
	Fields []string
	Limit  int
	JSON   bool
	Now    time.Time
}

// validate rejects unknown field names
func (o renderOptions) validate() error {
	for _, name := range o.Fields {
		if _, ok := (&domain.Article{}).Field(name); !ok {
			return fmt.Errorf("unknown field %q (valid: %s)", name, strings.Join(domain.ArticleFields, ", "))
		}
	}
	return nil
}

// renderResult prints result to w
func renderResult(w io.Writer, result domain.Result, opts renderOptions) error {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	if !result.Absent() {
		result = domain.Found(result.ResultSet.Take(limit))
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mappers.ToNewsResponse(result))
	}

	if result.Absent() {
		_, err := fmt.Fprintln(w, absenceMessage(result.Reason))
		return err
	}

	rs := result.ResultSet
	styles := newCardStyles(w)
	fmt.Fprintf(w, "%d total results, showing %d\n\n", rs.TotalResults, len(rs.Articles))
	for i := range rs.Articles {
		if len(opts.Fields) > 0 {
			renderFields(w, &rs.Articles[i], opts.Fields)
		} else {
			renderCard(w, styles, i+1, &rs.Articles[i], opts.Now)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func absenceMessage(reason domain.AbsenceReason) string {
	switch reason {
	case domain.ReasonTransport:
		return "Could not fetch news articles. Try again later."
	default:
		return "No articles found for this query."
	}
}

func renderCard(w io.Writer, styles cardStyles, n int, article *domain.Article, now time.Time) {
	fmt.Fprintf(w, "%d. %s\n", n, styles.title.Render(html.StripHTML(article.Title)))

	meta := []string{}
	if article.Source.Name != "" {
		meta = append(meta, article.Source.Name)
	}
	if article.Author != "" {
		meta = append(meta, article.Author)
	}
	if ago := duration.Ago(article.PublishedTime(), now); ago != "" {
		meta = append(meta, ago)
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "   %s\n", styles.meta.Render(strings.Join(meta, " | ")))
	}

	if desc := html.Truncate(html.StripHTML(article.Description), descriptionWidth); desc != "" {
		fmt.Fprintf(w, "   %s\n", desc)
	}
	if article.URL != "" {
		fmt.Fprintf(w, "   %s\n", styles.link.Render(article.URL))
	}
}

func renderFields(w io.Writer, article *domain.Article, fields []string) {
	for _, name := range fields {
		value, _ := article.Field(name)
		if name == "description" || name == "content" || name == "title" {
			value = html.StripHTML(value)
		}
		fmt.Fprintf(w, "%s: %s\n", name, value)
	}
}
