// ABOUTME: HTML utilities for turning article snippets into plain text
// ABOUTME: NewsAPI descriptions and content often carry markup and entities

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with entities
// decoded and whitespace collapsed. Script and style bodies are dropped.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}
	doc.Find("script, style, noscript").Remove()

	// Block boundaries separate words
	doc.Find("br, p, div, li, h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		s.BeforeHtml(" ")
	})

	return collapseSpace(doc.Find("body").Text())
}

// Truncate shortens text to at most n runes, appending "..." when cut
func Truncate(text string, n int) string {
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return strings.TrimSpace(string(runes[:n-3])) + "..."
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
