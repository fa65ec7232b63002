package mappers

import (
	"testing"

	"newsapi-connector/core/domain"
)

func TestToNewsResponse_Found(t *testing.T) {
	result := domain.Found(&domain.ArticleResultSet{
		Status:       "ok",
		TotalResults: 2,
		Articles: []domain.Article{
			{
				Source:      domain.ArticleSource{ID: "bbc-news", Name: "BBC News"},
				Title:       "ChatGPT launches update",
				URL:         "https://x",
				PublishedAt: "2024-01-01T00:00:00Z",
			},
			{
				Source: domain.ArticleSource{Name: "Wire"},
				Title:  "Second",
			},
		},
	})

	response := ToNewsResponse(result)

	if !response.Found {
		t.Fatal("Found = false, want true")
	}
	if response.Reason != "" {
		t.Errorf("Reason = %q, want empty", response.Reason)
	}
	if response.TotalResults != 2 || response.Status != "ok" {
		t.Errorf("Status/TotalResults = %s/%d", response.Status, response.TotalResults)
	}
	if len(response.Articles) != 2 {
		t.Fatalf("len(Articles) = %d, want 2", len(response.Articles))
	}

	first := response.Articles[0]
	if first.Source.ID != "bbc-news" || first.Source.Name != "BBC News" {
		t.Errorf("Source = %+v", first.Source)
	}
	if first.PublishedDate != "01 January 2024" {
		t.Errorf("PublishedDate = %q, want 01 January 2024", first.PublishedDate)
	}
	if response.Articles[1].PublishedDate != "" {
		t.Errorf("PublishedDate = %q, want empty for missing date", response.Articles[1].PublishedDate)
	}
}

func TestToNewsResponse_Absent(t *testing.T) {
	tests := []struct {
		name   string
		reason domain.AbsenceReason
	}{
		{"transport", domain.ReasonTransport},
		{"empty", domain.ReasonEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := ToNewsResponse(domain.AbsentResult(tt.reason))

			if response.Found {
				t.Error("Found = true, want false")
			}
			if response.Reason != string(tt.reason) {
				t.Errorf("Reason = %q, want %q", response.Reason, tt.reason)
			}
			if response.Articles == nil || len(response.Articles) != 0 {
				t.Errorf("Articles = %#v, want empty non-nil slice", response.Articles)
			}
		})
	}
}
