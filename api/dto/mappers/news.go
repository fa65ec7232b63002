// ABOUTME: Mappers for converting query results to API DTOs
// ABOUTME: Keeps the domain model free of HTTP presentation concerns

package mappers

import (
	"newsapi-connector/api/dto/responses"
	"newsapi-connector/core/domain"
)

// ToNewsResponse converts a query result to a NewsResponse
func ToNewsResponse(result domain.Result) responses.NewsResponse {
	if result.Absent() {
		return responses.NewsResponse{
			Found:    false,
			Reason:   string(result.Reason),
			Articles: []responses.ArticleResponse{},
		}
	}

	rs := result.ResultSet
	response := responses.NewsResponse{
		Found:        true,
		Status:       rs.Status,
		TotalResults: rs.TotalResults,
		Articles:     make([]responses.ArticleResponse, 0, len(rs.Articles)),
	}

	for i := range rs.Articles {
		response.Articles = append(response.Articles, ToArticleResponse(&rs.Articles[i]))
	}

	return response
}

// ToArticleResponse converts a domain Article to an ArticleResponse
func ToArticleResponse(article *domain.Article) responses.ArticleResponse {
	return responses.ArticleResponse{
		Source: responses.SourceResponse{
			ID:   article.Source.ID,
			Name: article.Source.Name,
		},
		Author:        article.Author,
		Title:         article.Title,
		Description:   article.Description,
		URL:           article.URL,
		URLToImage:    article.URLToImage,
		PublishedAt:   article.PublishedAt,
		PublishedDate: article.FormattedDate(),
		Content:       article.Content,
	}
}
