package dto

import "github.com/Tejasai37/papercast/domain"

type HeadlinesResponse struct {
	Category string           `json:"category"`
	Articles []domain.Article `json:"articles"`
}

type SearchResponse struct {
	Query    string           `json:"query"`
	Articles []domain.Article `json:"articles"`
}

type ProcessLinkResponse struct {
	ArticleID string `json:"article_id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Content   string `json:"content"`
	Status    string `json:"status"`
}

func NewProcessLinkResponse(article domain.Article) ProcessLinkResponse {
	return ProcessLinkResponse{
		ArticleID: article.ID,
		Title:     article.Title,
		Source:    article.Source,
		Content:   article.Content,
		Status:    "ready",
	}
}
