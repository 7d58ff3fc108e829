package mock_generator

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"time"
)

// headlineSource serves canned articles when no live source has any. Articles
// of the requested category come first; the rest follow so the page is never
// empty.
type headlineSource struct {
	logger outbound.LoggerPort
	reader ArticleReader
}

func NewHeadlineSource(logger outbound.LoggerPort, reader ArticleReader) outbound.HeadlineSourcePort {
	return &headlineSource{
		logger: logger,
		reader: reader,
	}
}

func (h *headlineSource) Name() string {
	return "mock"
}

func (h *headlineSource) Headlines(ctx context.Context, req outbound.HeadlinesRequest) ([]domain.Article, error) {
	mockArticles, err := h.reader.Read()
	if err != nil {
		return nil, err
	}

	matching := make([]domain.Article, 0, len(mockArticles))
	others := make([]domain.Article, 0, len(mockArticles))
	for _, m := range mockArticles {
		if m.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(m.Delay) * time.Millisecond):
			}
		}
		article := toArticle(m)
		if m.Category == req.Category {
			matching = append(matching, article)
		} else {
			others = append(others, article)
		}
	}

	articles := append(matching, others...)
	if req.Limit > 0 && len(articles) > req.Limit {
		articles = articles[:req.Limit]
	}
	return articles, nil
}

func toArticle(m MockArticle) domain.Article {
	content := m.Content
	if content == "" {
		content = m.Description
	}
	return domain.Article{
		Title:       m.Title,
		Source:      m.Source,
		Category:    m.Category,
		PublishedAt: m.PublishedAt,
		Content:     content,
		URL:         m.URL,
	}
}
