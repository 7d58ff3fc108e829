package outbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
)

type HeadlinesRequest struct {
	Category string
	Limit    int
}

type HeadlineSourcePort interface {
	Name() string
	Headlines(ctx context.Context, req HeadlinesRequest) ([]domain.Article, error)
}

type ArticleSearchPort interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Article, error)
}

type LinkExtractorPort interface {
	Extract(ctx context.Context, url string) (*domain.Article, error)
}
