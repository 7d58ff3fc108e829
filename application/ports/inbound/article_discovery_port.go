package inbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
)

type ArticleDiscoveryPort interface {
	Headlines(ctx context.Context, category string) ([]domain.Article, error)
	Search(ctx context.Context, query string) ([]domain.Article, error)
	ExtractLink(ctx context.Context, url string) (*domain.Article, error)
}
