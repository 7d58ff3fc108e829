package inbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
)

type GeneratePodcastParams struct {
	ArticleID string
	UserID    string
}

type PodcastGeneratorPort interface {
	GenerateOrFetch(ctx context.Context, params GeneratePodcastParams) domain.GenerationResult
}
