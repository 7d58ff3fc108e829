package inbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
	"time"
)

type PurgeParams struct {
	UserID        string
	CreatedBefore time.Time
}

type PodcastAdminPort interface {
	List(ctx context.Context) ([]domain.PodcastRecord, error)
	Purge(ctx context.Context, params PurgeParams) (int, error)
	Delete(ctx context.Context, articleID string) error
}
