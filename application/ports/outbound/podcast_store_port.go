package outbound

import (
	"context"
	"github.com/Tejasai37/papercast/domain"
)

type RecordPredicate func(record domain.PodcastRecord) bool

// PodcastStorePort is the persistent metadata tier. Get returns
// domain.ErrNotFound when no record exists for the id.
type PodcastStorePort interface {
	Get(ctx context.Context, articleID string) (*domain.PodcastRecord, error)
	Put(ctx context.Context, articleID string, record domain.PodcastRecord) error
	Scan(ctx context.Context, predicate RecordPredicate) ([]domain.PodcastRecord, error)
	Delete(ctx context.Context, articleID string) error
}
