package services

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"sort"
)

type podcastAdmin struct {
	logger       outbound.LoggerPort
	podcastStore outbound.PodcastStorePort
}

func NewPodcastAdmin(logger outbound.LoggerPort, podcastStore outbound.PodcastStorePort) inbound.PodcastAdminPort {
	return &podcastAdmin{
		logger:       logger,
		podcastStore: podcastStore,
	}
}

func (a *podcastAdmin) List(ctx context.Context) ([]domain.PodcastRecord, error) {
	records, err := a.podcastStore.Scan(ctx, nil)
	if err != nil {
		a.logger.Error(err, "Failed to scan podcast store")
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Purge deletes every record matching all of the non-empty filters.
func (a *podcastAdmin) Purge(ctx context.Context, params inbound.PurgeParams) (int, error) {
	records, err := a.podcastStore.Scan(ctx, func(record domain.PodcastRecord) bool {
		if params.UserID != "" && record.UserID != params.UserID {
			return false
		}
		if !params.CreatedBefore.IsZero() && !record.CreatedAt.Before(params.CreatedBefore) {
			return false
		}
		return true
	})
	if err != nil {
		a.logger.Error(err, "Failed to scan podcast store for purge")
		return 0, err
	}

	deleted := 0
	for _, record := range records {
		if err := a.podcastStore.Delete(ctx, record.ArticleID); err != nil {
			a.logger.ErrorWithFields(err, "Failed to delete podcast record", map[string]interface{}{
				"article_id": record.ArticleID,
			})
			return deleted, err
		}
		deleted++
	}

	a.logger.InfoWithFields("Podcast records purged", map[string]interface{}{
		"deleted": deleted,
	})
	return deleted, nil
}

func (a *podcastAdmin) Delete(ctx context.Context, articleID string) error {
	err := a.podcastStore.Delete(ctx, articleID)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to delete podcast record", map[string]interface{}{
			"article_id": articleID,
		})
	}
	return err
}
