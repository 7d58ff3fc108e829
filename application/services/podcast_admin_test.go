package services

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/domain"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func adminFixture() (*fakePodcastStore, time.Time) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakePodcastStore(
		domain.PodcastRecord{ArticleID: "a", UserID: "alice", CreatedAt: base},
		domain.PodcastRecord{ArticleID: "b", UserID: "bob", CreatedAt: base.Add(time.Hour)},
		domain.PodcastRecord{ArticleID: "c", UserID: "alice", CreatedAt: base.Add(2 * time.Hour)},
	)
	return store, base
}

func TestPodcastAdmin_ListNewestFirst(t *testing.T) {
	store, _ := adminFixture()
	admin := NewPodcastAdmin(nopLogger{}, store)

	records, err := admin.List(context.Background())

	assert.Equal(t, nil, err)
	ids := []string{records[0].ArticleID, records[1].ArticleID, records[2].ArticleID}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}

func TestPodcastAdmin_PurgeByUser(t *testing.T) {
	store, _ := adminFixture()
	admin := NewPodcastAdmin(nopLogger{}, store)

	deleted, err := admin.Purge(context.Background(), inbound.PurgeParams{UserID: "alice"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, deleted)
	remaining, _ := admin.List(context.Background())
	assert.Equal(t, 1, len(remaining))
	assert.Equal(t, "b", remaining[0].ArticleID)
}

func TestPodcastAdmin_PurgeByAgeAndUser(t *testing.T) {
	store, base := adminFixture()
	admin := NewPodcastAdmin(nopLogger{}, store)

	deleted, err := admin.Purge(context.Background(), inbound.PurgeParams{
		UserID:        "alice",
		CreatedBefore: base.Add(90 * time.Minute),
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, deleted)
	_, err = store.Get(context.Background(), "c")
	assert.Equal(t, nil, err)
}

func TestPodcastAdmin_Delete(t *testing.T) {
	store, _ := adminFixture()
	admin := NewPodcastAdmin(nopLogger{}, store)

	assert.Equal(t, nil, admin.Delete(context.Background(), "b"))
	records, _ := admin.List(context.Background())
	assert.Equal(t, 2, len(records))
}
