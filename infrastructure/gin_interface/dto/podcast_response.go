package dto

import (
	"github.com/Tejasai37/papercast/domain"
	"time"
)

type PodcastRecordResponse struct {
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	AudioURL  string    `json:"audio_url"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	TLDR      string    `json:"tldr"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPodcastsResponse struct {
	Podcasts []PodcastRecordResponse `json:"podcasts"`
}

func NewListPodcastsResponse(records []domain.PodcastRecord) ListPodcastsResponse {
	podcasts := make([]PodcastRecordResponse, 0, len(records))
	for _, record := range records {
		podcasts = append(podcasts, PodcastRecordResponse{
			ArticleID: record.ArticleID,
			UserID:    record.UserID,
			Status:    string(record.Status),
			AudioURL:  record.AudioURL,
			Title:     record.Title,
			Source:    record.Source,
			TLDR:      record.TLDR,
			CreatedAt: record.CreatedAt,
		})
	}
	return ListPodcastsResponse{Podcasts: podcasts}
}
