package adapters

import (
	"github.com/Tejasai37/papercast/domain"
	"time"
)

// podcastDocument is the stored shape shared by every podcast store backend.
// Items written by older versions may carry only audio_url and status.
type podcastDocument struct {
	ArticleID   string    `json:"ArticleID" dynamodbav:"ArticleID"`
	UserID      string    `json:"user_id,omitempty" dynamodbav:"user_id,omitempty"`
	Status      string    `json:"status" dynamodbav:"status"`
	AudioURL    string    `json:"audio_url" dynamodbav:"audio_url"`
	Title       string    `json:"title,omitempty" dynamodbav:"title,omitempty"`
	Source      string    `json:"source,omitempty" dynamodbav:"source,omitempty"`
	PublishedAt string    `json:"time,omitempty" dynamodbav:"time,omitempty"`
	Content     string    `json:"content,omitempty" dynamodbav:"content,omitempty"`
	ArticleURL  string    `json:"url,omitempty" dynamodbav:"url,omitempty"`
	Summary     string    `json:"summary,omitempty" dynamodbav:"summary,omitempty"`
	KeyPoints   []string  `json:"key_points,omitempty" dynamodbav:"key_points,omitempty"`
	TLDR        string    `json:"tldr,omitempty" dynamodbav:"tldr,omitempty"`
	Script      string    `json:"script,omitempty" dynamodbav:"script,omitempty"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

func toPodcastDocument(articleID string, record domain.PodcastRecord) podcastDocument {
	return podcastDocument{
		ArticleID:   articleID,
		UserID:      record.UserID,
		Status:      string(record.Status),
		AudioURL:    record.AudioURL,
		Title:       record.Title,
		Source:      record.Source,
		PublishedAt: record.PublishedAt,
		Content:     record.Content,
		ArticleURL:  record.ArticleURL,
		Summary:     record.Summary,
		KeyPoints:   record.KeyPoints,
		TLDR:        record.TLDR,
		Script:      record.Script,
		CreatedAt:   record.CreatedAt.UTC(),
	}
}

// toRecord fills the id from the storage key when the document lacks it and
// defaults key points to an empty list.
func (d podcastDocument) toRecord(articleID string) domain.PodcastRecord {
	if d.ArticleID != "" {
		articleID = d.ArticleID
	}
	keyPoints := d.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}
	return domain.PodcastRecord{
		ArticleID:   articleID,
		UserID:      d.UserID,
		Status:      domain.GenerationStatus(d.Status),
		AudioURL:    d.AudioURL,
		Title:       d.Title,
		Source:      d.Source,
		PublishedAt: d.PublishedAt,
		Content:     d.Content,
		ArticleURL:  d.ArticleURL,
		Summary:     d.Summary,
		KeyPoints:   keyPoints,
		TLDR:        d.TLDR,
		Script:      d.Script,
		CreatedAt:   d.CreatedAt,
	}
}

func matches(predicate func(domain.PodcastRecord) bool, record domain.PodcastRecord) bool {
	return predicate == nil || predicate(record)
}
