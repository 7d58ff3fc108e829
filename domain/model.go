package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const articleIDHashWidth = 12

type GenerationStatus string

const (
	StatusCompleted GenerationStatus = "completed"
)

type ResultStatus string

const (
	ResultCached    ResultStatus = "cached"
	ResultGenerated ResultStatus = "generated"
	ResultFailed    ResultStatus = "failed"
)

type Speaker string

const (
	HostSpeaker   Speaker = "host"
	ExpertSpeaker Speaker = "expert"
)

type AudioQuality string

const (
	HighQuality     AudioQuality = "high"
	StandardQuality AudioQuality = "standard"
)

// DeriveArticleID returns prefix-<first 12 hex chars of sha256(title)>.
// Repeated headlines with the same prefix collapse onto the same id.
func DeriveArticleID(prefix string, title string) string {
	sum := sha256.Sum256([]byte(title))
	return prefix + "-" + hex.EncodeToString(sum[:])[:articleIDHashWidth]
}

type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	PublishedAt string `json:"time"`
	Content     string `json:"content"`
	URL         string `json:"url"`
}

type Insights struct {
	Script    string   `json:"script"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	TLDR      string   `json:"tldr"`
}

type PodcastRecord struct {
	ArticleID   string
	UserID      string
	Status      GenerationStatus
	AudioURL    string
	Title       string
	Source      string
	PublishedAt string
	Content     string
	ArticleURL  string
	Summary     string
	KeyPoints   []string
	TLDR        string
	Script      string
	CreatedAt   time.Time
}

// IsComplete reports whether the record is servable as a cache hit.
func (r PodcastRecord) IsComplete() bool {
	return r.Status == StatusCompleted && r.AudioURL != ""
}

func (r PodcastRecord) Insights() Insights {
	return Insights{
		Script:    r.Script,
		Summary:   r.Summary,
		KeyPoints: r.KeyPoints,
		TLDR:      r.TLDR,
	}
}

func NewPodcastRecord(article Article, insights Insights, audioURL string, userID string, createdAt time.Time) PodcastRecord {
	return PodcastRecord{
		ArticleID:   article.ID,
		UserID:      userID,
		Status:      StatusCompleted,
		AudioURL:    audioURL,
		Title:       article.Title,
		Source:      article.Source,
		PublishedAt: article.PublishedAt,
		Content:     article.Content,
		ArticleURL:  article.URL,
		Summary:     insights.Summary,
		KeyPoints:   insights.KeyPoints,
		TLDR:        insights.TLDR,
		Script:      insights.Script,
		CreatedAt:   createdAt,
	}
}

type VoiceSegment struct {
	Speaker Speaker
	Text    string
	Ordinal int
}

type GenerationResult struct {
	Status ResultStatus
	Record *PodcastRecord
	Err    error
}

func (r GenerationResult) ToEvent() PodcastEvent {
	event := PodcastEvent{Status: r.Status}
	if r.Record != nil {
		event.ArticleID = r.Record.ArticleID
		event.AudioURL = r.Record.AudioURL
		event.Title = r.Record.Title
		event.Summary = r.Record.Summary
		event.KeyPoints = r.Record.KeyPoints
		event.TLDR = r.Record.TLDR
		event.Script = r.Record.Script
	}
	if r.Err != nil {
		event.Error = r.Err.Error()
	}
	return event
}

type PodcastEvent struct {
	Status    ResultStatus `json:"status"`
	ArticleID string       `json:"article_id,omitempty"`
	AudioURL  string       `json:"audio_url,omitempty"`
	Title     string       `json:"title,omitempty"`
	Summary   string       `json:"summary,omitempty"`
	KeyPoints []string     `json:"key_points,omitempty"`
	TLDR      string       `json:"tldr,omitempty"`
	Script    string       `json:"script,omitempty"`
	Error     string       `json:"error,omitempty"`
}
