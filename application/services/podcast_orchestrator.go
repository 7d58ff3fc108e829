package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"strings"
	"time"
)

const audioFileExtension = ".mp3"

type OrchestratorTimeouts struct {
	Store      time.Duration
	Upload     time.Duration
	Generation time.Duration
}

type podcastOrchestrator struct {
	logger       outbound.LoggerPort
	articleCache outbound.ArticleCachePort
	podcastStore outbound.PodcastStorePort
	summarizer   inbound.InsightSummarizerPort
	synthesizer  inbound.ScriptSynthesizerPort
	uploader     outbound.AudioUploaderPort
	timeouts     OrchestratorTimeouts
	inFlight     singleflight.Group
	now          func() time.Time
}

func NewPodcastOrchestrator(logger outbound.LoggerPort, articleCache outbound.ArticleCachePort,
	podcastStore outbound.PodcastStorePort, summarizer inbound.InsightSummarizerPort,
	synthesizer inbound.ScriptSynthesizerPort, uploader outbound.AudioUploaderPort,
	timeouts OrchestratorTimeouts) inbound.PodcastGeneratorPort {
	return &podcastOrchestrator{
		logger:       logger,
		articleCache: articleCache,
		podcastStore: podcastStore,
		summarizer:   summarizer,
		synthesizer:  synthesizer,
		uploader:     uploader,
		timeouts:     timeouts,
		now:          time.Now,
	}
}

func (o *podcastOrchestrator) GenerateOrFetch(ctx context.Context, params inbound.GeneratePodcastParams) domain.GenerationResult {
	if params.UserID == "" {
		return failed(domain.ErrUnauthorized)
	}
	if params.ArticleID == "" {
		return failed(fmt.Errorf("empty article id: %w", domain.ErrNotFound))
	}

	if record := o.lookupRecord(ctx, params.ArticleID); record != nil && record.IsComplete() {
		if cached := o.refreshAudio(ctx, params.ArticleID, record); cached != nil {
			o.logger.DebugWithFields("Podcast cache hit", map[string]interface{}{
				"article_id": params.ArticleID,
			})
			return domain.GenerationResult{Status: domain.ResultCached, Record: cached}
		}
	}

	// Concurrent callers for the same article join one generation. The shared
	// run is detached from any single caller so one cancellation does not
	// fail the others; it stays bounded by the generation timeout.
	resultCh := o.inFlight.DoChan(params.ArticleID, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeouts.Generation)
		defer cancel()
		return o.generate(flightCtx, params), nil
	})

	select {
	case <-ctx.Done():
		o.logger.WarnWithFields("Caller left before generation finished", map[string]interface{}{
			"article_id": params.ArticleID,
		})
		return failed(fmt.Errorf("%w: %w", domain.ErrUpstream, ctx.Err()))
	case res := <-resultCh:
		result := res.Val.(domain.GenerationResult)
		if result.Record != nil {
			record := *result.Record
			result.Record = &record
		}
		return result
	}
}

func (o *podcastOrchestrator) generate(ctx context.Context, params inbound.GeneratePodcastParams) domain.GenerationResult {
	generationID := uuid.NewString()
	fields := map[string]interface{}{
		"article_id":    params.ArticleID,
		"user_id":       params.UserID,
		"generation_id": generationID,
	}

	// Another flight may have completed between the caller's check and ours.
	record := o.lookupRecord(ctx, params.ArticleID)
	if record != nil && record.IsComplete() {
		if cached := o.refreshAudio(ctx, params.ArticleID, record); cached != nil {
			return domain.GenerationResult{Status: domain.ResultCached, Record: cached}
		}
	}

	article, err := o.resolveArticle(params.ArticleID, record)
	if err != nil {
		o.logger.WarnWithFields("No content available for article", fields)
		return failed(err)
	}

	o.logger.InfoWithFields("Generating podcast", fields)
	started := o.now()

	insights := o.summarizer.Summarize(ctx, article.Content)

	audio, err := o.synthesizer.Synthesize(ctx, insights.Script)
	if err != nil {
		o.logger.ErrorWithFields(err, "Speech synthesis failed", fields)
		return failed(fmt.Errorf("%w: synthesize audio: %w", domain.ErrUpstream, err))
	}

	audioURL, err := o.upload(ctx, params.ArticleID, audio)
	if err != nil {
		o.logger.ErrorWithFields(err, "Audio upload failed", fields)
		return failed(fmt.Errorf("%w: upload audio: %w", domain.ErrUpstream, err))
	}

	completed := domain.NewPodcastRecord(article, insights, audioURL, params.UserID, o.now().UTC())
	if err := o.save(ctx, completed); err != nil {
		// The uploaded blob stays orphaned; a retry overwrites it by name.
		o.logger.ErrorWithFields(err, "Failed to persist podcast record", fields)
		return failed(fmt.Errorf("%w: save record: %w", domain.ErrUpstream, err))
	}

	fields["audio_bytes"] = len(audio)
	fields["duration_ms"] = o.now().Sub(started).Milliseconds()
	o.logger.InfoWithFields("Podcast generated", fields)

	return domain.GenerationResult{Status: domain.ResultGenerated, Record: &completed}
}

// lookupRecord treats every store failure as a miss.
func (o *podcastOrchestrator) lookupRecord(ctx context.Context, articleID string) *domain.PodcastRecord {
	newCtx, cancel := context.WithTimeout(ctx, o.timeouts.Store)
	defer cancel()

	record, err := o.podcastStore.Get(newCtx, articleID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			o.logger.ErrorWithFields(err, "Podcast store read failed, treating as miss", map[string]interface{}{
				"article_id": articleID,
			})
		}
		return nil
	}
	return record
}

// refreshAudio re-signs the stored audio address of a complete record. A
// record whose blob is gone is a miss (nil). When the check itself fails the
// stored address is served unchanged.
func (o *podcastOrchestrator) refreshAudio(ctx context.Context, articleID string, record *domain.PodcastRecord) *domain.PodcastRecord {
	newCtx, cancel := context.WithTimeout(ctx, o.timeouts.Upload)
	defer cancel()

	audioURL, exists, err := o.uploader.Exists(newCtx, articleID+audioFileExtension)
	if err != nil {
		o.logger.WarnWithFields("Audio existence check failed, serving stored address", map[string]interface{}{
			"article_id": articleID,
			"error":      err.Error(),
		})
		return record
	}
	if !exists {
		o.logger.WarnWithFields("Stored podcast audio is missing, regenerating", map[string]interface{}{
			"article_id": articleID,
		})
		return nil
	}

	refreshed := *record
	refreshed.AudioURL = audioURL
	return &refreshed
}

// resolveArticle prefers the discovery cache, then content already present on
// a partial persisted record.
func (o *podcastOrchestrator) resolveArticle(articleID string, record *domain.PodcastRecord) (domain.Article, error) {
	if article, ok := o.articleCache.Get(articleID); ok && strings.TrimSpace(article.Content) != "" {
		return article, nil
	}
	if record != nil && strings.TrimSpace(record.Content) != "" {
		return domain.Article{
			ID:          articleID,
			Title:       record.Title,
			Source:      record.Source,
			PublishedAt: record.PublishedAt,
			Content:     record.Content,
			URL:         record.ArticleURL,
		}, nil
	}
	return domain.Article{}, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
}

func (o *podcastOrchestrator) upload(ctx context.Context, articleID string, audio []byte) (string, error) {
	newCtx, cancel := context.WithTimeout(ctx, o.timeouts.Upload)
	defer cancel()

	return o.uploader.Upload(newCtx, outbound.UploadAudioRequest{
		Content:  audio,
		FileName: articleID + audioFileExtension,
	})
}

func (o *podcastOrchestrator) save(ctx context.Context, record domain.PodcastRecord) error {
	newCtx, cancel := context.WithTimeout(ctx, o.timeouts.Store)
	defer cancel()

	return o.podcastStore.Put(newCtx, record.ArticleID, record)
}

func failed(err error) domain.GenerationResult {
	return domain.GenerationResult{Status: domain.ResultFailed, Err: err}
}
