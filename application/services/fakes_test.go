package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"sync"
	"sync/atomic"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) InfoWithFields(string, map[string]interface{}) {}
func (nopLogger) Error(error, string) {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string) {}
func (nopLogger) DebugWithFields(string, map[string]interface{}) {}
func (nopLogger) Warn(string) {}
func (nopLogger) WarnWithFields(string, map[string]interface{}) {}

type fakeArticleCache struct {
	mu       sync.Mutex
	articles map[string]domain.Article
}

func newFakeArticleCache(articles ...domain.Article) *fakeArticleCache {
	cache := &fakeArticleCache{articles: map[string]domain.Article{}}
	for _, article := range articles {
		cache.articles[article.ID] = article
	}
	return cache
}

func (c *fakeArticleCache) Put(article domain.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles[article.ID] = article
}

func (c *fakeArticleCache) Get(id string) (domain.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	article, ok := c.articles[id]
	return article, ok
}

func (c *fakeArticleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.articles)
}

type fakePodcastStore struct {
	mu      sync.Mutex
	records map[string]domain.PodcastRecord
	getErr  error
	putErr  error
	gets    int
	puts    int
}

func newFakePodcastStore(records ...domain.PodcastRecord) *fakePodcastStore {
	store := &fakePodcastStore{records: map[string]domain.PodcastRecord{}}
	for _, record := range records {
		store.records[record.ArticleID] = record
	}
	return store
}

func (s *fakePodcastStore) Get(_ context.Context, articleID string) (*domain.PodcastRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.getErr != nil {
		return nil, s.getErr
	}
	record, ok := s.records[articleID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

func (s *fakePodcastStore) Put(_ context.Context, articleID string, record domain.PodcastRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.puts++
	s.records[articleID] = record
	return nil
}

func (s *fakePodcastStore) Scan(_ context.Context, predicate outbound.RecordPredicate) ([]domain.PodcastRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PodcastRecord, 0)
	for _, record := range s.records {
		if predicate == nil || predicate(record) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *fakePodcastStore) Delete(_ context.Context, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, articleID)
	return nil
}

func (s *fakePodcastStore) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

type fakeSummarizer struct {
	calls    atomic.Int32
	insights domain.Insights
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) domain.Insights {
	f.calls.Add(1)
	if f.insights.Script == "" {
		return FallbackInsights(text)
	}
	return f.insights
}

type fakeSynthesizer struct {
	calls   atomic.Int32
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, script string) ([]byte, error) {
	f.calls.Add(1)
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte("audio:" + script), nil
}

// fakeUploader remembers uploaded names so Exists reflects what was stored.
// signedPrefix, when set, replaces the address handed out by Exists.
type fakeUploader struct {
	calls        atomic.Int32
	existsCalls  atomic.Int32
	err          error
	existsErr    error
	signedPrefix string

	mu     sync.Mutex
	stored map[string]bool
}

func (f *fakeUploader) Upload(_ context.Context, req outbound.UploadAudioRequest) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stored == nil {
		f.stored = map[string]bool{}
	}
	f.stored[req.FileName] = true
	return "https://audio.example.com/" + req.FileName, nil
}

func (f *fakeUploader) Exists(_ context.Context, fileName string) (string, bool, error) {
	f.existsCalls.Add(1)
	if f.existsErr != nil {
		return "", false, f.existsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.stored[fileName] {
		return "", false, nil
	}
	if f.signedPrefix != "" {
		return f.signedPrefix + fileName, true, nil
	}
	return "https://audio.example.com/" + fileName, true, nil
}

type fakeLanguageModel struct {
	response string
	err      error
	requests []outbound.CompletionRequest
}

func (f *fakeLanguageModel) Complete(_ context.Context, req outbound.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.response, f.err
}

// fakeSpeechEngine renders audio as "<speaker|quality|text>" so stitching
// order is visible in assertions.
type fakeSpeechEngine struct {
	mu       sync.Mutex
	failures map[domain.AudioQuality]bool
	failText string
	requests []outbound.GenerateAudioRequest
}

func (f *fakeSpeechEngine) Generate(_ context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.failures[req.Quality] && (f.failText == "" || f.failText == req.Text) {
		return nil, errors.New("engine unavailable")
	}
	return []byte(fmt.Sprintf("<%s|%s|%s>", req.Speaker, req.Quality, req.Text)), nil
}

func (f *fakeSpeechEngine) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeHeadlineSource struct {
	name     string
	articles []domain.Article
	err      error
}

func (f *fakeHeadlineSource) Name() string {
	return f.name
}

func (f *fakeHeadlineSource) Headlines(_ context.Context, req outbound.HeadlinesRequest) ([]domain.Article, error) {
	return f.articles, f.err
}

type fakeSearcher struct {
	articles []domain.Article
	query    string
}

func (f *fakeSearcher) Search(_ context.Context, query string, limit int) ([]domain.Article, error) {
	f.query = query
	return f.articles, nil
}

type fakeLinkExtractor struct {
	article *domain.Article
	err     error
}

func (f *fakeLinkExtractor) Extract(_ context.Context, url string) (*domain.Article, error) {
	return f.article, f.err
}
