package controllers

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/Tejasai37/papercast/middleware"
	"github.com/gin-gonic/gin"
	"net/http"
	"net/http/httptest"
	"sync"
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

// fakeGenerator mirrors the orchestrator's contract: no identity fails before
// any work, unknown ids are not found.
type fakeGenerator struct {
	mu      sync.Mutex
	records map[string]*domain.PodcastRecord
	err     error
	release chan struct{}
	calls   []inbound.GeneratePodcastParams
}

func (f *fakeGenerator) GenerateOrFetch(_ context.Context, params inbound.GeneratePodcastParams) domain.GenerationResult {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	if params.UserID == "" {
		return domain.GenerationResult{Status: domain.ResultFailed, Err: domain.ErrUnauthorized}
	}
	if f.err != nil {
		return domain.GenerationResult{Status: domain.ResultFailed, Err: f.err}
	}
	record, ok := f.records[params.ArticleID]
	if !ok {
		return domain.GenerationResult{Status: domain.ResultFailed, Err: domain.ErrNotFound}
	}
	return domain.GenerationResult{Status: domain.ResultGenerated, Record: record}
}

type fakeDiscovery struct {
	articles  []domain.Article
	err       error
	category  string
	query     string
	linkURL   string
	extracted *domain.Article
}

func (f *fakeDiscovery) Headlines(_ context.Context, category string) ([]domain.Article, error) {
	f.category = category
	return f.articles, f.err
}

func (f *fakeDiscovery) Search(_ context.Context, query string) ([]domain.Article, error) {
	f.query = query
	return f.articles, f.err
}

func (f *fakeDiscovery) ExtractLink(_ context.Context, url string) (*domain.Article, error) {
	f.linkURL = url
	if f.err != nil {
		return nil, f.err
	}
	return f.extracted, nil
}

type fakeAdmin struct {
	records []domain.PodcastRecord
	purged  inbound.PurgeParams
	deleted []string
	err     error
}

func (f *fakeAdmin) List(context.Context) ([]domain.PodcastRecord, error) {
	return f.records, f.err
}

func (f *fakeAdmin) Purge(_ context.Context, params inbound.PurgeParams) (int, error) {
	f.purged = params
	return 2, f.err
}

func (f *fakeAdmin) Delete(_ context.Context, articleID string) error {
	f.deleted = append(f.deleted, articleID)
	return f.err
}

func newTestEngine() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewSessionAuthHandler("admin", "admin").AuthMiddleware())
	return engine, engine.Group("/api")
}

func perform(engine *gin.Engine, req *http.Request, user string) *httptest.ResponseRecorder {
	if user != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: user})
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}
