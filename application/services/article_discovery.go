package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/channel_utils"
	"github.com/Tejasai37/papercast/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"net/url"
	"strings"
)

const (
	DefaultCategory  = "general"
	SearchIDPrefix   = "search"
	CustomLinkPrefix = "custom"
)

var ErrSearchUnavailable = errors.New("article search is not configured")

type DiscoveryLimits struct {
	Headlines int
	Search    int
}

type sourceBatch struct {
	index    int
	source   string
	articles []domain.Article
	err      error
}

type articleDiscovery struct {
	logger        outbound.LoggerPort
	articleCache  outbound.ArticleCachePort
	sources       []outbound.HeadlineSourcePort
	fallback      outbound.HeadlineSourcePort
	searcher      outbound.ArticleSearchPort
	linkExtractor outbound.LinkExtractorPort
	workerPool    outbound.TaskDispatcher
	limits        DiscoveryLimits
	titleCaser    cases.Caser
}

func NewArticleDiscovery(logger outbound.LoggerPort, articleCache outbound.ArticleCachePort,
	sources []outbound.HeadlineSourcePort, fallback outbound.HeadlineSourcePort,
	searcher outbound.ArticleSearchPort, linkExtractor outbound.LinkExtractorPort,
	workerPool outbound.TaskDispatcher, limits DiscoveryLimits) inbound.ArticleDiscoveryPort {
	return &articleDiscovery{
		logger:        logger,
		articleCache:  articleCache,
		sources:       sources,
		fallback:      fallback,
		searcher:      searcher,
		linkExtractor: linkExtractor,
		workerPool:    workerPool,
		limits:        limits,
		titleCaser:    cases.Title(language.English),
	}
}

func (d *articleDiscovery) Headlines(ctx context.Context, category string) ([]domain.Article, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = DefaultCategory
	}
	req := outbound.HeadlinesRequest{Category: category, Limit: d.limits.Headlines}

	batches := d.collectHeadlines(ctx, req)

	articles := make([]domain.Article, 0, d.limits.Headlines)
	seen := map[string]struct{}{}
	for _, batch := range batches {
		for _, article := range batch.articles {
			if len(articles) >= d.limits.Headlines {
				break
			}
			normalized, ok := d.normalize(article, category, category)
			if !ok {
				continue
			}
			if _, dup := seen[normalized.ID]; dup {
				continue
			}
			seen[normalized.ID] = struct{}{}
			articles = append(articles, normalized)
		}
	}

	if len(articles) == 0 && d.fallback != nil {
		d.logger.InfoWithFields("No live headlines, serving fallback articles", map[string]interface{}{
			"category": category,
		})
		fallbackArticles, err := d.fallback.Headlines(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, article := range fallbackArticles {
			if len(articles) >= d.limits.Headlines {
				break
			}
			if normalized, ok := d.normalize(article, category, category); ok {
				articles = append(articles, normalized)
			}
		}
	}

	d.remember(articles)
	return articles, nil
}

// collectHeadlines queries every source concurrently. A failing source is
// logged and skipped; batches come back in source order.
func (d *articleDiscovery) collectHeadlines(ctx context.Context, req outbound.HeadlinesRequest) []sourceBatch {
	channels := make([]<-chan sourceBatch, 0, len(d.sources))
	for i, src := range d.sources {
		index, source := i, src
		ch := make(chan sourceBatch, 1)
		channels = append(channels, ch)
		channel_utils.Dispatch(d.workerPool, func() {
			defer close(ch)
			articles, err := source.Headlines(ctx, req)
			ch <- sourceBatch{index: index, source: source.Name(), articles: articles, err: err}
		})
	}

	merged := channel_utils.MergeChannels(d.workerPool, channels...)

	batches := make([]sourceBatch, len(d.sources))
	for _, batch := range channel_utils.Drain(merged) {
		if batch.err != nil {
			d.logger.ErrorWithFields(batch.err, "Headline source failed", map[string]interface{}{
				"source":   batch.source,
				"category": req.Category,
			})
			continue
		}
		batches[batch.index] = batch
	}
	return batches
}

func (d *articleDiscovery) Search(ctx context.Context, query string) ([]domain.Article, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Article{}, nil
	}
	if d.searcher == nil {
		return nil, ErrSearchUnavailable
	}

	found, err := d.searcher.Search(ctx, query, d.limits.Search)
	if err != nil {
		d.logger.ErrorWithFields(err, "Article search failed", map[string]interface{}{
			"query": query,
		})
		return nil, err
	}

	articles := make([]domain.Article, 0, len(found))
	for _, article := range found {
		if normalized, ok := d.normalize(article, SearchIDPrefix, article.Category); ok {
			articles = append(articles, normalized)
		}
	}
	d.remember(articles)
	return articles, nil
}

func (d *articleDiscovery) ExtractLink(ctx context.Context, rawURL string) (*domain.Article, error) {
	parsed, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("invalid article url %q", rawURL)
	}

	extracted, err := d.linkExtractor.Extract(ctx, parsed.String())
	if err != nil {
		d.logger.ErrorWithFields(err, "Link extraction failed", map[string]interface{}{
			"url": parsed.String(),
		})
		return nil, err
	}
	if extracted == nil || strings.TrimSpace(extracted.Content) == "" {
		return nil, fmt.Errorf("no readable content at %s: %w", parsed.String(), domain.ErrNotFound)
	}

	article, ok := d.normalize(*extracted, CustomLinkPrefix, extracted.Category)
	if !ok {
		return nil, fmt.Errorf("no title at %s: %w", parsed.String(), domain.ErrNotFound)
	}
	d.remember([]domain.Article{article})
	return &article, nil
}

// normalize assigns the deterministic id and display category.
func (d *articleDiscovery) normalize(article domain.Article, idPrefix string, category string) (domain.Article, bool) {
	article.Title = strings.TrimSpace(article.Title)
	if article.Title == "" {
		return domain.Article{}, false
	}
	article.ID = domain.DeriveArticleID(idPrefix, article.Title)
	if category != "" {
		article.Category = d.titleCaser.String(category)
	}
	return article, true
}

func (d *articleDiscovery) remember(articles []domain.Article) {
	for _, article := range articles {
		d.articleCache.Put(article)
	}
}
