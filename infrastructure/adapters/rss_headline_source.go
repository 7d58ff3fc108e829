package adapters

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/mmcdole/gofeed"
	"time"
)

// rssHeadlineSource reads one feed. Feeds have no notion of category, so
// every category request returns the same items.
type rssHeadlineSource struct {
	logger  outbound.LoggerPort
	feedURL string
	parser  *gofeed.Parser
}

func NewRssHeadlineSource(logger outbound.LoggerPort, feedURL string) outbound.HeadlineSourcePort {
	return &rssHeadlineSource{
		logger:  logger,
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
	}
}

func (r *rssHeadlineSource) Name() string {
	return "rss:" + r.feedURL
}

func (r *rssHeadlineSource) Headlines(ctx context.Context, req outbound.HeadlinesRequest) ([]domain.Article, error) {
	parsed, err := r.parser.ParseURLWithContext(r.feedURL, ctx)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to parse feed", map[string]interface{}{
			"feed": r.feedURL,
		})
		return nil, err
	}

	source := firstNonEmpty(parsed.Title, "Unknown")
	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if req.Limit > 0 && len(articles) >= req.Limit {
			break
		}
		articles = append(articles, domain.Article{
			Title:       item.Title,
			Source:      source,
			Category:    req.Category,
			PublishedAt: r.publishedAt(item),
			Content:     firstNonEmpty(item.Description, item.Content, "No content available."),
			URL:         item.Link,
		})
	}
	return articles, nil
}

func (r *rssHeadlineSource) publishedAt(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	}
	return firstNonEmpty(item.Published, "Recently")
}
