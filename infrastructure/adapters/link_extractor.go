package adapters

import (
	"bytes"
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"net/http"
	"net/url"
	"strings"
)

type linkExtractor struct {
	ContentFetcher
	logger outbound.LoggerPort
}

func NewLinkExtractor(logger outbound.LoggerPort, contentFetcher ContentFetcher) outbound.LinkExtractorPort {
	return &linkExtractor{
		ContentFetcher: contentFetcher,
		logger:         logger,
	}
}

// Extract pulls the title, site name and paragraph text out of an article page.
func (l *linkExtractor) Extract(ctx context.Context, pageURL string) (*domain.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", "papercast/1.0")

	payload, err := l.FetchContent(req)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err != nil {
		l.logger.ErrorWithFields(err, "Failed to parse article page", map[string]interface{}{
			"url": pageURL,
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	return &domain.Article{
		Title:       extractTitle(doc),
		Source:      extractSiteName(doc, pageURL),
		PublishedAt: firstNonEmpty(metaContent(doc, "article:published_time"), "Recently"),
		Content:     extractBody(doc),
		URL:         pageURL,
	}, nil
}

func metaContent(doc *goquery.Document, property string) string {
	selector := fmt.Sprintf(`meta[property="%s"], meta[name="%s"]`, property, property)
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func extractTitle(doc *goquery.Document) string {
	return firstNonEmpty(
		metaContent(doc, "og:title"),
		strings.TrimSpace(doc.Find("title").First().Text()),
		strings.TrimSpace(doc.Find("h1").First().Text()),
	)
}

func extractSiteName(doc *goquery.Document, pageURL string) string {
	if name := metaContent(doc, "og:site_name"); name != "" {
		return name
	}
	if parsed, err := url.Parse(pageURL); err == nil && parsed.Host != "" {
		return strings.TrimPrefix(parsed.Host, "www.")
	}
	return "Unknown"
}

// extractBody prefers paragraphs inside <article> and falls back to every
// paragraph on the page.
func extractBody(doc *goquery.Document) string {
	paragraphs := collectParagraphs(doc.Find("article p"))
	if len(paragraphs) == 0 {
		paragraphs = collectParagraphs(doc.Find("p"))
	}
	return strings.Join(paragraphs, "\n\n")
}

func collectParagraphs(selection *goquery.Selection) []string {
	paragraphs := make([]string, 0, selection.Length())
	selection.Each(func(_ int, s *goquery.Selection) {
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}
