package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const newsAPIPageSize = 10

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// newsAPIClient serves both top headlines and free text search. Without an
// API key it yields no articles so discovery falls through to other sources.
type newsAPIClient struct {
	ContentFetcher
	logger     outbound.LoggerPort
	newsConfig *config.NewsConfig
}

type NewsAPIClient interface {
	outbound.HeadlineSourcePort
	outbound.ArticleSearchPort
}

func NewNewsAPIClient(logger outbound.LoggerPort, contentFetcher ContentFetcher, newsConfig *config.NewsConfig) NewsAPIClient {
	return &newsAPIClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		newsConfig:     newsConfig,
	}
}

func (n *newsAPIClient) Name() string {
	return "newsapi"
}

func (n *newsAPIClient) Headlines(ctx context.Context, req outbound.HeadlinesRequest) ([]domain.Article, error) {
	if n.newsConfig.ApiKey == "" {
		n.logger.Debug("No NewsAPI key configured, skipping headlines")
		return []domain.Article{}, nil
	}

	params := url.Values{}
	params.Set("category", req.Category)
	params.Set("country", n.newsConfig.Country)
	params.Set("pageSize", strconv.Itoa(newsAPIPageSize))

	articles, err := n.fetch(ctx, "top-headlines", params)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		articles[i].Category = req.Category
	}
	return articles, nil
}

func (n *newsAPIClient) Search(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	if n.newsConfig.ApiKey == "" {
		return nil, fmt.Errorf("%w: no NewsAPI key configured", domain.ErrUpstream)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(limit))

	return n.fetch(ctx, "everything", params)
}

func (n *newsAPIClient) fetch(ctx context.Context, endpoint string, params url.Values) ([]domain.Article, error) {
	reqURL := strings.TrimRight(n.newsConfig.ApiUrl, "/") + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", n.newsConfig.ApiKey)

	payload, err := n.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var resp newsAPIResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		n.logger.ErrorWithFields(err, "Failed to decode NewsAPI response", map[string]interface{}{
			"endpoint": endpoint,
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if resp.Status != "" && resp.Status != "ok" {
		return nil, fmt.Errorf("%w: newsapi %s", domain.ErrUpstream, resp.Message)
	}

	articles := make([]domain.Article, 0, len(resp.Articles))
	for _, item := range resp.Articles {
		articles = append(articles, toArticle(item))
	}
	return articles, nil
}

func toArticle(item newsAPIArticle) domain.Article {
	return domain.Article{
		Title:       item.Title,
		Source:      firstNonEmpty(item.Source.Name, "Unknown"),
		PublishedAt: firstNonEmpty(item.PublishedAt, "Recently"),
		Content:     firstNonEmpty(item.Description, item.Content, "No content available."),
		URL:         item.URL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
