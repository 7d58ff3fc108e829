package adapters

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Tech Wire</title>
	<link>https://example.com</link>
	<description>Technology news</description>
	<item>
		<title>Chips get smaller</title>
		<link>https://example.com/chips</link>
		<description>A new process node.</description>
		<pubDate>Fri, 01 Mar 2024 10:00:00 GMT</pubDate>
	</item>
	<item>
		<title>Quiet day</title>
		<link>https://example.com/quiet</link>
	</item>
	<item>
		<title>Third story</title>
		<link>https://example.com/third</link>
		<description>More.</description>
	</item>
</channel>
</rss>`

func TestRssHeadlineSource_Headlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer server.Close()
	source := NewRssHeadlineSource(newTestLogger(), server.URL+"/feed.xml")

	articles, err := source.Headlines(context.Background(), outbound.HeadlinesRequest{Category: "technology", Limit: 2})

	assert.Equal(t, nil, err)
	assert.Equal(t, "rss:"+server.URL+"/feed.xml", source.Name())
	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "Chips get smaller", articles[0].Title)
	assert.Equal(t, "Tech Wire", articles[0].Source)
	assert.Equal(t, "technology", articles[0].Category)
	assert.Equal(t, "2024-03-01T10:00:00Z", articles[0].PublishedAt)
	assert.Equal(t, "https://example.com/chips", articles[0].URL)
	assert.Equal(t, "Recently", articles[1].PublishedAt)
	assert.Equal(t, "No content available.", articles[1].Content)
}

func TestRssHeadlineSource_UnreachableFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	source := NewRssHeadlineSource(newTestLogger(), server.URL)

	_, err := source.Headlines(context.Background(), outbound.HeadlinesRequest{Category: "general", Limit: 5})

	assert.NotEqual(t, nil, err)
}
