package config

import "time"

type NewsConfig struct {
	ApiKey            string
	ApiUrl            string
	Country           string
	RssFeeds          []string
	RefreshSchedule   string
	RefreshCategories []string
	RequestTimeout    time.Duration
}

// GetNewsConfig never fails on a missing NEWS_API_KEY; discovery then relies
// on RSS feeds and the canned fallback articles.
func GetNewsConfig() (*NewsConfig, error) {
	requestTimeout, err := getEnvDuration("NEWS_REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &NewsConfig{
		ApiKey:            getEnvOrDefault("NEWS_API_KEY", ""),
		ApiUrl:            getEnvOrDefault("NEWS_API_URL", "https://newsapi.org/v2"),
		Country:           getEnvOrDefault("NEWS_COUNTRY", "us"),
		RssFeeds:          getEnvList("RSS_FEEDS", nil),
		RefreshSchedule:   getEnvOrDefault("HEADLINE_REFRESH_SCHEDULE", ""),
		RefreshCategories: getEnvList("HEADLINE_REFRESH_CATEGORIES", []string{"general", "technology", "business"}),
		RequestTimeout:    requestTimeout,
	}, nil
}
