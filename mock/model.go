package mock_generator

// MockArticle is one canned headline. Delay simulates a slow upstream.
type MockArticle struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	PublishedAt string `json:"time"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Delay       int    `json:"delay"`
}
