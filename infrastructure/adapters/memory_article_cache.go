package adapters

import (
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"sync"
)

// memoryArticleCache holds discovered articles for the process lifetime.
// It never evicts.
type memoryArticleCache struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
}

func NewMemoryArticleCache() outbound.ArticleCachePort {
	return &memoryArticleCache{
		articles: make(map[string]domain.Article),
	}
}

func (c *memoryArticleCache) Put(article domain.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles[article.ID] = article
}

func (c *memoryArticleCache) Get(id string) (domain.Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	article, ok := c.articles[id]
	return article, ok
}

func (c *memoryArticleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.articles)
}
