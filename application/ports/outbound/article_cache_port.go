package outbound

import "github.com/Tejasai37/papercast/domain"

type ArticleCachePort interface {
	Put(article domain.Article)
	Get(id string) (domain.Article, bool)
	Len() int
}
