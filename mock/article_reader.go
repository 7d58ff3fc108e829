package mock_generator

import (
	_ "embed"
	"encoding/json"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"os"
)

//go:embed mock_news.json
var embeddedNews []byte

type ArticleReader interface {
	Read() ([]MockArticle, error)
}

// fileArticleReader reads canned articles from fileName, or from the built-in
// set when fileName is empty.
type fileArticleReader struct {
	logger   outbound.LoggerPort
	fileName string
}

func NewFileArticleReader(logger outbound.LoggerPort, fileName string) ArticleReader {
	return &fileArticleReader{
		logger:   logger,
		fileName: fileName,
	}
}

func (f *fileArticleReader) Read() ([]MockArticle, error) {
	payload := embeddedNews
	if f.fileName != "" {
		content, err := os.ReadFile(f.fileName)
		if err != nil {
			f.logger.ErrorWithFields(err, "failed to read mock articles", map[string]interface{}{
				"file": f.fileName,
			})
			return nil, err
		}
		payload = content
	}

	var articles []MockArticle
	if err := json.Unmarshal(payload, &articles); err != nil {
		f.logger.Error(err, "failed to decode mock articles")
		return nil, err
	}
	return articles, nil
}
