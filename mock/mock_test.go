package mock_generator

import (
	"context"
	"encoding/json"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) InfoWithFields(string, map[string]interface{}) {}
func (nopLogger) Error(error, string) {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string) {}
func (nopLogger) DebugWithFields(string, map[string]interface{}) {}
func (nopLogger) Warn(string) {}
func (nopLogger) WarnWithFields(string, map[string]interface{}) {}

func TestHeadlineSource_EmbeddedArticlesCategoryFirst(t *testing.T) {
	adapters := Init(nopLogger{}, "", 0)

	articles, err := adapters.Headlines.Headlines(context.Background(), outbound.HeadlinesRequest{Category: "business", Limit: 5})

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(articles))
	assert.Equal(t, "Global Markets Rally on Tech Earnings", articles[0].Title)
	assert.Equal(t, "Bloomberg", articles[0].Source)
	assert.Equal(t, "DeepMind's New AI Coding Agent", articles[1].Title)
	assert.Equal(t, "mock", adapters.Headlines.Name())
}

func TestHeadlineSource_LimitAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	err := os.WriteFile(path, []byte(`[{"title":"A","category":"general","description":"x"},{"title":"B","description":"Only description."}]`), 0o644)
	assert.Equal(t, nil, err)
	source := NewHeadlineSource(nopLogger{}, NewFileArticleReader(nopLogger{}, path))

	articles, err := source.Headlines(context.Background(), outbound.HeadlinesRequest{Category: "general", Limit: 1})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "A", articles[0].Title)

	all, err := source.Headlines(context.Background(), outbound.HeadlinesRequest{Category: "other"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "Only description.", all[1].Content)
}

func TestHeadlineSource_MissingFile(t *testing.T) {
	source := NewHeadlineSource(nopLogger{}, NewFileArticleReader(nopLogger{}, filepath.Join(t.TempDir(), "absent.json")))

	_, err := source.Headlines(context.Background(), outbound.HeadlinesRequest{Category: "general"})

	assert.NotEqual(t, nil, err)
}

func TestLanguageModel_ReturnsInsightsJson(t *testing.T) {
	model := NewLanguageModel(nopLogger{}, 0)

	response, err := model.Complete(context.Background(), outbound.CompletionRequest{
		SystemPrompt: "system",
		UserPrompt:   "Chips get smaller. Foundries race ahead.",
	})

	assert.Equal(t, nil, err)
	var insights domain.Insights
	assert.Equal(t, nil, json.Unmarshal([]byte(response), &insights))
	assert.Equal(t, "Chips get smaller.", insights.TLDR)
	assert.Equal(t, true, strings.HasPrefix(insights.Script, "[HOST] "))
	assert.Equal(t, true, strings.Contains(insights.Script, "[EXPERT] "))
}

func TestLanguageModel_DelayHonorsCancellation(t *testing.T) {
	model := NewLanguageModel(nopLogger{}, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := model.Complete(ctx, outbound.CompletionRequest{UserPrompt: "x"})

	assert.Equal(t, context.Canceled, err)
}

func TestSpeechEngine_TagsSpeakerAndQuality(t *testing.T) {
	engine := NewSpeechEngine(nopLogger{}, time.Millisecond)

	audio, err := engine.Generate(context.Background(), outbound.GenerateAudioRequest{
		Text:    "Welcome.",
		Speaker: domain.HostSpeaker,
		Quality: domain.HighQuality,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "[host/high] Welcome.\n", string(audio))
}
