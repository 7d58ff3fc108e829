package mock_generator

import (
	"context"
	"encoding/json"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"strings"
	"time"
)

type mockInsights struct {
	Script    string   `json:"script"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	TLDR      string   `json:"tldr"`
}

// languageModel answers every prompt with a well formed insights object built
// from the first sentence of the article.
type languageModel struct {
	logger outbound.LoggerPort
	delay  time.Duration
}

func NewLanguageModel(logger outbound.LoggerPort, delay time.Duration) outbound.LanguageModelPort {
	return &languageModel{
		logger: logger,
		delay:  delay,
	}
}

func (l *languageModel) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	if err := wait(ctx, l.delay); err != nil {
		return "", err
	}

	lead := firstSentence(req.UserPrompt)
	payload, err := json.Marshal(mockInsights{
		Script:    "[HOST] Welcome to Papercast. Today: " + lead + " [EXPERT] Thanks for having me. " + req.UserPrompt,
		Summary:   req.UserPrompt,
		KeyPoints: []string{lead},
		TLDR:      lead,
	})
	if err != nil {
		return "", err
	}
	l.logger.DebugWithFields("Mock completion", map[string]interface{}{
		"prompt_length": len(req.UserPrompt),
	})
	return string(payload), nil
}

func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return text[:i+1]
	}
	return text
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
