package services

import (
	"context"
	"github.com/Tejasai37/papercast/application/ports/inbound"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"time"
	"unicode/utf8"
)

const (
	fallbackScriptRunes  = 200
	fallbackSummaryRunes = 500
	maxInputRunes        = 12000

	FallbackKeyPoint = "Summary generation failed"
	FallbackTLDR     = "Summary unavailable."
)

const summarizerSystemPrompt = `You turn news articles into a short two-person audio podcast.
Respond with a single JSON object and nothing else. The object must have exactly these four keys:
- "script": the full dialogue as one string. Every utterance starts with a speaker marker, either [HOST] or [EXPERT]. The host introduces the story and asks questions, the expert explains. Keep it under 300 words.
- "summary": a neutral paragraph summarizing the article.
- "key_points": an array of three to five short strings.
- "tldr": one sentence.
Example: {"script": "[HOST] Welcome back. [EXPERT] Thanks for having me.", "summary": "...", "key_points": ["..."], "tldr": "..."}`

type insightSummarizer struct {
	logger        outbound.LoggerPort
	languageModel outbound.LanguageModelPort
	timeout       time.Duration
}

func NewInsightSummarizer(logger outbound.LoggerPort, languageModel outbound.LanguageModelPort, timeout time.Duration) inbound.InsightSummarizerPort {
	return &insightSummarizer{
		logger:        logger,
		languageModel: languageModel,
		timeout:       timeout,
	}
}

func (s *insightSummarizer) Summarize(ctx context.Context, text string) domain.Insights {
	newCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := s.languageModel.Complete(newCtx, outbound.CompletionRequest{
		SystemPrompt: summarizerSystemPrompt,
		UserPrompt:   truncateRunes(text, maxInputRunes),
	})
	if err != nil {
		s.logger.WarnWithFields("Language model call failed, using fallback insights", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackInsights(text)
	}

	insights, err := repairInsights(response)
	if err != nil {
		s.logger.WarnWithFields("Unrepairable language model response, using fallback insights", map[string]interface{}{
			"error":           err.Error(),
			"response_length": len(response),
		})
		return FallbackInsights(text)
	}

	s.logger.DebugWithFields("Insights generated", map[string]interface{}{
		"script_length": len(insights.Script),
		"key_points":    len(insights.KeyPoints),
	})
	return insights
}

// FallbackInsights is built from the input alone and cannot fail.
func FallbackInsights(text string) domain.Insights {
	return domain.Insights{
		Script:    truncateRunes(text, fallbackScriptRunes),
		Summary:   truncateRunes(text, fallbackSummaryRunes),
		KeyPoints: []string{FallbackKeyPoint},
		TLDR:      FallbackTLDR,
	}
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
