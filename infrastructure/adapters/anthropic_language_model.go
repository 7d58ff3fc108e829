package adapters

import (
	"context"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicLanguageModel struct {
	logger    outbound.LoggerPort
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewAnthropicLanguageModel(logger outbound.LoggerPort, cfg *config.AnthropicConfig, opts ...option.RequestOption) outbound.LanguageModelPort {
	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(cfg.ApiKey)}, opts...)...)
	return &anthropicLanguageModel{
		logger:    logger,
		client:    &client,
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
	}
}

func (a *anthropicLanguageModel) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	})
	if err != nil {
		a.logger.ErrorWithFields(err, "Anthropic completion failed", map[string]interface{}{
			"model": a.model,
		})
		return "", fmt.Errorf("%w: anthropic API error: %w", domain.ErrUpstream, err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: no response from anthropic", domain.ErrMalformedResponse)
	}
	return resp.Content[0].Text, nil
}
