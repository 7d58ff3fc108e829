package adapters

import (
	"context"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAILanguageModel struct {
	logger outbound.LoggerPort
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAILanguageModel(logger outbound.LoggerPort, cfg *config.OpenAIConfig, opts ...option.RequestOption) outbound.LanguageModelPort {
	base := []option.RequestOption{option.WithAPIKey(cfg.ApiKey)}
	if cfg.BaseUrl != "" {
		base = append(base, option.WithBaseURL(cfg.BaseUrl))
	}
	client := openai.NewClient(append(base, opts...)...)
	return &openAILanguageModel{
		logger: logger,
		client: &client,
		model:  cfg.Model,
	}
}

func (o *openAILanguageModel) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
	})
	if err != nil {
		o.logger.ErrorWithFields(err, "OpenAI completion failed", map[string]interface{}{
			"model": o.model,
		})
		return "", fmt.Errorf("%w: openai API error: %w", domain.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from openai", domain.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
