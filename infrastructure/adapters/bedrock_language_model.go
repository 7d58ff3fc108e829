package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"strings"
)

type novaText struct {
	Text string `json:"text"`
}

type novaMessage struct {
	Role    string     `json:"role"`
	Content []novaText `json:"content"`
}

type novaInferenceConfig struct {
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

type novaRequest struct {
	SchemaVersion   string              `json:"schemaVersion"`
	System          []novaText          `json:"system,omitempty"`
	Messages        []novaMessage       `json:"messages"`
	InferenceConfig novaInferenceConfig `json:"inferenceConfig"`
}

type novaResponse struct {
	Output struct {
		Message novaMessage `json:"message"`
	} `json:"output"`
}

// bedrockLanguageModel speaks the Amazon Nova messages schema through the
// Bedrock runtime InvokeModel API.
type bedrockLanguageModel struct {
	logger        outbound.LoggerPort
	bedrockSvc    *bedrockruntime.BedrockRuntime
	bedrockConfig *config.BedrockConfig
}

func NewBedrockLanguageModel(logger outbound.LoggerPort, bedrockSvc *bedrockruntime.BedrockRuntime, bedrockConfig *config.BedrockConfig) outbound.LanguageModelPort {
	return &bedrockLanguageModel{
		logger:        logger,
		bedrockSvc:    bedrockSvc,
		bedrockConfig: bedrockConfig,
	}
}

func (b *bedrockLanguageModel) Complete(ctx context.Context, req outbound.CompletionRequest) (string, error) {
	body, err := json.Marshal(novaRequest{
		SchemaVersion: "messages-v1",
		System:        []novaText{{Text: req.SystemPrompt}},
		Messages: []novaMessage{
			{Role: "user", Content: []novaText{{Text: req.UserPrompt}}},
		},
		InferenceConfig: novaInferenceConfig{
			MaxTokens:   b.bedrockConfig.MaxTokens,
			Temperature: b.bedrockConfig.Temperature,
		},
	})
	if err != nil {
		return "", err
	}

	out, err := b.bedrockSvc.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.bedrockConfig.ModelId),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		b.logger.ErrorWithFields(err, "Bedrock invocation failed", map[string]interface{}{
			"model": b.bedrockConfig.ModelId,
		})
		return "", fmt.Errorf("%w: bedrock invoke: %w", domain.ErrUpstream, err)
	}

	var resp novaResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		b.logger.Error(err, "Failed to decode bedrock response")
		return "", fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	parts := make([]string, 0, len(resp.Output.Message.Content))
	for _, content := range resp.Output.Message.Content {
		parts = append(parts, content.Text)
	}
	text := strings.Join(parts, "")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty bedrock completion", domain.ErrMalformedResponse)
	}
	return text, nil
}
