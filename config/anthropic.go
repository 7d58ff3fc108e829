package config

import (
	"fmt"
	"os"
)

type AnthropicConfig struct {
	ApiKey    string
	Model     string
	MaxTokens int
}

func GetAnthropicConfig() (*AnthropicConfig, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY must be set")
	}
	maxTokens, err := getEnvInt("ANTHROPIC_MAX_TOKENS", 2048)
	if err != nil {
		return nil, err
	}
	return &AnthropicConfig{
		ApiKey:    apiKey,
		Model:     getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		MaxTokens: maxTokens,
	}, nil
}
