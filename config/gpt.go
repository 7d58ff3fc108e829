package config

import (
	"fmt"
	"os"
)

// GptConfig targets any OpenAI compatible chat completions endpoint that
// streams server-sent events.
type GptConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetGptConfig() (*GptConfig, error) {
	apiKey := os.Getenv("GPT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GPT_API_KEY must be set")
	}
	return &GptConfig{
		ApiUrl: getEnvOrDefault("GPT_API_URL", "https://api.openai.com/v1/chat/completions"),
		ApiKey: apiKey,
		Model:  getEnvOrDefault("GPT_MODEL", "gpt-4o-mini"),
	}, nil
}
