package config

import (
	"fmt"
	"os"
)

type OpenAIConfig struct {
	ApiKey  string
	BaseUrl string
	Model   string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	return &OpenAIConfig{
		ApiKey:  apiKey,
		BaseUrl: os.Getenv("OPENAI_BASE_URL"),
		Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
	}, nil
}
