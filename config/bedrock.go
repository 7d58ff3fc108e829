package config

type BedrockConfig struct {
	ModelId     string
	MaxTokens   int
	Temperature float64
}

func GetBedrockConfig() (*BedrockConfig, error) {
	maxTokens, err := getEnvInt("BEDROCK_MAX_TOKENS", 2048)
	if err != nil {
		return nil, err
	}
	temperature, err := getEnvFloat("BEDROCK_TEMPERATURE", 0.7)
	if err != nil {
		return nil, err
	}

	return &BedrockConfig{
		ModelId:     getEnvOrDefault("BEDROCK_MODEL_ID", "amazon.nova-micro-v1:0"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}, nil
}
