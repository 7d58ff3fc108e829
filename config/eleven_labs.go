package config

import (
	"fmt"
	"os"
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	FallbackModelId string
	HostVoiceId     string
	ExpertVoiceId   string
	Stability       float64
	SimilarityBoost float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	hostVoiceId := os.Getenv("ELEVEN_LABS_HOST_VOICE_ID")
	if hostVoiceId == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_HOST_VOICE_ID must be set")
	}
	expertVoiceId := os.Getenv("ELEVEN_LABS_EXPERT_VOICE_ID")
	if expertVoiceId == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_EXPERT_VOICE_ID must be set")
	}
	stability, err := getEnvFloat("ELEVEN_LABS_STABILITY", 0.5)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse eleven labs stability: %w", err)
	}
	similarityBoost, err := getEnvFloat("ELEVEN_LABS_SIMILARITY_BOOST", 0.75)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse eleven labs similarity boost: %w", err)
	}

	return &ElevenLabsConfig{
		ApiUrl:          getEnvOrDefault("ELEVEN_LABS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		ApiKey:          apiKey,
		ModelId:         getEnvOrDefault("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2"),
		FallbackModelId: getEnvOrDefault("ELEVEN_LABS_FALLBACK_MODEL_ID", "eleven_turbo_v2_5"),
		HostVoiceId:     hostVoiceId,
		ExpertVoiceId:   expertVoiceId,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
	}, nil
}
