package config

import (
	"fmt"
	"time"
)

const (
	LanguageModelBedrock   = "bedrock"
	LanguageModelGpt       = "gpt"
	LanguageModelAnthropic = "anthropic"
	LanguageModelOpenAI    = "openai"
	LanguageModelMock      = "mock"

	SpeechEnginePolly      = "polly"
	SpeechEngineElevenLabs = "elevenlabs"
	SpeechEngineMock       = "mock"
)

type PipelineConfig struct {
	LanguageModel     string
	SpeechEngine      string
	WorkerPoolSize    int
	MaxSegmentChars   int
	HeadlineLimit     int
	SearchLimit       int
	SummarizeTimeout  time.Duration
	SegmentTimeout    time.Duration
	UploadTimeout     time.Duration
	StoreTimeout      time.Duration
	GenerationTimeout time.Duration
}

func GetPipelineConfig(useRealAws bool) (*PipelineConfig, error) {
	languageModel, speechEngine := LanguageModelMock, SpeechEngineMock
	if useRealAws {
		languageModel, speechEngine = LanguageModelBedrock, SpeechEnginePolly
	}

	cfg := &PipelineConfig{
		LanguageModel: getEnvOrDefault("LANGUAGE_MODEL_PROVIDER", languageModel),
		SpeechEngine:  getEnvOrDefault("SPEECH_ENGINE", speechEngine),
	}

	ints := []struct {
		key      string
		fallback int
		target   *int
	}{
		{"WORKER_POOL_SIZE", 50, &cfg.WorkerPoolSize},
		{"MAX_SEGMENT_CHARS", 3000, &cfg.MaxSegmentChars},
		{"HEADLINE_LIMIT", 5, &cfg.HeadlineLimit},
		{"SEARCH_LIMIT", 10, &cfg.SearchLimit},
	}
	for _, item := range ints {
		value, err := getEnvInt(item.key, item.fallback)
		if err != nil {
			return nil, err
		}
		if value <= 0 {
			return nil, fmt.Errorf("%s must be positive", item.key)
		}
		*item.target = value
	}

	durations := []struct {
		key      string
		fallback time.Duration
		target   *time.Duration
	}{
		{"SUMMARIZE_TIMEOUT", 60 * time.Second, &cfg.SummarizeTimeout},
		{"SEGMENT_TIMEOUT", 30 * time.Second, &cfg.SegmentTimeout},
		{"UPLOAD_TIMEOUT", 30 * time.Second, &cfg.UploadTimeout},
		{"STORE_TIMEOUT", 5 * time.Second, &cfg.StoreTimeout},
		{"GENERATION_TIMEOUT", 5 * time.Minute, &cfg.GenerationTimeout},
	}
	for _, item := range durations {
		value, err := getEnvDuration(item.key, item.fallback)
		if err != nil {
			return nil, err
		}
		*item.target = value
	}

	return cfg, nil
}
