package config

import "time"

// MockConfig tunes the offline stand-ins. Delay applies to every mock
// language model and speech call.
type MockConfig struct {
	ArticlesFile string
	Delay        time.Duration
}

func GetMockConfig() (*MockConfig, error) {
	delay, err := getEnvDuration("MOCK_DELAY", 0)
	if err != nil {
		return nil, err
	}
	return &MockConfig{
		ArticlesFile: getEnvOrDefault("MOCK_ARTICLES_FILE", ""),
		Delay:        delay,
	}, nil
}
