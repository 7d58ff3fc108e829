package config

type PollyConfig struct {
	HostVoice    string
	ExpertVoice  string
	LanguageCode string
}

func GetPollyConfig() (*PollyConfig, error) {
	return &PollyConfig{
		HostVoice:    getEnvOrDefault("POLLY_HOST_VOICE", "Matthew"),
		ExpertVoice:  getEnvOrDefault("POLLY_EXPERT_VOICE", "Joanna"),
		LanguageCode: getEnvOrDefault("POLLY_LANGUAGE_CODE", "en-US"),
	}, nil
}
