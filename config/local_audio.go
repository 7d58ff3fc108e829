package config

type LocalAudioConfig struct {
	Directory string
	UrlPrefix string
}

func GetLocalAudioConfig() (*LocalAudioConfig, error) {
	return &LocalAudioConfig{
		Directory: getEnvOrDefault("LOCAL_AUDIO_DIR", "backend/static/audio_cache"),
		UrlPrefix: getEnvOrDefault("LOCAL_AUDIO_URL_PREFIX", "/static/audio_cache"),
	}, nil
}
