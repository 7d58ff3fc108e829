package config

import "time"

type ServerConfig struct {
	Port              string
	AllowedOrigins    []string
	HeartbeatInterval time.Duration
}

func GetServerConfig() (*ServerConfig, error) {
	heartbeat, err := getEnvDuration("SSE_HEARTBEAT_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, err
	}

	return &ServerConfig{
		Port:              getEnvOrDefault("PORT", "8000"),
		AllowedOrigins:    getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:8000"}),
		HeartbeatInterval: heartbeat,
	}, nil
}
