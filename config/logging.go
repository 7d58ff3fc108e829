package config

import "fmt"

const (
	LogFormatAuto    = "auto"
	LogFormatJson    = "json"
	LogFormatConsole = "console"
)

type LoggingConfig struct {
	Level  string
	Format string
}

func GetLoggingConfig() (*LoggingConfig, error) {
	format := getEnvOrDefault("LOG_FORMAT", LogFormatAuto)
	if format != LogFormatAuto && format != LogFormatJson && format != LogFormatConsole {
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", format)
	}
	return &LoggingConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: format,
	}, nil
}
