package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
)

const DefaultOverlayPath = "infrastructure/aws_config.json"

// overlayKeys maps keys written by the provisioning script to the
// environment variables they back.
var overlayKeys = map[string]string{
	"s3_bucket":      "S3_BUCKET_NAME",
	"dynamodb_table": "DYNAMODB_TABLE_NAME",
	"region":         "AWS_REGION",
	"user_pool_id":   "COGNITO_USER_POOL_ID",
	"client_id":      "COGNITO_CLIENT_ID",
	"jwks_url":       "JWKS_URL",
	"news_api_key":   "NEWS_API_KEY",
}

// LoadEnvironment reads an optional .env file, then fills variables that are
// still blank from the overlay file named by PAPERCAST_CONFIG. Values already
// in the environment always win.
func LoadEnvironment(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	path := getEnvOrDefault("PAPERCAST_CONFIG", DefaultOverlayPath)
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config overlay %s: %w", path, err)
	}
	return ApplyOverlay(content)
}

// ApplyOverlay accepts YAML or JSON and sets every known key whose
// environment variable is unset or empty.
func ApplyOverlay(content []byte) error {
	values := map[string]interface{}{}
	if err := yaml.Unmarshal(content, &values); err != nil {
		return fmt.Errorf("parse config overlay: %w", err)
	}

	for key, value := range values {
		envKey, ok := overlayKeys[key]
		if !ok || value == nil || os.Getenv(envKey) != "" {
			continue
		}
		if err := os.Setenv(envKey, fmt.Sprint(value)); err != nil {
			return err
		}
	}
	return nil
}
