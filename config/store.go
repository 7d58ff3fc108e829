package config

import (
	"fmt"
	"os"
)

const (
	StoreBackendDynamo = "dynamo"
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
)

type StoreConfig struct {
	Backend  string
	FilePath string
	RedisUrl string
}

// GetStoreConfig defaults to DynamoDB when real AWS is enabled and to the
// local JSON file otherwise.
func GetStoreConfig(useRealAws bool) (*StoreConfig, error) {
	fallback := StoreBackendFile
	if useRealAws {
		fallback = StoreBackendDynamo
	}
	backend := getEnvOrDefault("STORE_BACKEND", fallback)

	cfg := &StoreConfig{
		Backend:  backend,
		FilePath: getEnvOrDefault("LOCAL_CACHE_FILE", "backend/local_cache.json"),
		RedisUrl: os.Getenv("REDIS_URL"),
	}

	switch backend {
	case StoreBackendDynamo, StoreBackendFile:
	case StoreBackendRedis:
		if cfg.RedisUrl == "" {
			return nil, fmt.Errorf("REDIS_URL must be set")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
	return cfg, nil
}
