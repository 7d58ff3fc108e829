package config

import (
	"fmt"
	"os"
	"time"
)

type S3Config struct {
	BucketName string
	Region     string
	PresignTTL time.Duration
}

func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("S3_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME must be set")
	}

	presignTTL, err := getEnvDuration("S3_PRESIGN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     getEnvOrDefault("AWS_REGION", "us-east-1"),
		PresignTTL: presignTTL,
	}, nil
}
