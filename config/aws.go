package config

type AwsConfig struct {
	Region     string
	UseRealAws bool
}

func GetAwsConfig() (*AwsConfig, error) {
	useRealAws, err := getEnvBool("USE_REAL_AWS", false)
	if err != nil {
		return nil, err
	}

	return &AwsConfig{
		Region:     getEnvOrDefault("AWS_REGION", "us-east-1"),
		UseRealAws: useRealAws,
	}, nil
}
