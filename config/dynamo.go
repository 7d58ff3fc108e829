package config

type DynamoConfig struct {
	TableName string
}

func GetDynamoConfig() (*DynamoConfig, error) {
	return &DynamoConfig{
		TableName: getEnvOrDefault("DYNAMODB_TABLE_NAME", "PapercastCache"),
	}, nil
}
