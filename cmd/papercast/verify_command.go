package main

import (
	"context"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/infrastructure/adapters"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/spf13/cobra"
	"time"
)

const verifyTimeout = 20 * time.Second

type verifyCheck struct {
	name string
	run  func(ctx context.Context) (string, error)
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check access to the configured AWS resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap()
			if err != nil {
				return err
			}
			defer app.Close()

			checks, err := awsChecks(app)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(checks))
			failures := 0
			for _, check := range checks {
				ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
				detail, err := check.run(ctx)
				cancel()
				status := "ok"
				if err != nil {
					status = "failed"
					detail = err.Error()
					failures++
				}
				rows = append(rows, []string{check.name, status, detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			if failures > 0 {
				return fmt.Errorf("%d of %d checks failed", failures, len(checks))
			}
			return nil
		},
	}
}

func awsChecks(app *application) ([]verifyCheck, error) {
	s3Config, err := config.GetS3Config()
	if err != nil {
		return nil, err
	}
	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		return nil, err
	}
	pollyConfig, err := config.GetPollyConfig()
	if err != nil {
		return nil, err
	}
	bedrockConfig, err := config.GetBedrockConfig()
	if err != nil {
		return nil, err
	}

	s3Svc := s3.New(app.session)
	dynamoSvc := dynamodb.New(app.session)
	pollySvc := polly.New(app.session)
	bedrockModel := adapters.NewBedrockLanguageModel(app.logger, bedrockruntime.New(app.session), bedrockConfig)

	return []verifyCheck{
		{
			name: "s3 bucket " + s3Config.BucketName,
			run: func(ctx context.Context) (string, error) {
				_, err := s3Svc.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(s3Config.BucketName)})
				return "reachable", err
			},
		},
		{
			name: "dynamodb table " + dynamoConfig.TableName,
			run: func(ctx context.Context) (string, error) {
				out, err := dynamoSvc.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(dynamoConfig.TableName)})
				if err != nil {
					return "", err
				}
				return aws.StringValue(out.Table.TableStatus), nil
			},
		},
		{
			name: "polly neural voices",
			run: func(ctx context.Context) (string, error) {
				out, err := pollySvc.DescribeVoicesWithContext(ctx, &polly.DescribeVoicesInput{
					Engine:       aws.String(polly.EngineNeural),
					LanguageCode: aws.String(pollyConfig.LanguageCode),
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%d voices for %s", len(out.Voices), pollyConfig.LanguageCode), nil
			},
		},
		{
			name: "bedrock " + bedrockConfig.ModelId,
			run: func(ctx context.Context) (string, error) {
				reply, err := bedrockModel.Complete(ctx, outbound.CompletionRequest{
					SystemPrompt: "Reply with one word.",
					UserPrompt:   "hi",
				})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("replied with %d chars", len(reply)), nil
			},
		},
	}, nil
}
