package adapters

import (
	"context"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

const dynamoKeyAttribute = "ArticleID"

type dynamoPodcastStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
}

func NewDynamoPodcastStore(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI, dynamoConfig *config.DynamoConfig) outbound.PodcastStorePort {
	return &dynamoPodcastStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (s *dynamoPodcastStore) key(articleID string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		dynamoKeyAttribute: {S: aws.String(articleID)},
	}
}

func (s *dynamoPodcastStore) Get(ctx context.Context, articleID string) (*domain.PodcastRecord, error) {
	out, err := s.dynamoSvc.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.TableName),
		Key:       s.key(articleID),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to get podcast item", map[string]interface{}{
			"article_id": articleID,
		})
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("podcast %s: %w", articleID, domain.ErrNotFound)
	}

	var item podcastDocument
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal podcast item", map[string]interface{}{
			"article_id": articleID,
		})
		return nil, fmt.Errorf("podcast %s undecodable: %w", articleID, domain.ErrNotFound)
	}

	record := item.toRecord(articleID)
	return &record, nil
}

func (s *dynamoPodcastStore) Put(ctx context.Context, articleID string, record domain.PodcastRecord) error {
	item := toPodcastDocument(articleID, record)
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal podcast item", map[string]interface{}{
			"article_id": articleID,
		})
		return err
	}

	_, err = s.dynamoSvc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.TableName),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to save podcast item", map[string]interface{}{
			"article_id": articleID,
		})
		return err
	}

	return nil
}

func (s *dynamoPodcastStore) Scan(ctx context.Context, predicate outbound.RecordPredicate) ([]domain.PodcastRecord, error) {
	records := make([]domain.PodcastRecord, 0)
	var decodeErr error

	err := s.dynamoSvc.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.dynamoConfig.TableName),
	}, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		for _, raw := range page.Items {
			var item podcastDocument
			if err := dynamodbattribute.UnmarshalMap(raw, &item); err != nil {
				decodeErr = err
				continue
			}
			record := item.toRecord(item.ArticleID)
			if matches(predicate, record) {
				records = append(records, record)
			}
		}
		return true
	})
	if err != nil {
		s.logger.Error(err, "Failed to scan podcast table")
		return nil, err
	}
	if decodeErr != nil {
		s.logger.Warn("Skipped undecodable podcast items during scan: " + decodeErr.Error())
	}

	return records, nil
}

func (s *dynamoPodcastStore) Delete(ctx context.Context, articleID string) error {
	_, err := s.dynamoSvc.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.dynamoConfig.TableName),
		Key:       s.key(articleID),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to delete podcast item", map[string]interface{}{
			"article_id": articleID,
		})
	}
	return err
}
