package adapters

import (
	"context"
	"errors"
	"github.com/Tejasai37/papercast/config"
	"github.com/Tejasai37/papercast/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

// fakeDynamo implements the calls the podcast store makes; everything else
// panics through the embedded nil interface.
type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	table  string
	items  map[string]map[string]*dynamodb.AttributeValue
	getErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]*dynamodb.AttributeValue{}}
}

func (f *fakeDynamo) GetItemWithContext(_ aws.Context, input *dynamodb.GetItemInput, _ ...request.Option) (*dynamodb.GetItemOutput, error) {
	f.table = aws.StringValue(input.TableName)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[aws.StringValue(input.Key["ArticleID"].S)]}, nil
}

func (f *fakeDynamo) PutItemWithContext(_ aws.Context, input *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	f.table = aws.StringValue(input.TableName)
	f.items[aws.StringValue(input.Item["ArticleID"].S)] = input.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItemWithContext(_ aws.Context, input *dynamodb.DeleteItemInput, _ ...request.Option) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, aws.StringValue(input.Key["ArticleID"].S))
	return &dynamodb.DeleteItemOutput{}, nil
}

// ScanPagesWithContext serves one item per page.
func (f *fakeDynamo) ScanPagesWithContext(_ aws.Context, _ *dynamodb.ScanInput, fn func(*dynamodb.ScanOutput, bool) bool, _ ...request.Option) error {
	pages := make([]*dynamodb.ScanOutput, 0, len(f.items))
	for _, item := range f.items {
		pages = append(pages, &dynamodb.ScanOutput{Items: []map[string]*dynamodb.AttributeValue{item}})
	}
	for i, page := range pages {
		if !fn(page, i == len(pages)-1) {
			break
		}
	}
	return nil
}

func newTestDynamoStore(client *fakeDynamo) *dynamoPodcastStore {
	return NewDynamoPodcastStore(newTestLogger(), client, &config.DynamoConfig{TableName: "PapercastCache"}).(*dynamoPodcastStore)
}

func TestDynamoPodcastStore_RoundTrip(t *testing.T) {
	client := newFakeDynamo()
	store := newTestDynamoStore(client)
	ctx := context.Background()

	_, err := store.Get(ctx, "general-abc")
	assert.Equal(t, true, errors.Is(err, domain.ErrNotFound))

	assert.Equal(t, nil, store.Put(ctx, "general-abc", completedRecord("general-abc", "alice", time.Now())))
	assert.Equal(t, "PapercastCache", client.table)
	assert.Equal(t, "completed", aws.StringValue(client.items["general-abc"]["status"].S))

	record, err := store.Get(ctx, "general-abc")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, record.IsComplete())
	assert.Equal(t, []string{"one", "two"}, record.KeyPoints)
}

func TestDynamoPodcastStore_LegacyItemDefaults(t *testing.T) {
	client := newFakeDynamo()
	client.items["news-1"] = map[string]*dynamodb.AttributeValue{
		"ArticleID": {S: aws.String("news-1")},
		"audio_url": {S: aws.String("https://bucket.s3.amazonaws.com/news-1.wav")},
		"status":    {S: aws.String("completed")},
	}
	store := newTestDynamoStore(client)

	record, err := store.Get(context.Background(), "news-1")

	assert.Equal(t, nil, err)
	assert.Equal(t, true, record.IsComplete())
	assert.Equal(t, 0, len(record.KeyPoints))
}

func TestDynamoPodcastStore_UndecodableItemIsNotFound(t *testing.T) {
	client := newFakeDynamo()
	client.items["bad"] = map[string]*dynamodb.AttributeValue{
		"ArticleID":  {S: aws.String("bad")},
		"created_at": {S: aws.String("yesterday")},
	}
	store := newTestDynamoStore(client)

	_, err := store.Get(context.Background(), "bad")

	assert.Equal(t, true, errors.Is(err, domain.ErrNotFound))
}

func TestDynamoPodcastStore_ReadErrorPropagates(t *testing.T) {
	client := newFakeDynamo()
	client.getErr = errors.New("throttled")
	store := newTestDynamoStore(client)

	_, err := store.Get(context.Background(), "a")

	assert.Equal(t, false, errors.Is(err, domain.ErrNotFound))
}

func TestDynamoPodcastStore_ScanAndDelete(t *testing.T) {
	client := newFakeDynamo()
	store := newTestDynamoStore(client)
	ctx := context.Background()
	assert.Equal(t, nil, store.Put(ctx, "a", completedRecord("a", "alice", time.Now())))
	assert.Equal(t, nil, store.Put(ctx, "b", completedRecord("b", "bob", time.Now())))
	assert.Equal(t, nil, store.Put(ctx, "c", completedRecord("c", "alice", time.Now())))

	records, err := store.Scan(ctx, func(record domain.PodcastRecord) bool {
		return record.UserID == "alice"
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(records))

	assert.Equal(t, nil, store.Delete(ctx, "a"))
	all, _ := store.Scan(ctx, nil)
	assert.Equal(t, 2, len(all))
}
