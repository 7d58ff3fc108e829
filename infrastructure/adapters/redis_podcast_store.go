package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/redis/go-redis/v9"
	"strings"
	"time"
)

const (
	redisKeyPrefix = "papercast:podcast:"
	redisScanCount = 100
)

// RedisCommands is the subset of the go-redis client the store needs.
type RedisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

type redisPodcastStore struct {
	logger outbound.LoggerPort
	client RedisCommands
}

// NewRedisClient accepts a redis:// URL or a bare host:port address.
func NewRedisClient(redisURL string) *redis.Client {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}
	return redis.NewClient(opt)
}

func NewRedisPodcastStore(logger outbound.LoggerPort, client RedisCommands) outbound.PodcastStorePort {
	return &redisPodcastStore{
		logger: logger,
		client: client,
	}
}

func (s *redisPodcastStore) Get(ctx context.Context, articleID string) (*domain.PodcastRecord, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+articleID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("podcast %s: %w", articleID, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to get podcast from redis", map[string]interface{}{
			"article_id": articleID,
		})
		return nil, err
	}

	var document podcastDocument
	if err := json.Unmarshal(payload, &document); err != nil {
		s.logger.ErrorWithFields(err, "Failed to decode podcast from redis", map[string]interface{}{
			"article_id": articleID,
		})
		return nil, fmt.Errorf("podcast %s undecodable: %w", articleID, domain.ErrNotFound)
	}

	record := document.toRecord(articleID)
	return &record, nil
}

func (s *redisPodcastStore) Put(ctx context.Context, articleID string, record domain.PodcastRecord) error {
	payload, err := json.Marshal(toPodcastDocument(articleID, record))
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKeyPrefix+articleID, payload, 0).Err(); err != nil {
		s.logger.ErrorWithFields(err, "Failed to save podcast to redis", map[string]interface{}{
			"article_id": articleID,
		})
		return err
	}
	return nil
}

func (s *redisPodcastStore) Scan(ctx context.Context, predicate outbound.RecordPredicate) ([]domain.PodcastRecord, error) {
	records := make([]domain.PodcastRecord, 0)
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, redisKeyPrefix+"*", redisScanCount).Result()
		if err != nil {
			s.logger.Error(err, "Failed to scan podcast keys in redis")
			return nil, err
		}
		for _, key := range keys {
			record, err := s.Get(ctx, strings.TrimPrefix(key, redisKeyPrefix))
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if matches(predicate, *record) {
				records = append(records, *record)
			}
		}
		if next == 0 {
			return records, nil
		}
		cursor = next
	}
}

func (s *redisPodcastStore) Delete(ctx context.Context, articleID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+articleID).Err(); err != nil {
		s.logger.ErrorWithFields(err, "Failed to delete podcast from redis", map[string]interface{}{
			"article_id": articleID,
		})
		return err
	}
	return nil
}
