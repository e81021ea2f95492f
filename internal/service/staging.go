package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evalhub/qbank-ingest/internal/config"
)

// RedisStagingStore holds staged batches in Redis under their
// confirmation token. The TTL bounds how long a reviewer can sit on a
// preview; abandoned batches expire without cleanup jobs.
type RedisStagingStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStagingStore creates a Redis-backed staging store.
func NewRedisStagingStore(rdb *redis.Client, ttl time.Duration) *RedisStagingStore {
	return &RedisStagingStore{rdb: rdb, ttl: ttl}
}

// Put stores a staged batch under its token with the configured TTL.
func (s *RedisStagingStore) Put(ctx context.Context, batch *StagedBatch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal staged batch: %w", err)
	}
	return s.rdb.Set(ctx, config.StagingKey.ImportBatchKey(batch.Token), data, s.ttl).Err()
}

// Get loads a staged batch by token. Unknown or expired tokens return
// ErrBatchNotFound.
func (s *RedisStagingStore) Get(ctx context.Context, token string) (*StagedBatch, error) {
	data, err := s.rdb.Get(ctx, config.StagingKey.ImportBatchKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBatchNotFound
	}
	if err != nil {
		return nil, err
	}

	var batch StagedBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("unmarshal staged batch: %w", err)
	}
	return &batch, nil
}

// Delete removes a staged batch after commit.
func (s *RedisStagingStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, config.StagingKey.ImportBatchKey(token)).Err()
}
