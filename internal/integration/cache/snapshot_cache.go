// Package cache implements the snapshot cache and alert ledger on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

const snapshotKeyPrefix = "snapshot:"

// redisSnapshotCache implements the adapter.SnapshotCache interface.
type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotCache creates a snapshot cache whose entries expire after ttl.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) adapter.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(userID string) string {
	return snapshotKeyPrefix + userID
}

// Get returns the cached snapshot of userID or nil when there is none.
func (c *redisSnapshotCache) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	raw, err := c.client.Get(ctx, snapshotKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot entity.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, nil
	}
	return &snapshot, nil
}

// Set stores the snapshot of userID.
func (c *redisSnapshotCache) Set(ctx context.Context, userID string, snapshot *entity.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot of userID.
func (c *redisSnapshotCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, snapshotKey(userID)).Err()
}
