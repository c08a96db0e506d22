package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/gateway/internal/application/adapter"
)

// AlertRetention covers the rest of the alerted month plus a margin.
const AlertRetention = 40 * 24 * time.Hour

// redisAlertLedger implements the adapter.AlertLedger interface with SETNX.
type redisAlertLedger struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAlertLedger creates an alert ledger stored in Redis.
func NewRedisAlertLedger(client *redis.Client) adapter.AlertLedger {
	return &redisAlertLedger{
		client: client,
		ttl:    AlertRetention,
	}
}

// Claim reports whether this call was the first to record key.
func (l *redisAlertLedger) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim alert: %w", err)
	}
	return ok, nil
}

// memoryAlertLedger is used when no Redis server is configured. Claims are
// lost on restart.
type memoryAlertLedger struct {
	mu      sync.Mutex
	claimed map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryAlertLedger creates a process-local alert ledger.
func NewMemoryAlertLedger() adapter.AlertLedger {
	return &memoryAlertLedger{
		claimed: make(map[string]time.Time),
		ttl:     AlertRetention,
		now:     time.Now,
	}
}

// Claim reports whether this call was the first to record key.
func (l *memoryAlertLedger) Claim(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, at := range l.claimed {
		if now.Sub(at) > l.ttl {
			delete(l.claimed, k)
		}
	}

	if _, exists := l.claimed[key]; exists {
		return false, nil
	}
	l.claimed[key] = now
	return true, nil
}
