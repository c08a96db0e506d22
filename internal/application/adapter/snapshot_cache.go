// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// SnapshotCache defines the interface for caching per-user snapshots.
type SnapshotCache interface {
	// Get returns the cached snapshot for userID, or nil on a miss.
	Get(ctx context.Context, userID string) (*entity.Snapshot, error)

	// Set stores a snapshot for userID.
	Set(ctx context.Context, userID string, snapshot *entity.Snapshot) error

	// Invalidate drops the snapshot of userID.
	Invalidate(ctx context.Context, userID string) error
}

// AlertLedger records which budget alerts were already raised.
type AlertLedger interface {
	// Claim marks key as alerted and reports whether this call was the first to do so.
	Claim(ctx context.Context, key string) (bool, error)
}

// SnapshotLoader provides consistent per-user snapshots to read use cases and
// lets write use cases drop stale ones.
type SnapshotLoader interface {
	// Execute returns the snapshot for the session owner.
	Execute(ctx context.Context, session entity.Session) (*entity.Snapshot, error)

	// Invalidate drops any cached snapshot of userID.
	Invalidate(ctx context.Context, userID string)
}
