// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// DeleteOldJobs removes sent and failed jobs processed before now minus olderThan.
	DeleteOldJobs(ctx context.Context, olderThan time.Duration) (int64, error)
}
