package email

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// MemoryQueue is a bounded process-local email queue used when no database
// is configured. Jobs are lost on restart.
type MemoryQueue struct {
	mu       sync.Mutex
	jobs     map[string]*entity.EmailJob
	capacity int
}

// NewMemoryQueue creates a queue holding at most capacity unfinished jobs.
func NewMemoryQueue(capacity int) *MemoryQueue {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryQueue{
		jobs:     make(map[string]*entity.EmailJob),
		capacity: capacity,
	}
}

// Create adds a job unless the queue is full or already holds its dedupe key.
func (q *MemoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if job.DedupeKey != "" {
		for _, existing := range q.jobs {
			if existing.DedupeKey == job.DedupeKey {
				return domainerror.NewEmailError(
					domainerror.ErrCodeBudgetAlertQueued,
					"budget alert already queued",
					domainerror.ErrBudgetAlertQueued,
				)
			}
		}
	}

	if q.unfinished() >= q.capacity {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFull,
			"email queue is full",
			domainerror.ErrEmailQueueFull,
		)
	}

	stored := *job
	q.jobs[job.ID.String()] = &stored
	return nil
}

// GetPendingJobs returns copies of due pending jobs, earliest first.
func (q *MemoryQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now().UTC()
	var due []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			copied := *job
			due = append(due, &copied)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].ScheduledAt.Before(due[j].ScheduledAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// Update replaces the stored job.
func (q *MemoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	stored := *job
	q.jobs[job.ID.String()] = &stored
	return nil
}

// DeleteOldJobs removes finished jobs processed before the cutoff.
func (q *MemoryQueue) DeleteOldJobs(_ context.Context, olderThan time.Duration) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	var deleted int64
	for id, job := range q.jobs {
		finished := job.Status == entity.EmailStatusSent || job.Status == entity.EmailStatusFailed
		if finished && job.ProcessedAt != nil && job.ProcessedAt.Before(cutoff) {
			delete(q.jobs, id)
			deleted++
		}
	}
	return deleted, nil
}

// Len returns the number of stored jobs.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

func (q *MemoryQueue) unfinished() int {
	n := 0
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending || job.Status == entity.EmailStatusProcessing {
			n++
		}
	}
	return n
}

var _ adapter.EmailQueueRepository = (*MemoryQueue)(nil)
