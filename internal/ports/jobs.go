package ports

import (
	"context"
	"encoding/json"
	"time"
)

// Outbox job kinds.
const (
	JobSendNotification = "notification.send"
	JobGenerateConsent  = "consent.generate"
)

// JobLease is how long a claimed job may stay running without being settled
// before ClaimNext hands it to another worker.
const JobLease = 5 * time.Minute

type Job struct {
	ID        string
	Kind      string
	MatchID   string
	Payload   json.RawMessage
	DedupeKey string // empty means no dedupe
	Attempts  int
}

// JobRepository is the outbox: producers enqueue, workers claim and settle.
type JobRepository interface {
	// Enqueue stores job as queued. When a queued or running job with the same
	// non-empty dedupe key exists, nothing is stored and enqueued is false.
	Enqueue(ctx context.Context, job Job) (jobID string, enqueued bool, err error)
	// ClaimNext claims the next runnable job: a queued job past its back-off,
	// or a running job whose lease has expired.
	ClaimNext(ctx context.Context) (job Job, found bool, err error)
	// ClaimByID claims a specific queued (or lease-expired) job for inline
	// processing.
	ClaimByID(ctx context.Context, jobID string) (job Job, found bool, err error)
	// Release hands a claimed job back to the queue without counting the
	// attempt. Used when a worker stops before running it.
	Release(ctx context.Context, jobID string) error
	MarkCompleted(ctx context.Context, jobID string) error
	// MarkFailed requeues the job with back-off until maxAttempts is reached,
	// then marks it failed for good.
	MarkFailed(ctx context.Context, jobID string, reason string, maxAttempts int) error
}
