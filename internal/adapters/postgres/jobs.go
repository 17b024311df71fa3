package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"organease/internal/domain"
	"organease/internal/ports"
)

var _ ports.JobRepository = (*DB)(nil)

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Enqueue inserts a queued job. The partial dedupe index turns a second
// pending job with the same key into a no-op, and the existing id is returned.
func (db *DB) Enqueue(ctx context.Context, job ports.Job) (string, bool, error) {
	payload := job.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	var matchID *string
	if job.MatchID != "" {
		if !validID(job.MatchID) {
			return "", false, domain.ErrNotFound
		}
		matchID = &job.MatchID
	}

	var id string
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO outbox_jobs (kind, match_id, payload, dedupe_key)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (dedupe_key) WHERE dedupe_key IS NOT NULL AND status IN ('queued', 'running') DO NOTHING
        RETURNING id::text
    `, job.Kind, matchID, payload, nullable(job.DedupeKey)).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", false, err
	}
	err = db.Pool.QueryRow(ctx, `
        SELECT id::text FROM outbox_jobs
        WHERE dedupe_key = $1 AND status IN ('queued', 'running')
    `, job.DedupeKey).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// the pending job settled between the insert and this read
		return "", false, domain.ErrConflict
	}
	return id, false, err
}

const jobColumns = `id::text, kind, COALESCE(match_id::text, ''), payload, COALESCE(dedupe_key, ''), attempts`

func scanJob(row pgx.Row) (ports.Job, error) {
	var j ports.Job
	err := row.Scan(&j.ID, &j.Kind, &j.MatchID, &j.Payload, &j.DedupeKey, &j.Attempts)
	return j, err
}

// leaseSeconds is ports.JobLease as bound into the claim queries.
var leaseSeconds = int(ports.JobLease / time.Second)

// ClaimNext selects the next runnable job using SKIP LOCKED and marks it
// running. A running job whose lease expired counts as runnable.
func (db *DB) ClaimNext(ctx context.Context) (job ports.Job, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	job, err = scanJob(tx.QueryRow(ctx, `
        SELECT `+jobColumns+` FROM outbox_jobs
        WHERE (status = 'queued' AND run_after <= now())
           OR (status = 'running' AND started_at <= now() - $1::int * interval '1 second')
        ORDER BY CASE WHEN status = 'queued' THEN run_after ELSE started_at END, queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, leaseSeconds))
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	if _, err = tx.Exec(ctx, `
        UPDATE outbox_jobs SET status = 'running', started_at = now(), attempts = attempts + 1 WHERE id = $1
    `, job.ID); err != nil {
		return job, false, err
	}
	job.Attempts++
	return job, true, nil
}

// ClaimByID marks a specific queued or lease-expired job running for inline
// processing.
func (db *DB) ClaimByID(ctx context.Context, jobID string) (ports.Job, bool, error) {
	if !validID(jobID) {
		return ports.Job{}, false, nil
	}
	job, err := scanJob(db.Pool.QueryRow(ctx, `
        UPDATE outbox_jobs SET status = 'running', started_at = now(), attempts = attempts + 1
        WHERE id = $1
          AND (status = 'queued' OR (status = 'running' AND started_at <= now() - $2::int * interval '1 second'))
        RETURNING `+jobColumns,
		jobID, leaseSeconds))
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	return job, err == nil, err
}

// Release requeues a running job and gives back the attempt its claim took.
func (db *DB) Release(ctx context.Context, jobID string) error {
	if !validID(jobID) {
		return domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE outbox_jobs SET
            status = 'queued',
            started_at = NULL,
            run_after = now(),
            attempts = GREATEST(attempts - 1, 0)
        WHERE id = $1 AND status = 'running'
    `, jobID)
	return err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	if !validID(jobID) {
		return domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
        UPDATE outbox_jobs SET status = 'completed', finished_at = now(), last_error = NULL WHERE id = $1
    `, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFailed requeues the job with linear back-off, or fails it for good once
// maxAttempts is reached.
func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string, maxAttempts int) error {
	if !validID(jobID) {
		return domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
        UPDATE outbox_jobs SET
            last_error = $2,
            status = CASE WHEN attempts >= $3 THEN 'failed' ELSE 'queued' END,
            finished_at = CASE WHEN attempts >= $3 THEN now() ELSE NULL END,
            run_after = CASE WHEN attempts >= $3 THEN run_after ELSE now() + attempts * interval '2 seconds' END
        WHERE id = $1
    `, jobID, reason, maxAttempts)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
