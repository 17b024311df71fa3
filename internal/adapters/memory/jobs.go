package memory

import (
	"context"
	"time"

	"organease/internal/domain"
	"organease/internal/ports"
)

const (
	jobQueued    = "queued"
	jobRunning   = "running"
	jobCompleted = "completed"
	jobFailed    = "failed"
)

type job struct {
	ports.Job
	status    string
	lastError string
	runAfter  time.Time
	startedAt time.Time
}

// readyAt is when the job may next be claimed, and false if it never can.
func (j *job) readyAt() (time.Time, bool) {
	switch j.status {
	case jobQueued:
		return j.runAfter, true
	case jobRunning:
		return j.startedAt.Add(ports.JobLease), true
	}
	return time.Time{}, false
}

func (j *job) claimable(now time.Time) bool {
	at, ok := j.readyAt()
	return ok && !at.After(now)
}

func (j *job) claim(now time.Time) {
	j.status = jobRunning
	j.startedAt = now
	j.Attempts++
}

func (s *Store) Enqueue(ctx context.Context, j ports.Job) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j.DedupeKey != "" {
		for _, id := range s.jobOrder {
			cur := s.jobs[id]
			if cur.DedupeKey == j.DedupeKey && (cur.status == jobQueued || cur.status == jobRunning) {
				return cur.ID, false, nil
			}
		}
	}
	if j.ID == "" {
		j.ID = newID()
	}
	j.Attempts = 0
	s.jobs[j.ID] = &job{Job: j, status: jobQueued, runAfter: s.now()}
	s.jobOrder = append(s.jobOrder, j.ID)
	return j.ID, true, nil
}

func (s *Store) ClaimNext(ctx context.Context) (ports.Job, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var next *job
	var nextAt time.Time
	for _, id := range s.jobOrder {
		j := s.jobs[id]
		if !j.claimable(now) {
			continue
		}
		at, _ := j.readyAt()
		if next == nil || at.Before(nextAt) {
			next, nextAt = j, at
		}
	}
	if next == nil {
		return ports.Job{}, false, nil
	}
	next.claim(now)
	return next.Job, true, nil
}

func (s *Store) ClaimByID(ctx context.Context, jobID string) (ports.Job, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return ports.Job{}, false, nil
	}
	now := s.now()
	if j.status == jobQueued {
		// inline runs skip the back-off
		j.claim(now)
		return j.Job, true, nil
	}
	if !j.claimable(now) {
		return ports.Job{}, false, nil
	}
	j.claim(now)
	return j.Job, true, nil
}

func (s *Store) Release(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	if j.status != jobRunning {
		return nil
	}
	j.status = jobQueued
	j.startedAt = time.Time{}
	j.runAfter = s.now()
	if j.Attempts > 0 {
		j.Attempts--
	}
	return nil
}

func (s *Store) MarkCompleted(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	j.status = jobCompleted
	return nil
}

func (s *Store) MarkFailed(ctx context.Context, jobID string, reason string, maxAttempts int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	j.lastError = reason
	if j.Attempts >= maxAttempts {
		j.status = jobFailed
		return nil
	}
	j.status = jobQueued
	j.runAfter = s.now().Add(time.Duration(j.Attempts) * 2 * time.Second)
	return nil
}

// JobStatus reports a job's kind, status and attempts. Used by tests and the
// local runner's diagnostics.
type JobStatus struct {
	ports.Job
	Status    string
	LastError string
}

// Jobs returns a snapshot of every job in enqueue order.
func (s *Store) Jobs() []JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]JobStatus, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		j := s.jobs[id]
		out = append(out, JobStatus{Job: j.Job, Status: j.status, LastError: j.lastError})
	}
	return out
}

// SetClock overrides the store's time source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
