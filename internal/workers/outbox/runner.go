package outbox

import (
	"context"
	"fmt"
	"log"
	"time"

	"organease/internal/ports"
)

// Handler performs the work for one claimed job.
type Handler interface {
	Handle(ctx context.Context, job ports.Job) error
}

type HandlerFunc func(ctx context.Context, job ports.Job) error

func (f HandlerFunc) Handle(ctx context.Context, job ports.Job) error { return f(ctx, job) }

// Mux routes jobs to handlers by kind.
type Mux map[string]Handler

func (m Mux) Handle(ctx context.Context, job ports.Job) error {
	h, ok := m[job.Kind]
	if !ok {
		return fmt.Errorf("no handler for job kind %q", job.Kind)
	}
	return h.Handle(ctx, job)
}

type Options struct {
	Concurrency  int
	PollInterval time.Duration
	MaxAttempts  int
	Logger       *log.Logger
}

// Run starts worker goroutines that claim jobs and process them. It returns
// once ctx is cancelled and the workers have drained. Jobs claimed but not yet
// started when ctx ends are released back to the queue.
func Run(ctx context.Context, repo ports.JobRepository, handler Handler, opts Options) {
	if opts.Concurrency < 1 {
		return
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 500 * time.Millisecond
	}
	jobsCh := make(chan ports.Job, opts.Concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()
		defer close(jobsCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							logger.Printf("outbox claim error: %v", err)
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						release(repo, job, logger)
						return
					}
				}
			}
		}
	}()

	done := make(chan struct{}, opts.Concurrency)
	for i := 0; i < opts.Concurrency; i++ {
		go func(idx int) {
			defer func() { done <- struct{}{} }()
			for job := range jobsCh {
				if ctx.Err() != nil {
					release(repo, job, logger)
					continue
				}
				settle(ctx, repo, handler, job, opts.MaxAttempts, logger, idx)
			}
		}(i)
	}
	for i := 0; i < opts.Concurrency; i++ {
		<-done
	}
}

func settle(ctx context.Context, repo ports.JobRepository, handler Handler, job ports.Job, maxAttempts int, logger *log.Logger, worker int) error {
	if err := handler.Handle(ctx, job); err != nil {
		if ctx.Err() != nil {
			// interrupted by shutdown, not a failure of the job itself
			release(repo, job, logger)
			return err
		}
		logger.Printf("outbox worker %d: %s job %s (match %s, attempt %d) failed: %v", worker, job.Kind, job.ID, job.MatchID, job.Attempts, err)
		if mErr := repo.MarkFailed(context.WithoutCancel(ctx), job.ID, err.Error(), maxAttempts); mErr != nil {
			logger.Printf("outbox worker %d: mark failed %s: %v", worker, job.ID, mErr)
		}
		return err
	}
	if err := repo.MarkCompleted(context.WithoutCancel(ctx), job.ID); err != nil {
		logger.Printf("outbox worker %d: complete %s: %v", worker, job.ID, err)
		return err
	}
	return nil
}

func release(repo ports.JobRepository, job ports.Job, logger *log.Logger) {
	if err := repo.Release(context.Background(), job.ID); err != nil {
		logger.Printf("outbox: release %s job %s: %v", job.Kind, job.ID, err)
	}
}

// ProcessInline claims a specific queued job and runs it synchronously with
// the same settle logic as the background workers. processed is false when
// the job was not queued (already running or settled).
func ProcessInline(ctx context.Context, repo ports.JobRepository, handler Handler, jobID string, maxAttempts int, logger *log.Logger) (processed bool, err error) {
	if logger == nil {
		logger = log.Default()
	}
	job, found, err := repo.ClaimByID(ctx, jobID)
	if err != nil || !found {
		return false, err
	}
	return true, settle(ctx, repo, handler, job, maxAttempts, logger, -1)
}
