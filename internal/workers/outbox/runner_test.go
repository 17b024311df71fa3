package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organease/internal/adapters/memory"
	"organease/internal/ports"
)

var quiet = log.New(io.Discard, "", 0)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, n ports.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func notificationJob(t *testing.T, user string) ports.Job {
	payload, err := json.Marshal(ports.Notification{UserID: user, Title: "hi"})
	require.NoError(t, err)
	return ports.Job{Kind: ports.JobSendNotification, Payload: payload}
}

func TestRun_ProcessesQueuedJobs(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, u := range []string{"u1", "u2", "u3"} {
		_, _, err := store.Enqueue(ctx, notificationJob(t, u))
		require.NoError(t, err)
	}

	rn := &recordingNotifier{}
	done := make(chan struct{})
	go func() {
		Run(ctx, store, Mux{ports.JobSendNotification: NotificationHandler{Notifier: rn}}, Options{
			Concurrency: 2, PollInterval: 10 * time.Millisecond, MaxAttempts: 3, Logger: quiet,
		})
		close(done)
	}()

	require.Eventually(t, func() bool { return rn.count() == 3 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	for _, j := range store.Jobs() {
		assert.Equal(t, "completed", j.Status)
	}
}

func TestRun_ShutdownReleasesInterruptedJob(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	id, _, err := store.Enqueue(ctx, ports.Job{Kind: ports.JobGenerateConsent, MatchID: "m1", DedupeKey: "consent:m1"})
	require.NoError(t, err)

	started := make(chan struct{})
	h := Mux{ports.JobGenerateConsent: HandlerFunc(func(ctx context.Context, job ports.Job) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})}
	done := make(chan struct{})
	go func() {
		Run(ctx, store, h, Options{Concurrency: 1, PollInterval: 10 * time.Millisecond, MaxAttempts: 3, Logger: quiet})
		close(done)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not picked up")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	jobs := store.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "queued", jobs[0].Status)
	assert.Equal(t, 0, jobs[0].Attempts)
	assert.Empty(t, jobs[0].LastError)

	_, enqueued, err := store.Enqueue(context.Background(), ports.Job{Kind: ports.JobGenerateConsent, DedupeKey: "consent:m1"})
	require.NoError(t, err)
	assert.False(t, enqueued, "the released job still owns its key")
	job, found, err := store.ClaimByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, job.Attempts)
}

func TestProcessInline_FailureRequeues(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	id, _, err := store.Enqueue(ctx, ports.Job{Kind: ports.JobGenerateConsent, MatchID: "m1"})
	require.NoError(t, err)

	boom := errors.New("renderer offline")
	h := Mux{ports.JobGenerateConsent: HandlerFunc(func(ctx context.Context, job ports.Job) error { return boom })}

	processed, err := ProcessInline(ctx, store, h, id, 3, quiet)
	assert.True(t, processed)
	assert.ErrorIs(t, err, boom)

	jobs := store.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "queued", jobs[0].Status)
	assert.Equal(t, "renderer offline", jobs[0].LastError)

	processed, err = ProcessInline(ctx, store, h, "missing", 3, quiet)
	assert.False(t, processed)
	assert.NoError(t, err)
}

func TestMux_UnknownKind(t *testing.T) {
	err := Mux{}.Handle(context.Background(), ports.Job{Kind: "other"})
	assert.Error(t, err)
}

func TestNotificationHandler_BadPayload(t *testing.T) {
	h := NotificationHandler{Notifier: &recordingNotifier{}}
	assert.Error(t, h.Handle(context.Background(), ports.Job{ID: "j1", Payload: json.RawMessage(`{"title":"x"}`)}))
	assert.Error(t, h.Handle(context.Background(), ports.Job{ID: "j2", Payload: json.RawMessage(`not json`)}))
}
