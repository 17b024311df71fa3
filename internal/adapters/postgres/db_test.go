package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organease/internal/domain"
	"organease/internal/ports"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestValidID(t *testing.T) {
	assert.True(t, validID(uuid.NewString()))
	assert.False(t, validID("m1"))
	assert.False(t, validID(""))
}

func TestMatchLifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	h, err := db.CreateHospital(ctx, domain.Hospital{Name: "St. Luke", Location: domain.Location{City: "Boise", State: "ID"}})
	require.NoError(t, err)
	d, err := db.CreateDonor(ctx, domain.DonorProfile{
		BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney, domain.OrganLiver},
		Location: domain.Location{State: "ID"}, Age: 30, Availability: domain.AvailabilityActive,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Organ{domain.OrganKidney, domain.OrganLiver}, d.Organs)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, db.SetDonorVerification(ctx, d.ID, true, &h.ID, &now))
	got, found, err := db.GetDonor(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Verified)
	require.NotNil(t, got.VerifiedBy)
	assert.Equal(t, h.ID, *got.VerifiedBy)

	r, err := db.CreateRecipient(ctx, domain.RecipientProfile{
		BloodGroup: domain.BloodABPos, RequiredOrgan: domain.OrganKidney, Location: domain.Location{State: "ID"},
		Age: 41, Priority: domain.PriorityHigh, RequestStatus: domain.RequestPending,
	})
	require.NoError(t, err)

	m, created, err := db.CreateMatch(ctx, domain.MatchRecord{DonorID: d.ID, RecipientID: r.ID, Organ: domain.OrganKidney, Score: 80})
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, domain.StatusMatched, m.Status)
	assert.Equal(t, 1, m.Version)

	again, created, err := db.CreateMatch(ctx, domain.MatchRecord{DonorID: d.ID, RecipientID: r.ID, Organ: domain.OrganKidney, Score: 10})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, m.ID, again.ID)
	assert.Equal(t, 80, again.Score)

	stale := m
	m.HospitalApproved, m.ApprovedAt, m.HospitalID, m.Status = true, &now, &h.ID, domain.StatusApproved
	require.NoError(t, db.UpdateMatch(ctx, &m))
	assert.Equal(t, 2, m.Version)
	stale.HospitalNotes = "late"
	assert.ErrorIs(t, db.UpdateMatch(ctx, &stale), domain.ErrConflict)

	require.NoError(t, db.SetConsentArtifact(ctx, m.ID, "/matches/x/consent", now))
	list, err := db.ListMatches(ctx, ports.MatchFilter{HospitalID: h.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].ConsentURL)
	assert.Equal(t, 2, list[0].Version)

	_, found, err = db.GetMatch(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOutboxDedupe(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	id, enqueued, err := db.Enqueue(ctx, ports.Job{Kind: ports.JobSendNotification, DedupeKey: key})
	require.NoError(t, err)
	require.True(t, enqueued)
	dup, enqueued, err := db.Enqueue(ctx, ports.Job{Kind: ports.JobSendNotification, DedupeKey: key})
	require.NoError(t, err)
	assert.False(t, enqueued)
	assert.Equal(t, id, dup)

	job, found, err := db.ClaimByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, job.Attempts)
	_, found, err = db.ClaimByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, found, "running job cannot be claimed twice")

	require.NoError(t, db.MarkFailed(ctx, id, "boom", 1))
	_, enqueued, err = db.Enqueue(ctx, ports.Job{Kind: ports.JobSendNotification, DedupeKey: key})
	require.NoError(t, err)
	assert.True(t, enqueued, "failed job no longer holds the key")
}

func TestOutboxLeaseAndRelease(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	id, _, err := db.Enqueue(ctx, ports.Job{Kind: ports.JobSendNotification, DedupeKey: key})
	require.NoError(t, err)
	_, found, err := db.ClaimByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, db.Release(ctx, id))
	job, found, err := db.ClaimByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found, "released job is queued again")
	assert.Equal(t, 1, job.Attempts)

	// age the claim past its lease
	_, err = db.Pool.Exec(ctx, `UPDATE outbox_jobs SET started_at = now() - interval '1 day' WHERE id = $1`, id)
	require.NoError(t, err)
	job, found, err = db.ClaimByID(ctx, id)
	require.NoError(t, err)
	require.True(t, found, "expired lease can be reclaimed")
	assert.Equal(t, 2, job.Attempts)
	require.NoError(t, db.MarkCompleted(ctx, id))
}
