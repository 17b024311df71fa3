package workflow

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organease/internal/adapters/memory"
	"organease/internal/domain"
	"organease/internal/ports"
)

// fakeConsent records Generate calls.
type fakeConsent struct {
	mu         sync.Mutex
	calls      []ports.ConsentInput
	GenerateFn func(ctx context.Context, in ports.ConsentInput) (string, error)
}

func (f *fakeConsent) Generate(ctx context.Context, in ports.ConsentInput) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	f.mu.Unlock()
	if f.GenerateFn != nil {
		return f.GenerateFn(ctx, in)
	}
	return "/matches/" + in.Match.ID + "/consent", nil
}

type fixture struct {
	svc       *Service
	store     *memory.Store
	consent   *fakeConsent
	match     domain.MatchRecord
	hospital  domain.Actor
	donor     domain.Actor
	recipient domain.Actor
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	h, err := store.CreateHospital(ctx, domain.Hospital{UserID: "u-h", Name: "St. Mary", Location: domain.Location{City: "Fresno", State: "CA"}})
	require.NoError(t, err)
	d, err := store.CreateDonor(ctx, domain.DonorProfile{UserID: "u-d", BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Availability: domain.AvailabilityActive, Verified: true, VerifiedBy: &h.ID})
	require.NoError(t, err)
	r, err := store.CreateRecipient(ctx, domain.RecipientProfile{UserID: "u-r", BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney, Verified: true, VerifiedBy: &h.ID, RequestStatus: domain.RequestVerified})
	require.NoError(t, err)
	m, _, err := store.CreateMatch(ctx, domain.MatchRecord{DonorID: d.ID, RecipientID: r.ID, Organ: domain.OrganKidney, Score: 90, Status: domain.StatusMatched, HospitalID: &h.ID})
	require.NoError(t, err)

	fc := &fakeConsent{}
	svc := New(Deps{
		Matches: store, Donors: store, Recipients: store, Hospitals: store, Jobs: store,
		Consent: fc,
		Logger:  log.New(io.Discard, "", 0),
		Now:     func() time.Time { return now },
	})
	return &fixture{
		svc: svc, store: store, consent: fc, match: m, now: now,
		hospital:  domain.Actor{UserID: "u-h", Role: domain.RoleHospital, ProfileID: h.ID},
		donor:     domain.Actor{UserID: "u-d", Role: domain.RoleDonor, ProfileID: d.ID},
		recipient: domain.Actor{UserID: "u-r", Role: domain.RoleRecipient, ProfileID: r.ID},
	}
}

func (f *fixture) jobs(kind string) []memory.JobStatus {
	var out []memory.JobStatus
	for _, j := range f.store.Jobs() {
		if j.Kind == kind {
			out = append(out, j)
		}
	}
	return out
}

func (f *fixture) accepted(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.Approve(ctx, f.hospital, f.match.ID, "ok")
	require.NoError(t, err)
	_, err = f.svc.AcceptAsDonor(ctx, f.donor, f.match.ID)
	require.NoError(t, err)
	_, err = f.svc.AcceptAsRecipient(ctx, f.recipient, f.match.ID)
	require.NoError(t, err)
}

func TestApprove(t *testing.T) {
	f := newFixture(t)
	m, err := f.svc.Approve(context.Background(), f.hospital, f.match.ID, "documents checked")
	require.NoError(t, err)

	assert.True(t, m.HospitalApproved)
	assert.Equal(t, domain.StatusApproved, m.Status)
	assert.Equal(t, "documents checked", m.HospitalNotes)
	require.NotNil(t, m.ApprovedAt)
	assert.Equal(t, f.now, *m.ApprovedAt)
	assert.Equal(t, domain.StateHospitalApproved, domain.DeriveState(m))
	assert.True(t, m.CanCommunicate())

	// one notification per party
	notes := f.jobs(ports.JobSendNotification)
	assert.Len(t, notes, 2)

	_, err = f.svc.Approve(context.Background(), f.hospital, f.match.ID, "again")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApprove_Authorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Approve(ctx, f.donor, f.match.ID, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other := domain.Actor{Role: domain.RoleHospital, ProfileID: "other-hospital"}
	_, err = f.svc.Approve(ctx, other, f.match.ID, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.Approve(ctx, f.hospital, "missing", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m, _, err := f.store.GetMatch(ctx, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, f.match, m)
}

func TestApprove_UnassignedMatchIsClaimed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	m, _, err := f.store.CreateMatch(ctx, domain.MatchRecord{DonorID: f.donor.ProfileID, RecipientID: "r-unassigned", Organ: domain.OrganKidney, Status: domain.StatusMatched})
	require.NoError(t, err)

	got, err := f.svc.Approve(ctx, f.hospital, m.ID, "")
	require.NoError(t, err)
	require.NotNil(t, got.HospitalID)
	assert.Equal(t, f.hospital.ProfileID, *got.HospitalID)
}

func TestReject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m, err := f.svc.Reject(ctx, f.hospital, f.match.ID, "tissue mismatch")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, m.Status)
	assert.False(t, m.HospitalApproved)
	assert.Nil(t, m.ApprovedAt)
	assert.Equal(t, domain.StateRejected, domain.DeriveState(m))

	_, err = f.svc.Approve(ctx, f.hospital, f.match.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.svc.AcceptAsDonor(ctx, f.donor, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAccept_RequiresApproval(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AcceptAsDonor(context.Background(), f.donor, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	m, _, _ := f.store.GetMatch(context.Background(), f.match.ID)
	assert.False(t, m.DonorAccepted)
}

func TestAccept_WrongParty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Approve(ctx, f.hospital, f.match.ID, "")
	require.NoError(t, err)

	_, err = f.svc.AcceptAsDonor(ctx, f.recipient, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.svc.AcceptAsRecipient(ctx, domain.Actor{Role: domain.RoleRecipient, ProfileID: "someone-else"}, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.svc.Accept(ctx, f.hospital, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMutualAcceptance_EnqueuesConsentOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.accepted(t)

	m, _, err := f.store.GetMatch(ctx, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateMutuallyAccepted, domain.DeriveState(m))
	// status stays at the hospital gate
	assert.Equal(t, domain.StatusApproved, m.Status)
	assert.Len(t, f.jobs(ports.JobGenerateConsent), 1)

	// repeated acceptance is a no-op
	again, err := f.svc.AcceptAsRecipient(ctx, f.recipient, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Version, again.Version)
	assert.Len(t, f.jobs(ports.JobGenerateConsent), 1)
}

func TestMutualAcceptance_Concurrent(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFixture(t)
		ctx := context.Background()
		_, err := f.svc.Approve(ctx, f.hospital, f.match.ID, "")
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() { defer wg.Done(); _, errs[0] = f.svc.Accept(ctx, f.donor, f.match.ID) }()
		go func() { defer wg.Done(); _, errs[1] = f.svc.Accept(ctx, f.recipient, f.match.ID) }()
		wg.Wait()
		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		m, _, err := f.store.GetMatch(ctx, f.match.ID)
		require.NoError(t, err)
		assert.True(t, m.DonorAccepted)
		assert.True(t, m.RecipientAccepted)
		assert.Len(t, f.jobs(ports.JobGenerateConsent), 1)
	}
}

func TestScheduling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	test := f.now.Add(48 * time.Hour)
	proc := f.now.Add(96 * time.Hour)

	_, err := f.svc.Approve(ctx, f.hospital, f.match.ID, "")
	require.NoError(t, err)
	_, err = f.svc.ScheduleTest(ctx, f.hospital, f.match.ID, test)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "test needs both acceptances")

	_, err = f.svc.AcceptAsDonor(ctx, f.donor, f.match.ID)
	require.NoError(t, err)
	_, err = f.svc.AcceptAsRecipient(ctx, f.recipient, f.match.ID)
	require.NoError(t, err)

	_, err = f.svc.ScheduleProcedure(ctx, f.hospital, f.match.ID, proc)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "procedure needs a test")
	_, err = f.svc.ScheduleTest(ctx, f.hospital, f.match.ID, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.svc.ScheduleTest(ctx, f.donor, f.match.ID, test)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	m, err := f.svc.ScheduleTest(ctx, f.hospital, f.match.ID, test)
	require.NoError(t, err)
	assert.Equal(t, domain.StateTestScheduled, domain.DeriveState(m))

	_, err = f.svc.Complete(ctx, f.hospital, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	m, err = f.svc.ScheduleProcedure(ctx, f.hospital, f.match.ID, proc)
	require.NoError(t, err)
	assert.Equal(t, domain.StateProcedureScheduled, domain.DeriveState(m))
	assert.Equal(t, domain.StatusApproved, m.Status)

	_, err = f.svc.ScheduleTest(ctx, f.hospital, f.match.ID, proc.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "test cannot move past the procedure")

	m, err = f.svc.Complete(ctx, f.hospital, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, m.Status)
	assert.Equal(t, domain.StateCompleted, domain.DeriveState(m))

	_, err = f.svc.Complete(ctx, f.hospital, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestScheduleProcedure_BeforeTestLeavesRecordUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.accepted(t)
	test := f.now.Add(72 * time.Hour)
	_, err := f.svc.ScheduleTest(ctx, f.hospital, f.match.ID, test)
	require.NoError(t, err)
	before, _, err := f.store.GetMatch(ctx, f.match.ID)
	require.NoError(t, err)

	_, err = f.svc.ScheduleProcedure(ctx, f.hospital, f.match.ID, test.Add(-time.Minute))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	after, _, err := f.store.GetMatch(ctx, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// same instant is allowed
	m, err := f.svc.ScheduleProcedure(ctx, f.hospital, f.match.ID, test)
	require.NoError(t, err)
	assert.Equal(t, test, *m.ProcedureScheduledAt)
}

func TestRequestAndGenerateConsent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Approve(ctx, f.hospital, f.match.ID, "")
	require.NoError(t, err)
	_, _, err = f.svc.RequestConsent(ctx, f.donor, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.svc.GenerateConsent(ctx, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.svc.AcceptAsDonor(ctx, f.donor, f.match.ID)
	require.NoError(t, err)
	_, err = f.svc.AcceptAsRecipient(ctx, f.recipient, f.match.ID)
	require.NoError(t, err)

	// the job queued by acceptance is still pending
	_, enqueued, err := f.svc.RequestConsent(ctx, f.recipient, f.match.ID)
	require.NoError(t, err)
	assert.False(t, enqueued)

	_, _, err = f.svc.RequestConsent(ctx, domain.Actor{Role: domain.RoleDonor, ProfileID: "x"}, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	jobs := f.jobs(ports.JobGenerateConsent)
	require.Len(t, jobs, 1)
	require.NoError(t, f.svc.HandleConsentJob(ctx, jobs[0].Job))

	m, _, err := f.store.GetMatch(ctx, f.match.ID)
	require.NoError(t, err)
	require.NotNil(t, m.ConsentURL)
	assert.Equal(t, "/matches/"+m.ID+"/consent", *m.ConsentURL)
	require.Len(t, f.consent.calls, 1)
	in := f.consent.calls[0]
	assert.Equal(t, f.donor.ProfileID, in.Donor.ID)
	assert.Equal(t, f.recipient.ProfileID, in.Recipient.ID)
	require.NotNil(t, in.Hospital)
	assert.Equal(t, "St. Mary", in.Hospital.Name)

	// once settled, on-demand requests queue a fresh job
	require.NoError(t, f.store.MarkCompleted(ctx, jobs[0].ID))
	_, enqueued, err = f.svc.RequestConsent(ctx, f.hospital, f.match.ID)
	require.NoError(t, err)
	assert.True(t, enqueued)
}

func TestConsentJobAbandonedByWorkerIsRetried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clock := f.now
	f.store.SetClock(func() time.Time { return clock })
	f.accepted(t)

	// a worker claims the job and dies without settling it
	jobs := f.jobs(ports.JobGenerateConsent)
	require.Len(t, jobs, 1)
	claimed, found, err := f.store.ClaimByID(ctx, jobs[0].ID)
	require.NoError(t, err)
	require.True(t, found)

	_, enqueued, err := f.svc.RequestConsent(ctx, f.hospital, f.match.ID)
	require.NoError(t, err)
	assert.False(t, enqueued, "the lease still holds")
	_, found, err = f.store.ClaimByID(ctx, claimed.ID)
	require.NoError(t, err)
	assert.False(t, found)

	clock = clock.Add(24 * time.Hour)
	var retry ports.Job
	for retry.ID == "" {
		j, found, err := f.store.ClaimNext(ctx)
		require.NoError(t, err)
		require.True(t, found, "an expired lease makes the job claimable")
		if j.ID == claimed.ID {
			retry = j
		}
	}
	assert.Equal(t, 2, retry.Attempts)

	require.NoError(t, f.svc.HandleConsentJob(ctx, retry))
	require.NoError(t, f.store.MarkCompleted(ctx, retry.ID))
	m, _, err := f.store.GetMatch(ctx, f.match.ID)
	require.NoError(t, err)
	require.NotNil(t, m.ConsentURL)

	_, enqueued, err = f.svc.RequestConsent(ctx, f.hospital, f.match.ID)
	require.NoError(t, err)
	assert.True(t, enqueued)
}

func TestConsentFailureDoesNotFailAcceptance(t *testing.T) {
	f := newFixture(t)
	f.consent.GenerateFn = func(context.Context, ports.ConsentInput) (string, error) {
		return "", errors.New("renderer down")
	}
	f.accepted(t)

	jobs := f.jobs(ports.JobGenerateConsent)
	require.Len(t, jobs, 1)
	err := f.svc.HandleConsentJob(context.Background(), jobs[0].Job)
	assert.Error(t, err)

	m, _, _ := f.store.GetMatch(context.Background(), f.match.ID)
	assert.True(t, m.MutuallyAccepted())
	assert.Nil(t, m.ConsentURL)
}

func TestGetAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.svc.Get(ctx, f.donor, f.match.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCandidate, v.State)
	assert.False(t, v.CanCommunicate)

	_, err = f.svc.Get(ctx, domain.Actor{Role: domain.RoleDonor, ProfileID: "stranger"}, f.match.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = f.svc.Get(ctx, f.donor, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, a := range []domain.Actor{f.donor, f.recipient, f.hospital} {
		vs, err := f.svc.List(ctx, a)
		require.NoError(t, err)
		require.Len(t, vs, 1, "%s", a.Role)
		assert.Equal(t, f.match.ID, vs[0].ID)
	}
	_, err = f.svc.List(ctx, domain.Actor{Role: "admin", ProfileID: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Random operation sequences never break the gating invariants.
func TestWorkflowInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		f := newFixture(t)
		ctx := context.Background()
		for step := 0; step < 25; step++ {
			at := f.now.Add(time.Duration(rng.Intn(200)-50) * time.Hour)
			switch rng.Intn(8) {
			case 0:
				_, _ = f.svc.Approve(ctx, f.hospital, f.match.ID, "")
			case 1:
				if rng.Intn(4) == 0 {
					_, _ = f.svc.Reject(ctx, f.hospital, f.match.ID, "")
				}
			case 2:
				_, _ = f.svc.AcceptAsDonor(ctx, f.donor, f.match.ID)
			case 3:
				_, _ = f.svc.AcceptAsRecipient(ctx, f.recipient, f.match.ID)
			case 4:
				_, _ = f.svc.ScheduleTest(ctx, f.hospital, f.match.ID, at)
			case 5:
				_, _ = f.svc.ScheduleProcedure(ctx, f.hospital, f.match.ID, at)
			case 6:
				_, _ = f.svc.Complete(ctx, f.hospital, f.match.ID)
			case 7:
				_, _, _ = f.svc.RequestConsent(ctx, f.donor, f.match.ID)
			}
			m, _, err := f.store.GetMatch(ctx, f.match.ID)
			require.NoError(t, err)
			if m.DonorAccepted || m.RecipientAccepted {
				assert.True(t, m.HospitalApproved)
			}
			if m.TestScheduledAt != nil {
				assert.True(t, m.DonorAccepted && m.RecipientAccepted)
			}
			if m.ProcedureScheduledAt != nil {
				require.NotNil(t, m.TestScheduledAt)
				assert.False(t, m.ProcedureScheduledAt.Before(*m.TestScheduledAt))
			}
			if m.CompletedAt != nil {
				assert.NotNil(t, m.ProcedureScheduledAt)
			}
			assert.LessOrEqual(t, len(f.jobs(ports.JobGenerateConsent)), 1)
		}
	}
}
