package verification

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organease/internal/adapters/memory"
	"organease/internal/domain"
	"organease/internal/ports"
	"organease/internal/services/matching"
)

type recordingHandler struct {
	events []domain.ProfileVerified
	err    error
}

func (h *recordingHandler) HandleProfileVerified(ctx context.Context, ev domain.ProfileVerified) error {
	h.events = append(h.events, ev)
	return h.err
}

var hospital = domain.Actor{UserID: "u-h", Role: domain.RoleHospital, ProfileID: "h1"}

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func TestVerifyDonor(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	h := &recordingHandler{}
	svc := New(store, store, quiet(), h)

	d, err := store.CreateDonor(ctx, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Availability: domain.AvailabilityActive})
	require.NoError(t, err)

	got, err := svc.VerifyDonor(ctx, hospital, d.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	require.NotNil(t, got.VerifiedBy)
	assert.Equal(t, "h1", *got.VerifiedBy)
	assert.NotNil(t, got.VerifiedAt)

	require.Len(t, h.events, 1)
	assert.Equal(t, domain.ProfileDonor, h.events[0].ProfileType)
	assert.Equal(t, d.ID, h.events[0].ProfileID)
	assert.Equal(t, "h1", h.events[0].HospitalID)

	got, err = svc.RejectDonor(ctx, hospital, d.ID)
	require.NoError(t, err)
	assert.False(t, got.Verified)
	assert.Len(t, h.events, 1)
}

func TestVerifyRecipient(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	h := &recordingHandler{err: errors.New("matcher down")}
	svc := New(store, store, quiet(), h)

	r, err := store.CreateRecipient(ctx, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganLiver, RequestStatus: domain.RequestPending})
	require.NoError(t, err)

	// a failing handler does not fail verification
	got, err := svc.VerifyRecipient(ctx, hospital, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.Equal(t, domain.RequestVerified, got.RequestStatus)
	require.Len(t, h.events, 1)
	assert.Equal(t, domain.ProfileRecipient, h.events[0].ProfileType)

	got, err = svc.RejectRecipient(ctx, hospital, r.ID)
	require.NoError(t, err)
	assert.False(t, got.Verified)
	assert.Equal(t, domain.RequestRejected, got.RequestStatus)
}

func TestVerify_Guards(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(store, store, quiet())

	_, err := svc.VerifyDonor(ctx, domain.Actor{Role: domain.RoleDonor, ProfileID: "d"}, "d")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.VerifyDonor(ctx, hospital, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.RejectRecipient(ctx, hospital, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRejectDoesNotTouchMatches(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	matcher := matching.New(store, store, store, quiet())
	svc := New(store, store, quiet(), matcher)

	r, err := store.CreateRecipient(ctx, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney, RequestStatus: domain.RequestPending})
	require.NoError(t, err)
	d, err := store.CreateDonor(ctx, domain.DonorProfile{BloodGroup: domain.BloodOPos, Organs: []domain.Organ{domain.OrganKidney}, Availability: domain.AvailabilityActive})
	require.NoError(t, err)

	_, err = svc.VerifyRecipient(ctx, hospital, r.ID)
	require.NoError(t, err)
	ms, err := store.ListMatches(ctx, ports.MatchFilter{RecipientID: r.ID})
	require.NoError(t, err)
	assert.Empty(t, ms, "donor is not verified yet")

	_, err = svc.VerifyDonor(ctx, hospital, d.ID)
	require.NoError(t, err)
	ms, err = store.ListMatches(ctx, ports.MatchFilter{RecipientID: r.ID})
	require.NoError(t, err)
	require.Len(t, ms, 1)
	require.NotNil(t, ms[0].HospitalID)
	assert.Equal(t, "h1", *ms[0].HospitalID)

	_, err = svc.RejectDonor(ctx, hospital, d.ID)
	require.NoError(t, err)
	ms, err = store.ListMatches(ctx, ports.MatchFilter{RecipientID: r.ID})
	require.NoError(t, err)
	assert.Len(t, ms, 1)
}
