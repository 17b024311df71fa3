package matching

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
)

func strp(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return New(store, store, store, log.New(io.Discard, "", 0)), store
}

func addDonor(t *testing.T, store *memory.Store, d domain.DonorProfile) domain.DonorProfile {
	t.Helper()
	if d.Availability == "" {
		d.Availability = domain.AvailabilityActive
	}
	out, err := store.CreateDonor(context.Background(), d)
	require.NoError(t, err)
	return out
}

func addRecipient(t *testing.T, store *memory.Store, r domain.RecipientProfile) domain.RecipientProfile {
	t.Helper()
	if r.RequestStatus == "" {
		r.RequestStatus = domain.RequestPending
		if r.Verified {
			r.RequestStatus = domain.RequestVerified
		}
	}
	out, err := store.CreateRecipient(context.Background(), r)
	require.NoError(t, err)
	return out
}

func TestFindCandidates_RecipientNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.FindCandidates(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFindCandidates_FiltersAndRanks(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	r := addRecipient(t, store, domain.RecipientProfile{
		BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney,
		Location: domain.Location{State: "CA"}, Age: 28, Priority: domain.PriorityEmergency, Verified: true,
	})
	best := addDonor(t, store, domain.DonorProfile{
		BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney, domain.OrganLiver},
		Location: domain.Location{State: "CA"}, Age: 30, EmergencyAvailable: true, Verified: true,
	})
	farA := addDonor(t, store, domain.DonorProfile{
		BloodGroup: domain.BloodAPos, Organs: []domain.Organ{domain.OrganKidney},
		Location: domain.Location{State: "NY"}, Age: 60, Verified: true,
	})
	farB := addDonor(t, store, domain.DonorProfile{
		BloodGroup: domain.BloodOPos, Organs: []domain.Organ{domain.OrganKidney},
		Location: domain.Location{State: "TX"}, Age: 70, Verified: true,
	})
	// excluded: unverified, paused, wrong organ, incompatible blood
	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Location: domain.Location{State: "CA"}})
	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Verified: true, Availability: domain.AvailabilityPaused})
	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganHeart}, Verified: true})
	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodBPos, Organs: []domain.Organ{domain.OrganKidney}, Verified: true})

	got, err := svc.FindCandidates(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, domain.MatchScore{DonorID: best.ID, RecipientID: r.ID, Organ: domain.OrganKidney, Score: 100}, got[0])
	// farA and farB both score 40+15 and keep discovery order
	assert.Equal(t, farA.ID, got[1].DonorID)
	assert.Equal(t, farB.ID, got[2].DonorID)
	assert.Equal(t, 55, got[1].Score)
	assert.Equal(t, 55, got[2].Score)
}

func TestFindCandidates_IncompatibleBloodExcluded(t *testing.T) {
	svc, store := newTestService(t)
	r := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodOPos, RequiredOrgan: domain.OrganLiver, Verified: true})
	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodAPos, Organs: []domain.Organ{domain.OrganLiver}, Verified: true})

	got, err := svc.FindCandidates(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateMatch_IdempotentAndHospitalResolution(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	d := addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Verified: true, VerifiedBy: strp("hd")})
	r := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney, Verified: true, VerifiedBy: strp("hr")})

	first, err := svc.CreateMatch(ctx, d.ID, r.ID, domain.OrganKidney, 80)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMatched, first.Status)
	assert.False(t, first.HospitalApproved)
	require.NotNil(t, first.HospitalID)
	assert.Equal(t, "hr", *first.HospitalID)

	second, err := svc.CreateMatch(ctx, d.ID, r.ID, domain.OrganKidney, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	all, err := store.ListMatches(ctx, donorFilter(d.ID))
	require.NoError(t, err)
	assert.Len(t, all, 1)

	d2 := addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Verified: true, VerifiedBy: strp("hd")})
	r2 := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney})
	m, err := svc.CreateMatch(ctx, d2.ID, r2.ID, domain.OrganKidney, 50)
	require.NoError(t, err)
	require.NotNil(t, m.HospitalID)
	assert.Equal(t, "hd", *m.HospitalID)

	d3 := addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}})
	m, err = svc.CreateMatch(ctx, d3.ID, r2.ID, domain.OrganKidney, 50)
	require.NoError(t, err)
	assert.Nil(t, m.HospitalID)
}

func TestCreateMatch_MissingProfiles(t *testing.T) {
	svc, store := newTestService(t)
	r := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney})

	_, err := svc.CreateMatch(context.Background(), "nobody", r.ID, domain.OrganKidney, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPromoteTopCandidate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	r := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodABPos, RequiredOrgan: domain.OrganHeart, Location: domain.Location{State: "WA"}, Age: 40, Verified: true})
	m, err := svc.PromoteTopCandidate(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, m)

	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodBPos, Organs: []domain.Organ{domain.OrganHeart}, Location: domain.Location{State: "OR"}, Age: 40, Verified: true})
	top := addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodAPos, Organs: []domain.Organ{domain.OrganHeart}, Location: domain.Location{State: "WA"}, Age: 42, Verified: true})

	m, err = svc.PromoteTopCandidate(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, top.ID, m.DonorID)
	assert.Equal(t, 80, m.Score)

	again, err := svc.PromoteTopCandidate(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, again.ID)
}

func TestHandleProfileVerified_DonorMatchesEveryListingRecipient(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	// an existing stronger donor means the new donor is not r1's top pick
	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodONeg, Organs: []domain.Organ{domain.OrganKidney}, Location: domain.Location{State: "CA"}, Age: 30, Verified: true})
	r1 := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney, Location: domain.Location{State: "CA"}, Age: 30, Verified: true})
	r2 := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodABPos, RequiredOrgan: domain.OrganLiver, Location: domain.Location{State: "NV"}, Age: 50, Verified: true})
	// blood incompatible
	addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodOPos, RequiredOrgan: domain.OrganKidney, Verified: true})
	// organ not offered
	addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganHeart, Verified: true})
	// not verified
	addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodAPos, RequiredOrgan: domain.OrganKidney})

	d := addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodAPos, Organs: []domain.Organ{domain.OrganKidney, domain.OrganLiver}, Location: domain.Location{State: "NV"}, Age: 55, Verified: true})

	// r2 is already matched with this donor
	pre, err := svc.CreateMatch(ctx, d.ID, r2.ID, domain.OrganLiver, 1)
	require.NoError(t, err)

	require.NoError(t, svc.HandleProfileVerified(ctx, domain.ProfileVerified{ProfileType: domain.ProfileDonor, ProfileID: d.ID}))

	got, err := store.ListMatches(ctx, donorFilter(d.ID))
	require.NoError(t, err)
	require.Len(t, got, 2)
	byRecipient := map[string]domain.MatchRecord{}
	for _, m := range got {
		byRecipient[m.RecipientID] = m
	}
	assert.Contains(t, byRecipient, r1.ID)
	assert.Equal(t, pre, byRecipient[r2.ID])

	// rerunning does not duplicate
	require.NoError(t, svc.HandleProfileVerified(ctx, domain.ProfileVerified{ProfileType: domain.ProfileDonor, ProfileID: d.ID}))
	got, err = store.ListMatches(ctx, donorFilter(d.ID))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHandleProfileVerified_RecipientPromotesTopOnly(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodOPos, Organs: []domain.Organ{domain.OrganLungs}, Location: domain.Location{State: "FL"}, Age: 70, Verified: true})
	top := addDonor(t, store, domain.DonorProfile{BloodGroup: domain.BloodOPos, Organs: []domain.Organ{domain.OrganLungs}, Location: domain.Location{State: "GA"}, Age: 35, Verified: true})
	r := addRecipient(t, store, domain.RecipientProfile{BloodGroup: domain.BloodOPos, RequiredOrgan: domain.OrganLungs, Location: domain.Location{State: "GA"}, Age: 33, Verified: true})

	require.NoError(t, svc.HandleProfileVerified(ctx, domain.ProfileVerified{ProfileType: domain.ProfileRecipient, ProfileID: r.ID}))

	got, err := store.ListMatches(ctx, recipientFilter(r.ID))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, top.ID, got[0].DonorID)
}

func TestHandleProfileVerified_UnknownType(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.HandleProfileVerified(context.Background(), domain.ProfileVerified{ProfileType: "hospital"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func donorFilter(id string) ports.MatchFilter     { return ports.MatchFilter{DonorID: id} }
func recipientFilter(id string) ports.MatchFilter { return ports.MatchFilter{RecipientID: id} }
