package ports

import (
	"context"
	"time"

	"organease/internal/domain"
)

// DonorRepository stores donor profiles. Get returns found=false for a
// missing row; updates return domain.ErrNotFound when no row matched.
type DonorRepository interface {
	CreateDonor(ctx context.Context, d domain.DonorProfile) (domain.DonorProfile, error)
	GetDonor(ctx context.Context, id string) (donor domain.DonorProfile, found bool, err error)
	// ListEligibleDonors returns active, verified donors in discovery order.
	ListEligibleDonors(ctx context.Context) ([]domain.DonorProfile, error)
	SetDonorVerification(ctx context.Context, id string, verified bool, hospitalID *string, at *time.Time) error
	SetDonorAvailability(ctx context.Context, id string, availability domain.Availability) error
}

// RecipientRepository stores recipient profiles.
type RecipientRepository interface {
	CreateRecipient(ctx context.Context, r domain.RecipientProfile) (domain.RecipientProfile, error)
	GetRecipient(ctx context.Context, id string) (recipient domain.RecipientProfile, found bool, err error)
	// ListVerifiedRecipients returns verified recipients needing one of organs,
	// in discovery order.
	ListVerifiedRecipients(ctx context.Context, organs []domain.Organ) ([]domain.RecipientProfile, error)
	SetRecipientVerification(ctx context.Context, id string, status domain.RequestStatus, hospitalID *string, at *time.Time) error
}

// HospitalRepository stores hospitals.
type HospitalRepository interface {
	CreateHospital(ctx context.Context, h domain.Hospital) (domain.Hospital, error)
	GetHospital(ctx context.Context, id string) (hospital domain.Hospital, found bool, err error)
}

// MatchFilter narrows ListMatches. Empty fields are ignored.
type MatchFilter struct {
	DonorID     string
	RecipientID string
	HospitalID  string
}

// MatchRepository stores match records. At most one record exists per
// donor/recipient pair.
type MatchRepository interface {
	// CreateMatch inserts m unless the pair already exists, in which case the
	// stored record is returned with created=false.
	CreateMatch(ctx context.Context, m domain.MatchRecord) (match domain.MatchRecord, created bool, err error)
	GetMatch(ctx context.Context, id string) (match domain.MatchRecord, found bool, err error)
	GetMatchByPair(ctx context.Context, donorID, recipientID string) (match domain.MatchRecord, found bool, err error)
	// UpdateMatch writes the workflow fields of m if the stored version equals
	// m.Version, returning domain.ErrConflict otherwise. On success m.Version
	// is advanced.
	UpdateMatch(ctx context.Context, m *domain.MatchRecord) error
	// SetConsentArtifact writes only the consent fields; the version is untouched.
	SetConsentArtifact(ctx context.Context, id string, url string, at time.Time) error
	ListMatches(ctx context.Context, f MatchFilter) ([]domain.MatchRecord, error)
}
