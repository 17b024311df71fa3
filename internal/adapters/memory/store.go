// Package memory implements the repository and outbox ports in process.
// It backs tests and local runs without DATABASE_URL and keeps the same
// uniqueness and versioning rules as the postgres adapter.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"organease/internal/domain"
	"organease/internal/ports"
)

var (
	_ ports.DonorRepository     = (*Store)(nil)
	_ ports.RecipientRepository = (*Store)(nil)
	_ ports.HospitalRepository  = (*Store)(nil)
	_ ports.MatchRepository     = (*Store)(nil)
	_ ports.JobRepository       = (*Store)(nil)
)

type Store struct {
	mu sync.RWMutex

	donors     map[string]domain.DonorProfile
	donorOrder []string

	recipients     map[string]domain.RecipientProfile
	recipientOrder []string

	hospitals map[string]domain.Hospital

	matches    map[string]domain.MatchRecord
	matchOrder []string
	pairs      map[[2]string]string

	jobs     map[string]*job
	jobOrder []string

	inbox map[string][]ports.Notification

	now func() time.Time
}

func New() *Store {
	return &Store{
		donors:     make(map[string]domain.DonorProfile),
		recipients: make(map[string]domain.RecipientProfile),
		hospitals:  make(map[string]domain.Hospital),
		matches:    make(map[string]domain.MatchRecord),
		pairs:      make(map[[2]string]string),
		jobs:       make(map[string]*job),
		inbox:      make(map[string][]ports.Notification),
		now:        time.Now,
	}
}

func newID() string { return uuid.New().String() }

// DonorRepository

func (s *Store) CreateDonor(ctx context.Context, d domain.DonorProfile) (domain.DonorProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = newID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = s.now()
	}
	d.Organs = append([]domain.Organ(nil), d.Organs...)
	if _, ok := s.donors[d.ID]; !ok {
		s.donorOrder = append(s.donorOrder, d.ID)
	}
	s.donors[d.ID] = d
	return d, nil
}

func (s *Store) GetDonor(ctx context.Context, id string) (domain.DonorProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.donors[id]
	return d, ok, nil
}

func (s *Store) ListEligibleDonors(ctx context.Context) ([]domain.DonorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.DonorProfile
	for _, id := range s.donorOrder {
		if d := s.donors[id]; d.Eligible() {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) SetDonorVerification(ctx context.Context, id string, verified bool, hospitalID *string, at *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.donors[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Verified = verified
	if verified {
		d.VerifiedBy = hospitalID
		d.VerifiedAt = at
	}
	s.donors[id] = d
	return nil
}

func (s *Store) SetDonorAvailability(ctx context.Context, id string, availability domain.Availability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.donors[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Availability = availability
	s.donors[id] = d
	return nil
}

// RecipientRepository

func (s *Store) CreateRecipient(ctx context.Context, r domain.RecipientProfile) (domain.RecipientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = newID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	if _, ok := s.recipients[r.ID]; !ok {
		s.recipientOrder = append(s.recipientOrder, r.ID)
	}
	s.recipients[r.ID] = r
	return r, nil
}

func (s *Store) GetRecipient(ctx context.Context, id string) (domain.RecipientProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipients[id]
	return r, ok, nil
}

func (s *Store) ListVerifiedRecipients(ctx context.Context, organs []domain.Organ) ([]domain.RecipientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := make(map[domain.Organ]bool, len(organs))
	for _, o := range organs {
		want[o] = true
	}
	var out []domain.RecipientProfile
	for _, id := range s.recipientOrder {
		r := s.recipients[id]
		if r.Verified && want[r.RequiredOrgan] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) SetRecipientVerification(ctx context.Context, id string, status domain.RequestStatus, hospitalID *string, at *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipients[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.RequestStatus = status
	r.Verified = status == domain.RequestVerified
	if r.Verified {
		r.VerifiedBy = hospitalID
		r.VerifiedAt = at
	}
	s.recipients[id] = r
	return nil
}

// HospitalRepository

func (s *Store) CreateHospital(ctx context.Context, h domain.Hospital) (domain.Hospital, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.ID == "" {
		h.ID = newID()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = s.now()
	}
	s.hospitals[h.ID] = h
	return h, nil
}

func (s *Store) GetHospital(ctx context.Context, id string) (domain.Hospital, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hospitals[id]
	return h, ok, nil
}
