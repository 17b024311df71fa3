package profiles

import (
	"context"
	"fmt"
	"strings"

	"organease/internal/domain"
	"organease/internal/ports"
)

// Service registers and looks up donor, recipient and hospital profiles.
type Service struct {
	donors     ports.DonorRepository
	recipients ports.RecipientRepository
	hospitals  ports.HospitalRepository
}

func New(donors ports.DonorRepository, recipients ports.RecipientRepository, hospitals ports.HospitalRepository) *Service {
	return &Service{donors: donors, recipients: recipients, hospitals: hospitals}
}

const maxAge = 120

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validLocation(l domain.Location) error {
	if strings.TrimSpace(l.State) == "" {
		return invalidf("state is required")
	}
	return nil
}

// RegisterDonor stores a new, unverified donor profile.
func (s *Service) RegisterDonor(ctx context.Context, d domain.DonorProfile) (domain.DonorProfile, error) {
	if !d.BloodGroup.Valid() {
		return d, invalidf("unknown blood group %q", d.BloodGroup)
	}
	if len(d.Organs) == 0 {
		return d, invalidf("at least one organ must be offered")
	}
	seen := make(map[domain.Organ]bool, len(d.Organs))
	organs := d.Organs[:0:0]
	for _, o := range d.Organs {
		if !o.Valid() {
			return d, invalidf("unknown organ %q", o)
		}
		if !seen[o] {
			seen[o] = true
			organs = append(organs, o)
		}
	}
	d.Organs = organs
	if d.Age < 0 || d.Age > maxAge {
		return d, invalidf("age %d out of range", d.Age)
	}
	if err := validLocation(d.Location); err != nil {
		return d, err
	}
	if d.Availability == "" {
		d.Availability = domain.AvailabilityActive
	}
	d.ID = ""
	d.Verified, d.VerifiedBy, d.VerifiedAt = false, nil, nil
	return s.donors.CreateDonor(ctx, d)
}

// RegisterRecipient stores a new organ request awaiting verification.
func (s *Service) RegisterRecipient(ctx context.Context, r domain.RecipientProfile) (domain.RecipientProfile, error) {
	if !r.BloodGroup.Valid() {
		return r, invalidf("unknown blood group %q", r.BloodGroup)
	}
	if !r.RequiredOrgan.Valid() {
		return r, invalidf("unknown organ %q", r.RequiredOrgan)
	}
	if r.Age < 0 || r.Age > maxAge {
		return r, invalidf("age %d out of range", r.Age)
	}
	if err := validLocation(r.Location); err != nil {
		return r, err
	}
	switch r.Priority {
	case "":
		r.Priority = domain.PriorityNormal
	case domain.PriorityNormal, domain.PriorityHigh, domain.PriorityEmergency:
	default:
		return r, invalidf("unknown priority %q", r.Priority)
	}
	r.ID = ""
	r.RequestStatus = domain.RequestPending
	r.Verified, r.VerifiedBy, r.VerifiedAt = false, nil, nil
	return s.recipients.CreateRecipient(ctx, r)
}

func (s *Service) RegisterHospital(ctx context.Context, h domain.Hospital) (domain.Hospital, error) {
	if strings.TrimSpace(h.Name) == "" {
		return h, invalidf("hospital name is required")
	}
	if err := validLocation(h.Location); err != nil {
		return h, err
	}
	h.ID = ""
	return s.hospitals.CreateHospital(ctx, h)
}

// SetDonorAvailability pauses or resumes a donor. Only the donor may do so.
func (s *Service) SetDonorAvailability(ctx context.Context, actor domain.Actor, donorID string, a domain.Availability) (domain.DonorProfile, error) {
	if actor.Role != domain.RoleDonor || actor.ProfileID != donorID {
		return domain.DonorProfile{}, fmt.Errorf("%w: only the donor may change availability", domain.ErrUnauthorized)
	}
	if a != domain.AvailabilityActive && a != domain.AvailabilityPaused {
		return domain.DonorProfile{}, invalidf("unknown availability %q", a)
	}
	if err := s.donors.SetDonorAvailability(ctx, donorID, a); err != nil {
		return domain.DonorProfile{}, err
	}
	return s.Donor(ctx, donorID)
}

func (s *Service) Donor(ctx context.Context, id string) (domain.DonorProfile, error) {
	d, found, err := s.donors.GetDonor(ctx, id)
	if err != nil {
		return d, err
	}
	if !found {
		return d, fmt.Errorf("%w: donor %s", domain.ErrNotFound, id)
	}
	return d, nil
}

func (s *Service) Recipient(ctx context.Context, id string) (domain.RecipientProfile, error) {
	r, found, err := s.recipients.GetRecipient(ctx, id)
	if err != nil {
		return r, err
	}
	if !found {
		return r, fmt.Errorf("%w: recipient %s", domain.ErrNotFound, id)
	}
	return r, nil
}

func (s *Service) Hospital(ctx context.Context, id string) (domain.Hospital, error) {
	h, found, err := s.hospitals.GetHospital(ctx, id)
	if err != nil {
		return h, err
	}
	if !found {
		return h, fmt.Errorf("%w: hospital %s", domain.ErrNotFound, id)
	}
	return h, nil
}
