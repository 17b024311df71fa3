package matching

import (
	"context"
	"fmt"
	"log"
	"sort"

	"organease/internal/domain"
	"organease/internal/ports"
	"organease/internal/services/scoring"
)

var _ ports.ProfileEventHandler = (*Service)(nil)

// Service finds and ranks donors for recipients and creates match records.
type Service struct {
	donors     ports.DonorRepository
	recipients ports.RecipientRepository
	matches    ports.MatchRepository
	logger     *log.Logger
}

func New(donors ports.DonorRepository, recipients ports.RecipientRepository, matches ports.MatchRepository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{donors: donors, recipients: recipients, matches: matches, logger: logger}
}

// FindCandidates ranks every eligible donor that can give the recipient's
// required organ, best score first. Equal scores keep discovery order.
func (s *Service) FindCandidates(ctx context.Context, recipientID string) ([]domain.MatchScore, error) {
	recipient, found, err := s.recipients.GetRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: recipient %s", domain.ErrNotFound, recipientID)
	}
	donors, err := s.donors.ListEligibleDonors(ctx)
	if err != nil {
		return nil, err
	}
	return rank(recipient, donors), nil
}

func rank(recipient domain.RecipientProfile, donors []domain.DonorProfile) []domain.MatchScore {
	out := make([]domain.MatchScore, 0, len(donors))
	for _, d := range donors {
		if !d.Eligible() {
			continue
		}
		if !d.Offers(recipient.RequiredOrgan) || !domain.BloodCompatible(d.BloodGroup, recipient.BloodGroup) {
			continue
		}
		out = append(out, domain.MatchScore{
			DonorID:     d.ID,
			RecipientID: recipient.ID,
			Organ:       recipient.RequiredOrgan,
			Score:       scoring.Score(d, recipient),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// PromoteTopCandidate creates (or returns the existing) match for the
// recipient's best candidate. It returns nil when there is no candidate.
func (s *Service) PromoteTopCandidate(ctx context.Context, recipientID string) (*domain.MatchRecord, error) {
	candidates, err := s.FindCandidates(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	top := candidates[0]
	m, err := s.CreateMatch(ctx, top.DonorID, top.RecipientID, top.Organ, top.Score)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMatch stores a candidate match awaiting hospital review. An existing
// record for the pair is returned unchanged.
func (s *Service) CreateMatch(ctx context.Context, donorID, recipientID string, organ domain.Organ, score int) (domain.MatchRecord, error) {
	existing, found, err := s.matches.GetMatchByPair(ctx, donorID, recipientID)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	if found {
		return existing, nil
	}
	donor, found, err := s.donors.GetDonor(ctx, donorID)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	if !found {
		return domain.MatchRecord{}, fmt.Errorf("%w: donor %s", domain.ErrNotFound, donorID)
	}
	recipient, found, err := s.recipients.GetRecipient(ctx, recipientID)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	if !found {
		return domain.MatchRecord{}, fmt.Errorf("%w: recipient %s", domain.ErrNotFound, recipientID)
	}
	if score < 0 || score > scoring.MaxScore {
		return domain.MatchRecord{}, fmt.Errorf("%w: score %d out of range", domain.ErrInvalidInput, score)
	}

	hospital := recipient.VerifiedBy
	if hospital == nil {
		hospital = donor.VerifiedBy
	}
	m, created, err := s.matches.CreateMatch(ctx, domain.MatchRecord{
		DonorID:     donorID,
		RecipientID: recipientID,
		Organ:       organ,
		Score:       score,
		Status:      domain.StatusMatched,
		HospitalID:  hospital,
	})
	if err != nil {
		return domain.MatchRecord{}, err
	}
	if created {
		s.logger.Printf("match %s created: donor=%s recipient=%s organ=%s score=%d", m.ID, donorID, recipientID, organ, score)
	}
	return m, nil
}

// HandleProfileVerified runs auto-matching for a newly verified profile.
//
// A verified recipient gets its single top candidate promoted. A verified
// donor gets a match with every verified recipient whose candidate list
// contains it, whether or not it ranks first there.
func (s *Service) HandleProfileVerified(ctx context.Context, ev domain.ProfileVerified) error {
	switch ev.ProfileType {
	case domain.ProfileRecipient:
		m, err := s.PromoteTopCandidate(ctx, ev.ProfileID)
		if err != nil {
			return err
		}
		if m == nil {
			s.logger.Printf("auto-match: no candidates for recipient %s", ev.ProfileID)
		}
		return nil
	case domain.ProfileDonor:
		_, err := s.MatchDonor(ctx, ev.ProfileID)
		return err
	}
	return fmt.Errorf("%w: profile type %q", domain.ErrInvalidInput, ev.ProfileType)
}

// MatchDonor creates matches between the donor and every verified recipient
// that lists it as a candidate. It returns the records touched, existing
// pairs included.
func (s *Service) MatchDonor(ctx context.Context, donorID string) ([]domain.MatchRecord, error) {
	donor, found, err := s.donors.GetDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: donor %s", domain.ErrNotFound, donorID)
	}
	recipients, err := s.recipients.ListVerifiedRecipients(ctx, donor.Organs)
	if err != nil {
		return nil, err
	}
	var pool []domain.DonorProfile
	var out []domain.MatchRecord
	for _, r := range recipients {
		if !donor.Offers(r.RequiredOrgan) || !domain.BloodCompatible(donor.BloodGroup, r.BloodGroup) {
			continue
		}
		if pool == nil {
			if pool, err = s.donors.ListEligibleDonors(ctx); err != nil {
				return out, err
			}
		}
		for _, c := range rank(r, pool) {
			if c.DonorID != donorID {
				continue
			}
			m, err := s.CreateMatch(ctx, c.DonorID, c.RecipientID, c.Organ, c.Score)
			if err != nil {
				return out, err
			}
			out = append(out, m)
			break
		}
	}
	return out, nil
}
