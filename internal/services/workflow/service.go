// Package workflow advances a match from hospital review through mutual
// acceptance, scheduling and completion.
//
// Workflow state is never stored as such: it is derived from the approval and
// acceptance flags and the scheduling timestamps (domain.DeriveState). Every
// transition is a versioned read-modify-write, so two parties writing at the
// same time cannot lose each other's flags. Side effects (notifications and
// consent generation) go through the outbox after the write is durable and
// never fail the transition.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"organease/internal/domain"
	"organease/internal/ports"
)

const maxWriteAttempts = 5

// errUnchanged short-circuits a mutation that would be a no-op.
var errUnchanged = errors.New("unchanged")

type Deps struct {
	Matches    ports.MatchRepository
	Donors     ports.DonorRepository
	Recipients ports.RecipientRepository
	Hospitals  ports.HospitalRepository
	Jobs       ports.JobRepository
	Consent    ports.ConsentGenerator
	Logger     *log.Logger
	Now        func() time.Time
}

type Service struct {
	matches    ports.MatchRepository
	donors     ports.DonorRepository
	recipients ports.RecipientRepository
	hospitals  ports.HospitalRepository
	jobs       ports.JobRepository
	consent    ports.ConsentGenerator
	logger     *log.Logger
	now        func() time.Time
}

func New(d Deps) *Service {
	s := &Service{
		matches:    d.Matches,
		donors:     d.Donors,
		recipients: d.Recipients,
		hospitals:  d.Hospitals,
		jobs:       d.Jobs,
		consent:    d.Consent,
		logger:     d.Logger,
		now:        d.Now,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// View is a match as shown to one of its parties.
type View struct {
	domain.MatchRecord
	State          domain.State
	CanCommunicate bool
}

func viewOf(m domain.MatchRecord) View {
	return View{MatchRecord: m, State: domain.DeriveState(m), CanCommunicate: m.CanCommunicate()}
}

// mutate loads the match, applies fn and writes it back, retrying on version
// conflicts. fn must only touch its argument.
func (s *Service) mutate(ctx context.Context, matchID string, fn func(m *domain.MatchRecord) error) (before, after domain.MatchRecord, err error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		m, found, err := s.matches.GetMatch(ctx, matchID)
		if err != nil {
			return before, after, err
		}
		if !found {
			return before, after, fmt.Errorf("%w: match %s", domain.ErrNotFound, matchID)
		}
		before = m
		if err := fn(&m); err != nil {
			if errors.Is(err, errUnchanged) {
				return before, before, nil
			}
			return before, before, err
		}
		err = s.matches.UpdateMatch(ctx, &m)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return before, before, err
		}
		return before, m, nil
	}
	return before, before, fmt.Errorf("%w: match %s after %d attempts", domain.ErrConflict, matchID, maxWriteAttempts)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidTransition, fmt.Sprintf(format, args...))
}

func authorizeHospital(actor domain.Actor, m domain.MatchRecord) error {
	if actor.Role != domain.RoleHospital || actor.ProfileID == "" {
		return fmt.Errorf("%w: hospital staff only", domain.ErrUnauthorized)
	}
	if m.HospitalID != nil && *m.HospitalID != actor.ProfileID {
		return fmt.Errorf("%w: match belongs to another hospital", domain.ErrUnauthorized)
	}
	return nil
}

func visible(actor domain.Actor, m domain.MatchRecord) bool {
	if actor.Party(m) {
		return true
	}
	return actor.Role == domain.RoleHospital && m.HospitalID == nil
}

// Get returns the match if the actor is one of its parties.
func (s *Service) Get(ctx context.Context, actor domain.Actor, matchID string) (View, error) {
	m, found, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return View{}, err
	}
	if !found {
		return View{}, fmt.Errorf("%w: match %s", domain.ErrNotFound, matchID)
	}
	if !visible(actor, m) {
		return View{}, fmt.Errorf("%w: not a party to match %s", domain.ErrUnauthorized, matchID)
	}
	return viewOf(m), nil
}

// List returns the actor's matches.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]View, error) {
	var f ports.MatchFilter
	switch actor.Role {
	case domain.RoleDonor:
		f.DonorID = actor.ProfileID
	case domain.RoleRecipient:
		f.RecipientID = actor.ProfileID
	case domain.RoleHospital:
		f.HospitalID = actor.ProfileID
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, actor.Role)
	}
	if actor.ProfileID == "" {
		return nil, fmt.Errorf("%w: no profile", domain.ErrUnauthorized)
	}
	ms, err := s.matches.ListMatches(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(ms))
	for _, m := range ms {
		out = append(out, viewOf(m))
	}
	return out, nil
}
