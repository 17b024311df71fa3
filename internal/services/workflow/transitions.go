package workflow

import (
	"context"
	"fmt"
	"time"

	"organease/internal/domain"
)

// Approve records the hospital's approval of a candidate match.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, matchID, notes string) (domain.MatchRecord, error) {
	_, m, err := s.mutate(ctx, matchID, func(m *domain.MatchRecord) error {
		if err := authorizeHospital(actor, *m); err != nil {
			return err
		}
		if st := domain.DeriveState(*m); st != domain.StateCandidate {
			return invalid("cannot approve a match in state %s", st)
		}
		now := s.now()
		hospital := actor.ProfileID
		m.HospitalID = &hospital
		m.HospitalApproved = true
		m.ApprovedAt = &now
		m.HospitalNotes = notes
		m.Status = domain.StatusApproved
		return nil
	})
	if err != nil {
		return m, err
	}
	s.logger.Printf("match %s approved by hospital %s", m.ID, actor.ProfileID)
	s.notifyParties(ctx, m, "Match approved",
		"The hospital approved your match. Please review it and accept to continue.")
	return m, nil
}

// Reject closes a candidate match. Rejection is terminal.
func (s *Service) Reject(ctx context.Context, actor domain.Actor, matchID, notes string) (domain.MatchRecord, error) {
	_, m, err := s.mutate(ctx, matchID, func(m *domain.MatchRecord) error {
		if err := authorizeHospital(actor, *m); err != nil {
			return err
		}
		if st := domain.DeriveState(*m); st != domain.StateCandidate {
			return invalid("cannot reject a match in state %s", st)
		}
		hospital := actor.ProfileID
		m.HospitalID = &hospital
		m.HospitalApproved = false
		m.ApprovedAt = nil
		m.HospitalNotes = notes
		m.Status = domain.StatusRejected
		return nil
	})
	if err != nil {
		return m, err
	}
	s.logger.Printf("match %s rejected by hospital %s", m.ID, actor.ProfileID)
	return m, nil
}

// Accept records acceptance by the calling donor or recipient.
func (s *Service) Accept(ctx context.Context, actor domain.Actor, matchID string) (domain.MatchRecord, error) {
	switch actor.Role {
	case domain.RoleDonor:
		return s.AcceptAsDonor(ctx, actor, matchID)
	case domain.RoleRecipient:
		return s.AcceptAsRecipient(ctx, actor, matchID)
	}
	return domain.MatchRecord{}, fmt.Errorf("%w: only the donor or recipient may accept", domain.ErrUnauthorized)
}

func (s *Service) AcceptAsDonor(ctx context.Context, actor domain.Actor, matchID string) (domain.MatchRecord, error) {
	return s.accept(ctx, actor, matchID, domain.RoleDonor)
}

func (s *Service) AcceptAsRecipient(ctx context.Context, actor domain.Actor, matchID string) (domain.MatchRecord, error) {
	return s.accept(ctx, actor, matchID, domain.RoleRecipient)
}

func (s *Service) accept(ctx context.Context, actor domain.Actor, matchID string, role domain.Role) (domain.MatchRecord, error) {
	before, m, err := s.mutate(ctx, matchID, func(m *domain.MatchRecord) error {
		if actor.Role != role || !actor.Party(*m) {
			return fmt.Errorf("%w: not the %s on match %s", domain.ErrUnauthorized, role, m.ID)
		}
		if !m.HospitalApproved || m.Status == domain.StatusRejected {
			return invalid("match %s is not approved by the hospital", m.ID)
		}
		if m.CompletedAt != nil {
			return invalid("match %s is completed", m.ID)
		}
		now := s.now()
		switch role {
		case domain.RoleDonor:
			if m.DonorAccepted {
				return errUnchanged
			}
			m.DonorAccepted = true
			m.DonorAcceptedAt = &now
		case domain.RoleRecipient:
			if m.RecipientAccepted {
				return errUnchanged
			}
			m.RecipientAccepted = true
			m.RecipientAcceptedAt = &now
		}
		return nil
	})
	if err != nil {
		return m, err
	}
	if before.Version == m.Version {
		return m, nil
	}
	s.logger.Printf("match %s accepted by %s %s", m.ID, role, actor.ProfileID)
	// Only the write that sets the second flag sees this edge.
	if !before.MutuallyAccepted() && m.MutuallyAccepted() {
		s.onMutuallyAccepted(ctx, m)
	}
	return m, nil
}

func (s *Service) onMutuallyAccepted(ctx context.Context, m domain.MatchRecord) {
	if _, _, err := s.enqueueConsent(ctx, m.ID); err != nil {
		s.logger.Printf("match %s: enqueue consent generation: %v", m.ID, err)
	}
	s.notifyParties(ctx, m, "Match confirmed",
		"Both parties accepted the match. The hospital will schedule the next steps.")
}

// ScheduleTest sets, or moves, the compatibility test date.
func (s *Service) ScheduleTest(ctx context.Context, actor domain.Actor, matchID string, at time.Time) (domain.MatchRecord, error) {
	_, m, err := s.mutate(ctx, matchID, func(m *domain.MatchRecord) error {
		if err := authorizeHospital(actor, *m); err != nil {
			return err
		}
		if at.IsZero() {
			return invalid("test date is required")
		}
		switch st := domain.DeriveState(*m); st {
		case domain.StateMutuallyAccepted, domain.StateTestScheduled:
		case domain.StateProcedureScheduled:
			if at.After(*m.ProcedureScheduledAt) {
				return invalid("test date %s is after the scheduled procedure", at.Format(time.RFC3339))
			}
		default:
			return invalid("cannot schedule a test for a match in state %s", st)
		}
		m.TestScheduledAt = &at
		return nil
	})
	if err != nil {
		return m, err
	}
	s.notifyParties(ctx, m, "Test scheduled",
		fmt.Sprintf("A compatibility test is scheduled for %s.", at.Format("Jan 2, 2006 15:04 MST")))
	return m, nil
}

// ScheduleProcedure sets, or moves, the procedure date. It must not precede
// the test.
func (s *Service) ScheduleProcedure(ctx context.Context, actor domain.Actor, matchID string, at time.Time) (domain.MatchRecord, error) {
	_, m, err := s.mutate(ctx, matchID, func(m *domain.MatchRecord) error {
		if err := authorizeHospital(actor, *m); err != nil {
			return err
		}
		if at.IsZero() {
			return invalid("procedure date is required")
		}
		switch st := domain.DeriveState(*m); st {
		case domain.StateTestScheduled, domain.StateProcedureScheduled:
		default:
			return invalid("cannot schedule a procedure for a match in state %s", st)
		}
		if at.Before(*m.TestScheduledAt) {
			return invalid("procedure date %s is before the test date %s",
				at.Format(time.RFC3339), m.TestScheduledAt.Format(time.RFC3339))
		}
		m.ProcedureScheduledAt = &at
		return nil
	})
	if err != nil {
		return m, err
	}
	s.notifyParties(ctx, m, "Procedure scheduled",
		fmt.Sprintf("The procedure is scheduled for %s.", at.Format("Jan 2, 2006 15:04 MST")))
	return m, nil
}

// Complete marks the procedure done. Completion is terminal.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, matchID string) (domain.MatchRecord, error) {
	_, m, err := s.mutate(ctx, matchID, func(m *domain.MatchRecord) error {
		if err := authorizeHospital(actor, *m); err != nil {
			return err
		}
		if st := domain.DeriveState(*m); st != domain.StateProcedureScheduled {
			return invalid("cannot complete a match in state %s", st)
		}
		now := s.now()
		m.CompletedAt = &now
		m.Status = domain.StatusCompleted
		return nil
	})
	if err != nil {
		return m, err
	}
	s.logger.Printf("match %s completed", m.ID)
	s.notifyParties(ctx, m, "Procedure completed", "The hospital marked the procedure as completed.")
	return m, nil
}
