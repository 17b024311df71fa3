package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"organease/internal/domain"
	"organease/internal/ports"
)

type consentPayload struct {
	MatchID string `json:"match_id"`
}

// ConsentDedupeKey identifies the pending consent job of a match.
func ConsentDedupeKey(matchID string) string { return "consent:" + matchID }

func (s *Service) enqueueConsent(ctx context.Context, matchID string) (string, bool, error) {
	payload, err := json.Marshal(consentPayload{MatchID: matchID})
	if err != nil {
		return "", false, err
	}
	return s.jobs.Enqueue(ctx, ports.Job{
		Kind:      ports.JobGenerateConsent,
		MatchID:   matchID,
		Payload:   payload,
		DedupeKey: ConsentDedupeKey(matchID),
	})
}

// notifyParties queues one notification for the donor and one for the
// recipient. Failures are logged and swallowed.
func (s *Service) notifyParties(ctx context.Context, m domain.MatchRecord, title, message string) {
	var users []string
	if d, found, err := s.donors.GetDonor(ctx, m.DonorID); err != nil {
		s.logger.Printf("match %s: load donor for notification: %v", m.ID, err)
	} else if found && d.UserID != "" {
		users = append(users, d.UserID)
	}
	if r, found, err := s.recipients.GetRecipient(ctx, m.RecipientID); err != nil {
		s.logger.Printf("match %s: load recipient for notification: %v", m.ID, err)
	} else if found && r.UserID != "" {
		users = append(users, r.UserID)
	}
	for _, u := range users {
		payload, err := json.Marshal(ports.Notification{
			UserID:    u,
			Title:     title,
			Message:   message,
			ActionURL: "/matches/" + m.ID,
		})
		if err != nil {
			s.logger.Printf("match %s: encode notification: %v", m.ID, err)
			continue
		}
		if _, _, err := s.jobs.Enqueue(ctx, ports.Job{Kind: ports.JobSendNotification, MatchID: m.ID, Payload: payload}); err != nil {
			s.logger.Printf("match %s: enqueue notification for user %s: %v", m.ID, u, err)
		}
	}
}

// RequestConsent queues consent generation on demand. enqueued is false when
// a generation for the match is already pending.
func (s *Service) RequestConsent(ctx context.Context, actor domain.Actor, matchID string) (jobID string, enqueued bool, err error) {
	m, found, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, fmt.Errorf("%w: match %s", domain.ErrNotFound, matchID)
	}
	if !actor.Party(m) {
		return "", false, fmt.Errorf("%w: not a party to match %s", domain.ErrUnauthorized, matchID)
	}
	if !m.MutuallyAccepted() {
		return "", false, invalid("consent requires hospital approval and both acceptances")
	}
	return s.enqueueConsent(ctx, matchID)
}

// GenerateConsent renders the consent artifact and records its location. It
// is what the outbox runs for consent jobs and is safe to repeat.
func (s *Service) GenerateConsent(ctx context.Context, matchID string) (string, error) {
	m, found, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: match %s", domain.ErrNotFound, matchID)
	}
	if !m.MutuallyAccepted() {
		return "", invalid("consent requires hospital approval and both acceptances")
	}
	in := ports.ConsentInput{Match: m}
	if in.Donor, found, err = s.donors.GetDonor(ctx, m.DonorID); err != nil {
		return "", err
	} else if !found {
		return "", fmt.Errorf("%w: donor %s", domain.ErrNotFound, m.DonorID)
	}
	if in.Recipient, found, err = s.recipients.GetRecipient(ctx, m.RecipientID); err != nil {
		return "", err
	} else if !found {
		return "", fmt.Errorf("%w: recipient %s", domain.ErrNotFound, m.RecipientID)
	}
	if m.HospitalID != nil {
		h, found, err := s.hospitals.GetHospital(ctx, *m.HospitalID)
		if err != nil {
			return "", err
		}
		if found {
			in.Hospital = &h
		}
	}
	url, err := s.consent.Generate(ctx, in)
	if err != nil {
		return "", fmt.Errorf("generate consent for match %s: %w", m.ID, err)
	}
	if err := s.matches.SetConsentArtifact(ctx, m.ID, url, s.now()); err != nil {
		return "", err
	}
	s.logger.Printf("match %s: consent artifact stored at %s", m.ID, url)
	return url, nil
}

// HandleConsentJob decodes a consent job payload and runs GenerateConsent.
func (s *Service) HandleConsentJob(ctx context.Context, job ports.Job) error {
	var p consentPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return fmt.Errorf("decode consent job %s: %w", job.ID, err)
	}
	if p.MatchID == "" {
		p.MatchID = job.MatchID
	}
	_, err := s.GenerateConsent(ctx, p.MatchID)
	return err
}
