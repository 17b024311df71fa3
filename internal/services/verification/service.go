package verification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"organease/internal/domain"
	"organease/internal/ports"
)

// Service lets hospital staff verify or reject donor and recipient profiles.
// A successful verification is published as a domain.ProfileVerified event;
// handler failures are logged and do not undo the verification.
type Service struct {
	donors     ports.DonorRepository
	recipients ports.RecipientRepository
	handlers   []ports.ProfileEventHandler
	logger     *log.Logger
	now        func() time.Time
}

func New(donors ports.DonorRepository, recipients ports.RecipientRepository, logger *log.Logger, handlers ...ports.ProfileEventHandler) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{donors: donors, recipients: recipients, handlers: handlers, logger: logger, now: time.Now}
}

func requireHospital(actor domain.Actor) error {
	if actor.Role != domain.RoleHospital || actor.ProfileID == "" {
		return fmt.Errorf("%w: hospital staff only", domain.ErrUnauthorized)
	}
	return nil
}

func (s *Service) VerifyDonor(ctx context.Context, actor domain.Actor, donorID string) (domain.DonorProfile, error) {
	if err := requireHospital(actor); err != nil {
		return domain.DonorProfile{}, err
	}
	hospital := actor.ProfileID
	now := s.now()
	if err := s.donors.SetDonorVerification(ctx, donorID, true, &hospital, &now); err != nil {
		return domain.DonorProfile{}, wrapMissing(err, "donor", donorID)
	}
	s.logger.Printf("donor %s verified by hospital %s", donorID, hospital)
	s.publish(ctx, domain.ProfileVerified{ProfileType: domain.ProfileDonor, ProfileID: donorID, HospitalID: hospital, At: now})
	return s.donor(ctx, donorID)
}

func (s *Service) RejectDonor(ctx context.Context, actor domain.Actor, donorID string) (domain.DonorProfile, error) {
	if err := requireHospital(actor); err != nil {
		return domain.DonorProfile{}, err
	}
	if err := s.donors.SetDonorVerification(ctx, donorID, false, nil, nil); err != nil {
		return domain.DonorProfile{}, wrapMissing(err, "donor", donorID)
	}
	s.logger.Printf("donor %s rejected by hospital %s", donorID, actor.ProfileID)
	return s.donor(ctx, donorID)
}

func (s *Service) VerifyRecipient(ctx context.Context, actor domain.Actor, recipientID string) (domain.RecipientProfile, error) {
	if err := requireHospital(actor); err != nil {
		return domain.RecipientProfile{}, err
	}
	hospital := actor.ProfileID
	now := s.now()
	if err := s.recipients.SetRecipientVerification(ctx, recipientID, domain.RequestVerified, &hospital, &now); err != nil {
		return domain.RecipientProfile{}, wrapMissing(err, "recipient", recipientID)
	}
	s.logger.Printf("recipient %s verified by hospital %s", recipientID, hospital)
	s.publish(ctx, domain.ProfileVerified{ProfileType: domain.ProfileRecipient, ProfileID: recipientID, HospitalID: hospital, At: now})
	return s.recipient(ctx, recipientID)
}

func (s *Service) RejectRecipient(ctx context.Context, actor domain.Actor, recipientID string) (domain.RecipientProfile, error) {
	if err := requireHospital(actor); err != nil {
		return domain.RecipientProfile{}, err
	}
	if err := s.recipients.SetRecipientVerification(ctx, recipientID, domain.RequestRejected, nil, nil); err != nil {
		return domain.RecipientProfile{}, wrapMissing(err, "recipient", recipientID)
	}
	s.logger.Printf("recipient %s rejected by hospital %s", recipientID, actor.ProfileID)
	return s.recipient(ctx, recipientID)
}

func (s *Service) publish(ctx context.Context, ev domain.ProfileVerified) {
	for _, h := range s.handlers {
		if err := h.HandleProfileVerified(ctx, ev); err != nil {
			s.logger.Printf("auto-match for %s %s failed: %v", ev.ProfileType, ev.ProfileID, err)
		}
	}
}

func (s *Service) donor(ctx context.Context, id string) (domain.DonorProfile, error) {
	d, found, err := s.donors.GetDonor(ctx, id)
	if err != nil {
		return d, err
	}
	if !found {
		return d, fmt.Errorf("%w: donor %s", domain.ErrNotFound, id)
	}
	return d, nil
}

func (s *Service) recipient(ctx context.Context, id string) (domain.RecipientProfile, error) {
	r, found, err := s.recipients.GetRecipient(ctx, id)
	if err != nil {
		return r, err
	}
	if !found {
		return r, fmt.Errorf("%w: recipient %s", domain.ErrNotFound, id)
	}
	return r, nil
}

func wrapMissing(err error, kind, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
	}
	return err
}
