package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	api "organease/internal/api"
	"organease/internal/domain"
	"organease/internal/services/scoring"
	"organease/internal/workers/outbox"
)

var missingBody = &requestError{status: http.StatusBadRequest, msg: "missing body"}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

// Profiles

func (s *Server) PostDonors(ctx context.Context, req api.PostDonorsRequestObject) (api.PostDonorsResponseObject, error) {
	actor := actorFrom(ctx)
	if actor.Role != domain.RoleDonor {
		return nil, fmt.Errorf("%w: only donors can register a donor profile", domain.ErrUnauthorized)
	}
	if req.Body == nil {
		return nil, missingBody
	}
	d, err := s.Profiles.RegisterDonor(ctx, donorProfile(*req.Body, actor.UserID))
	if err != nil {
		return nil, err
	}
	return api.PostDonors201JSONResponse(donorDTO(d)), nil
}

func (s *Server) GetDonorsId(ctx context.Context, req api.GetDonorsIdRequestObject) (api.GetDonorsIdResponseObject, error) {
	d, err := s.Profiles.Donor(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetDonorsId200JSONResponse(donorDTO(d)), nil
}

func (s *Server) PutDonorsIdAvailability(ctx context.Context, req api.PutDonorsIdAvailabilityRequestObject) (api.PutDonorsIdAvailabilityResponseObject, error) {
	if req.Body == nil {
		return nil, missingBody
	}
	d, err := s.Profiles.SetDonorAvailability(ctx, actorFrom(ctx), req.Id.String(), domain.Availability(req.Body.Availability))
	if err != nil {
		return nil, err
	}
	return api.PutDonorsIdAvailability200JSONResponse(donorDTO(d)), nil
}

func (s *Server) PostRecipients(ctx context.Context, req api.PostRecipientsRequestObject) (api.PostRecipientsResponseObject, error) {
	actor := actorFrom(ctx)
	if actor.Role != domain.RoleRecipient {
		return nil, fmt.Errorf("%w: only recipients can register an organ request", domain.ErrUnauthorized)
	}
	if req.Body == nil {
		return nil, missingBody
	}
	rec, err := s.Profiles.RegisterRecipient(ctx, recipientProfile(*req.Body, actor.UserID))
	if err != nil {
		return nil, err
	}
	return api.PostRecipients201JSONResponse(recipientDTO(rec)), nil
}

func (s *Server) GetRecipientsId(ctx context.Context, req api.GetRecipientsIdRequestObject) (api.GetRecipientsIdResponseObject, error) {
	rec, err := s.Profiles.Recipient(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetRecipientsId200JSONResponse(recipientDTO(rec)), nil
}

func (s *Server) PostHospitals(ctx context.Context, req api.PostHospitalsRequestObject) (api.PostHospitalsResponseObject, error) {
	actor := actorFrom(ctx)
	if actor.Role != domain.RoleHospital {
		return nil, fmt.Errorf("%w: only hospital accounts can register a hospital", domain.ErrUnauthorized)
	}
	if req.Body == nil {
		return nil, missingBody
	}
	h, err := s.Profiles.RegisterHospital(ctx, domain.Hospital{
		UserID: actor.UserID, Name: req.Body.Name,
		Location: domain.Location{City: deref(req.Body.City), State: req.Body.State},
	})
	if err != nil {
		return nil, err
	}
	return api.PostHospitals201JSONResponse(hospitalDTO(h)), nil
}

func (s *Server) GetHospitalsId(ctx context.Context, req api.GetHospitalsIdRequestObject) (api.GetHospitalsIdResponseObject, error) {
	h, err := s.Profiles.Hospital(ctx, req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetHospitalsId200JSONResponse(hospitalDTO(h)), nil
}

// Verification

func (s *Server) PostDonorsIdVerify(ctx context.Context, req api.PostDonorsIdVerifyRequestObject) (api.PostDonorsIdVerifyResponseObject, error) {
	d, err := s.Verification.VerifyDonor(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.PostDonorsIdVerify200JSONResponse(donorDTO(d)), nil
}

func (s *Server) PostDonorsIdReject(ctx context.Context, req api.PostDonorsIdRejectRequestObject) (api.PostDonorsIdRejectResponseObject, error) {
	d, err := s.Verification.RejectDonor(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.PostDonorsIdReject200JSONResponse(donorDTO(d)), nil
}

func (s *Server) PostRecipientsIdVerify(ctx context.Context, req api.PostRecipientsIdVerifyRequestObject) (api.PostRecipientsIdVerifyResponseObject, error) {
	rec, err := s.Verification.VerifyRecipient(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.PostRecipientsIdVerify200JSONResponse(recipientDTO(rec)), nil
}

func (s *Server) PostRecipientsIdReject(ctx context.Context, req api.PostRecipientsIdRejectRequestObject) (api.PostRecipientsIdRejectResponseObject, error) {
	rec, err := s.Verification.RejectRecipient(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.PostRecipientsIdReject200JSONResponse(recipientDTO(rec)), nil
}

// Matching

// candidateViewer allows hospitals and the recipient themselves.
func candidateViewer(actor domain.Actor, recipientID string) error {
	if actor.Role == domain.RoleHospital || (actor.Role == domain.RoleRecipient && actor.ProfileID == recipientID) {
		return nil
	}
	return fmt.Errorf("%w: candidates are visible to hospitals and the recipient", domain.ErrUnauthorized)
}

func (s *Server) GetRecipientsIdCandidates(ctx context.Context, req api.GetRecipientsIdCandidatesRequestObject) (api.GetRecipientsIdCandidatesResponseObject, error) {
	id := req.Id.String()
	if err := candidateViewer(actorFrom(ctx), id); err != nil {
		return nil, err
	}
	scores, err := s.Matching.FindCandidates(ctx, id)
	if err != nil {
		return nil, err
	}
	if limit := deref(req.Params.Limit); limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	rec, err := s.Profiles.Recipient(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make(api.GetRecipientsIdCandidates200JSONResponse, 0, len(scores))
	for _, sc := range scores {
		d, err := s.Profiles.Donor(ctx, sc.DonorID)
		if err != nil {
			return nil, err
		}
		out = append(out, candidateDTO(sc, scoring.Explain(d, rec)))
	}
	return out, nil
}

// PostRecipientsIdMatches lets a hospital turn a candidate into a match
// record. Without a donor_id the top candidate is promoted.
func (s *Server) PostRecipientsIdMatches(ctx context.Context, req api.PostRecipientsIdMatchesRequestObject) (api.PostRecipientsIdMatchesResponseObject, error) {
	id := req.Id.String()
	if actorFrom(ctx).Role != domain.RoleHospital {
		return nil, fmt.Errorf("%w: hospital actor required", domain.ErrUnauthorized)
	}
	donorID := ""
	if req.Body != nil {
		donorID = deref(req.Body.DonorId)
	}
	if donorID == "" {
		m, err := s.Matching.PromoteTopCandidate(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: no compatible donor for recipient %s", domain.ErrNotFound, id)
		}
		return api.PostRecipientsIdMatches201JSONResponse(matchDTO(*m)), nil
	}
	scores, err := s.Matching.FindCandidates(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, sc := range scores {
		if sc.DonorID != donorID {
			continue
		}
		m, err := s.Matching.CreateMatch(ctx, sc.DonorID, sc.RecipientID, sc.Organ, sc.Score)
		if err != nil {
			return nil, err
		}
		return api.PostRecipientsIdMatches201JSONResponse(matchDTO(m)), nil
	}
	return nil, fmt.Errorf("%w: donor %s is not a candidate for recipient %s", domain.ErrInvalidInput, donorID, id)
}

// Workflow

func (s *Server) GetMatches(ctx context.Context, _ api.GetMatchesRequestObject) (api.GetMatchesResponseObject, error) {
	views, err := s.Workflow.List(ctx, actorFrom(ctx))
	if err != nil {
		return nil, err
	}
	out := make(api.GetMatches200JSONResponse, 0, len(views))
	for _, v := range views {
		out = append(out, viewDTO(v))
	}
	return out, nil
}

func (s *Server) GetMatchesId(ctx context.Context, req api.GetMatchesIdRequestObject) (api.GetMatchesIdResponseObject, error) {
	v, err := s.Workflow.Get(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.GetMatchesId200JSONResponse(viewDTO(v)), nil
}

func notes(body *api.Notes) string {
	if body == nil {
		return ""
	}
	return deref(body.Notes)
}

func scheduled(body *api.Schedule) (time.Time, error) {
	if body == nil || body.At.IsZero() {
		return time.Time{}, fmt.Errorf("%w: at is required", domain.ErrInvalidInput)
	}
	return body.At, nil
}

func (s *Server) PostMatchesIdApprove(ctx context.Context, req api.PostMatchesIdApproveRequestObject) (api.PostMatchesIdApproveResponseObject, error) {
	m, err := s.Workflow.Approve(ctx, actorFrom(ctx), req.Id.String(), notes(req.Body))
	if err != nil {
		return nil, err
	}
	return api.PostMatchesIdApprove200JSONResponse(matchDTO(m)), nil
}

func (s *Server) PostMatchesIdReject(ctx context.Context, req api.PostMatchesIdRejectRequestObject) (api.PostMatchesIdRejectResponseObject, error) {
	m, err := s.Workflow.Reject(ctx, actorFrom(ctx), req.Id.String(), notes(req.Body))
	if err != nil {
		return nil, err
	}
	return api.PostMatchesIdReject200JSONResponse(matchDTO(m)), nil
}

func (s *Server) PostMatchesIdAccept(ctx context.Context, req api.PostMatchesIdAcceptRequestObject) (api.PostMatchesIdAcceptResponseObject, error) {
	m, err := s.Workflow.Accept(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.PostMatchesIdAccept200JSONResponse(matchDTO(m)), nil
}

func (s *Server) PostMatchesIdScheduleTest(ctx context.Context, req api.PostMatchesIdScheduleTestRequestObject) (api.PostMatchesIdScheduleTestResponseObject, error) {
	at, err := scheduled(req.Body)
	if err != nil {
		return nil, err
	}
	m, err := s.Workflow.ScheduleTest(ctx, actorFrom(ctx), req.Id.String(), at)
	if err != nil {
		return nil, err
	}
	return api.PostMatchesIdScheduleTest200JSONResponse(matchDTO(m)), nil
}

func (s *Server) PostMatchesIdScheduleProcedure(ctx context.Context, req api.PostMatchesIdScheduleProcedureRequestObject) (api.PostMatchesIdScheduleProcedureResponseObject, error) {
	at, err := scheduled(req.Body)
	if err != nil {
		return nil, err
	}
	m, err := s.Workflow.ScheduleProcedure(ctx, actorFrom(ctx), req.Id.String(), at)
	if err != nil {
		return nil, err
	}
	return api.PostMatchesIdScheduleProcedure200JSONResponse(matchDTO(m)), nil
}

func (s *Server) PostMatchesIdComplete(ctx context.Context, req api.PostMatchesIdCompleteRequestObject) (api.PostMatchesIdCompleteResponseObject, error) {
	m, err := s.Workflow.Complete(ctx, actorFrom(ctx), req.Id.String())
	if err != nil {
		return nil, err
	}
	return api.PostMatchesIdComplete200JSONResponse(matchDTO(m)), nil
}

// PostMatchesIdConsent queues consent generation; with wait=true the job runs
// inline and the stored artifact url is returned.
func (s *Server) PostMatchesIdConsent(ctx context.Context, req api.PostMatchesIdConsentRequestObject) (api.PostMatchesIdConsentResponseObject, error) {
	id := req.Id.String()
	actor := actorFrom(ctx)
	jobID, enqueued, err := s.Workflow.RequestConsent(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := api.ConsentStatus{JobId: optional(jobID), Enqueued: enqueued, Status: "queued"}
	if !deref(req.Params.Wait) || s.Jobs == nil || s.Outbox == nil {
		return api.PostMatchesIdConsent202JSONResponse(resp), nil
	}

	// Apply a bound to the inline run
	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	processed, err := outbox.ProcessInline(ctx2, s.Jobs, s.Outbox, jobID, s.MaxAttempts, s.Logger)
	if err != nil {
		return nil, err
	}
	if !processed {
		// a worker already holds the job
		resp.Status = "running"
		return api.PostMatchesIdConsent202JSONResponse(resp), nil
	}
	v, err := s.Workflow.Get(ctx2, actor, id)
	if err != nil {
		return nil, err
	}
	resp.Status, resp.ConsentUrl = "completed", v.ConsentURL
	return api.PostMatchesIdConsent200JSONResponse(resp), nil
}

func (s *Server) GetMatchesIdConsent(ctx context.Context, req api.GetMatchesIdConsentRequestObject) (api.GetMatchesIdConsentResponseObject, error) {
	id := req.Id.String()
	v, err := s.Workflow.Get(ctx, actorFrom(ctx), id)
	if err != nil {
		return nil, err
	}
	if v.ConsentURL == nil || s.Documents == nil {
		return nil, fmt.Errorf("%w: no consent document for match %s", domain.ErrNotFound, id)
	}
	doc, size, err := s.Documents.Open(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	return api.GetMatchesIdConsent200ApplicationpdfResponse{Body: doc, ContentLength: size}, nil
}

// Notifications

func (s *Server) GetNotifications(ctx context.Context, req api.GetNotificationsRequestObject) (api.GetNotificationsResponseObject, error) {
	if s.Inbox == nil {
		return api.GetNotifications200JSONResponse(notificationsDTO(nil)), nil
	}
	limit := 50
	if req.Params.Limit != nil {
		limit = *req.Params.Limit
	}
	list, err := s.Inbox.Inbox(ctx, actorFrom(ctx).UserID, limit)
	if err != nil {
		return nil, err
	}
	return api.GetNotifications200JSONResponse(notificationsDTO(list)), nil
}
