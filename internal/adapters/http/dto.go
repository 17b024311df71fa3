package httpadapter

import (
	api "organease/internal/api"
	"organease/internal/domain"
	"organease/internal/ports"
	"organease/internal/services/scoring"
	"organease/internal/services/workflow"
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func donorProfile(body api.DonorCreate, userID string) domain.DonorProfile {
	organs := make([]domain.Organ, len(body.Organs))
	for i, o := range body.Organs {
		organs[i] = domain.Organ(o)
	}
	return domain.DonorProfile{
		UserID:             userID,
		BloodGroup:         domain.BloodGroup(body.BloodGroup),
		Organs:             organs,
		Location:           domain.Location{City: deref(body.City), State: body.State},
		Age:                body.Age,
		Availability:       domain.Availability(deref(body.Availability)),
		EmergencyAvailable: deref(body.EmergencyAvailable),
	}
}

func donorDTO(d domain.DonorProfile) api.Donor {
	organs := make([]string, len(d.Organs))
	for i, o := range d.Organs {
		organs[i] = string(o)
	}
	return api.Donor{
		Id: d.ID, UserId: d.UserID, BloodGroup: string(d.BloodGroup), Organs: organs,
		City: d.Location.City, State: d.Location.State, Age: d.Age,
		Availability: string(d.Availability), EmergencyAvailable: d.EmergencyAvailable,
		Verified: d.Verified, VerifiedBy: d.VerifiedBy, VerifiedAt: d.VerifiedAt, CreatedAt: d.CreatedAt,
	}
}

func recipientProfile(body api.RecipientCreate, userID string) domain.RecipientProfile {
	return domain.RecipientProfile{
		UserID:        userID,
		BloodGroup:    domain.BloodGroup(body.BloodGroup),
		RequiredOrgan: domain.Organ(body.RequiredOrgan),
		Location:      domain.Location{City: deref(body.City), State: body.State},
		Age:           body.Age,
		Priority:      domain.Priority(deref(body.Priority)),
	}
}

func recipientDTO(r domain.RecipientProfile) api.Recipient {
	return api.Recipient{
		Id: r.ID, UserId: r.UserID, BloodGroup: string(r.BloodGroup), RequiredOrgan: string(r.RequiredOrgan),
		City: r.Location.City, State: r.Location.State, Age: r.Age,
		Priority: string(r.Priority), RequestStatus: string(r.RequestStatus),
		Verified: r.Verified, VerifiedBy: r.VerifiedBy, VerifiedAt: r.VerifiedAt, CreatedAt: r.CreatedAt,
	}
}

func hospitalDTO(h domain.Hospital) api.Hospital {
	return api.Hospital{Id: h.ID, UserId: h.UserID, Name: h.Name, City: h.Location.City, State: h.Location.State, CreatedAt: h.CreatedAt}
}

func candidateDTO(sc domain.MatchScore, b scoring.Breakdown) api.Candidate {
	return api.Candidate{
		DonorId: sc.DonorID, RecipientId: sc.RecipientID, Organ: string(sc.Organ), Score: sc.Score,
		Breakdown: api.ScoreBreakdown{Blood: b.Blood, Proximity: b.Proximity, Emergency: b.Emergency, Age: b.Age},
	}
}

func matchDTO(m domain.MatchRecord) api.Match {
	return api.Match{
		Id: m.ID, DonorId: m.DonorID, RecipientId: m.RecipientID, Organ: string(m.Organ), Score: m.Score,
		Status: m.Status, State: string(domain.DeriveState(m)), CanCommunicate: m.CanCommunicate(),
		HospitalId: m.HospitalID, HospitalApproved: m.HospitalApproved, ApprovedAt: m.ApprovedAt, HospitalNotes: optional(m.HospitalNotes),
		DonorAccepted: m.DonorAccepted, DonorAcceptedAt: m.DonorAcceptedAt,
		RecipientAccepted: m.RecipientAccepted, RecipientAcceptedAt: m.RecipientAcceptedAt,
		TestScheduledAt: m.TestScheduledAt, ProcedureScheduledAt: m.ProcedureScheduledAt, CompletedAt: m.CompletedAt,
		ConsentUrl: m.ConsentURL, ConsentGeneratedAt: m.ConsentGeneratedAt,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func viewDTO(v workflow.View) api.Match {
	out := matchDTO(v.MatchRecord)
	out.State, out.CanCommunicate = string(v.State), v.CanCommunicate
	return out
}

func notificationsDTO(list []ports.Notification) api.NotificationList {
	out := api.NotificationList{Notifications: make([]api.Notification, 0, len(list))}
	for _, n := range list {
		out.Notifications = append(out.Notifications, api.Notification{
			UserId: n.UserID, Title: n.Title, Message: n.Message, ActionUrl: optional(n.ActionURL),
		})
	}
	return out
}
