package domain

// State is the workflow position of a match, derived from its stored fields.
type State string

const (
	StateCandidate          State = "candidate"
	StateHospitalApproved   State = "hospital_approved"
	StateMutuallyAccepted   State = "mutually_accepted"
	StateTestScheduled      State = "test_scheduled"
	StateProcedureScheduled State = "procedure_scheduled"
	StateCompleted          State = "completed"
	StateRejected           State = "rejected"
)

// DeriveState projects the flag and timestamp combination of m onto a State.
func DeriveState(m MatchRecord) State {
	switch {
	case m.Status == StatusRejected:
		return StateRejected
	case m.CompletedAt != nil:
		return StateCompleted
	case !m.HospitalApproved:
		return StateCandidate
	case !m.DonorAccepted || !m.RecipientAccepted:
		return StateHospitalApproved
	case m.ProcedureScheduledAt != nil:
		return StateProcedureScheduled
	case m.TestScheduledAt != nil:
		return StateTestScheduled
	default:
		return StateMutuallyAccepted
	}
}

// MutuallyAccepted holds once the hospital approved and both parties accepted.
func (m MatchRecord) MutuallyAccepted() bool {
	return m.HospitalApproved && m.DonorAccepted && m.RecipientAccepted && m.Status != StatusRejected
}

// CanCommunicate gates donor/recipient chat. Acceptance is not required.
func (m MatchRecord) CanCommunicate() bool {
	return m.HospitalApproved && m.Status != StatusRejected
}

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleHospital  Role = "hospital"
)

func (r Role) Valid() bool {
	return r == RoleDonor || r == RoleRecipient || r == RoleHospital
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID    string
	Role      Role
	ProfileID string
}

// Party reports whether the actor is the donor, recipient or hospital on m.
func (a Actor) Party(m MatchRecord) bool {
	switch a.Role {
	case RoleDonor:
		return a.ProfileID == m.DonorID
	case RoleRecipient:
		return a.ProfileID == m.RecipientID
	case RoleHospital:
		return m.HospitalID != nil && *m.HospitalID == a.ProfileID
	}
	return false
}
