package domain

import "time"

// Core domain models. Row shapes live in the adapters; keep these free of
// storage and transport concerns.

type BloodGroup string

const (
	BloodOPos  BloodGroup = "O+"
	BloodONeg  BloodGroup = "O-"
	BloodAPos  BloodGroup = "A+"
	BloodANeg  BloodGroup = "A-"
	BloodBPos  BloodGroup = "B+"
	BloodBNeg  BloodGroup = "B-"
	BloodABPos BloodGroup = "AB+"
	BloodABNeg BloodGroup = "AB-"
)

type Organ string

const (
	OrganKidney     Organ = "kidney"
	OrganLiver      Organ = "liver"
	OrganHeart      Organ = "heart"
	OrganLungs      Organ = "lungs"
	OrganPancreas   Organ = "pancreas"
	OrganIntestine  Organ = "intestine"
	OrganCornea     Organ = "cornea"
	OrganBoneMarrow Organ = "bone_marrow"
)

var knownOrgans = map[Organ]bool{
	OrganKidney: true, OrganLiver: true, OrganHeart: true, OrganLungs: true,
	OrganPancreas: true, OrganIntestine: true, OrganCornea: true, OrganBoneMarrow: true,
}

func (o Organ) Valid() bool { return knownOrgans[o] }

type Availability string

const (
	AvailabilityActive Availability = "active"
	AvailabilityPaused Availability = "paused"
)

type Priority string

const (
	PriorityNormal    Priority = "normal"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestVerified RequestStatus = "verified"
	RequestRejected RequestStatus = "rejected"
)

type Location struct {
	City  string
	State string
}

type DonorProfile struct {
	ID                 string
	UserID             string
	BloodGroup         BloodGroup
	Organs             []Organ
	Location           Location
	Age                int
	Availability       Availability
	EmergencyAvailable bool
	Verified           bool
	VerifiedBy         *string // hospital id
	VerifiedAt         *time.Time
	CreatedAt          time.Time
}

// Offers reports whether organ is in the donor's offered set.
func (d DonorProfile) Offers(organ Organ) bool {
	for _, o := range d.Organs {
		if o == organ {
			return true
		}
	}
	return false
}

// Eligible is the hard gate independent of compatibility.
func (d DonorProfile) Eligible() bool {
	return d.Verified && d.Availability == AvailabilityActive
}

type RecipientProfile struct {
	ID            string
	UserID        string
	BloodGroup    BloodGroup
	RequiredOrgan Organ
	Location      Location
	Age           int
	Priority      Priority
	RequestStatus RequestStatus
	Verified      bool
	VerifiedBy    *string
	VerifiedAt    *time.Time
	CreatedAt     time.Time
}

type Hospital struct {
	ID        string
	UserID    string
	Name      string
	Location  Location
	CreatedAt time.Time
}

// Match status strings. Acceptance and scheduling are never stored as a
// status; they are read off the flags and timestamps.
const (
	StatusMatched   = "matched"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

type MatchRecord struct {
	ID          string
	DonorID     string
	RecipientID string
	Organ       Organ
	Score       int
	Status      string
	HospitalID  *string

	HospitalApproved bool
	ApprovedAt       *time.Time
	HospitalNotes    string

	DonorAccepted       bool
	DonorAcceptedAt     *time.Time
	RecipientAccepted   bool
	RecipientAcceptedAt *time.Time

	TestScheduledAt      *time.Time
	ProcedureScheduledAt *time.Time
	CompletedAt          *time.Time

	ConsentURL         *string
	ConsentGeneratedAt *time.Time

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchScore is one ranked candidate produced by the finder.
type MatchScore struct {
	DonorID     string
	RecipientID string
	Organ       Organ
	Score       int
}

type ProfileType string

const (
	ProfileDonor     ProfileType = "donor"
	ProfileRecipient ProfileType = "recipient"
)

// ProfileVerified is emitted once a hospital flips a profile to verified.
type ProfileVerified struct {
	ProfileType ProfileType
	ProfileID   string
	HospitalID  string
	At          time.Time
}
