// Package scoring grades donor/recipient pairs that already passed the hard
// organ and blood filters.
package scoring

import "organease/internal/domain"

// Axis weights. They sum to MaxScore.
const (
	BloodPoints        = 40
	SameStatePoints    = 30
	OtherStatePoints   = 15
	EmergencyPoints    = 20
	CloseAgePoints     = 10
	NearAgePoints      = 5
	MaxScore           = BloodPoints + SameStatePoints + EmergencyPoints + CloseAgePoints
	closeAgeDifference = 10
	nearAgeDifference  = 20
)

// Breakdown is the per-axis contribution of a score.
type Breakdown struct {
	Blood     int
	Proximity int
	Emergency int
	Age       int
}

func (b Breakdown) Total() int { return b.Blood + b.Proximity + b.Emergency + b.Age }

// Score returns the 0..100 suitability of donor for recipient.
func Score(donor domain.DonorProfile, recipient domain.RecipientProfile) int {
	return Explain(donor, recipient).Total()
}

// Explain computes the same score as Score with each axis kept apart.
func Explain(donor domain.DonorProfile, recipient domain.RecipientProfile) Breakdown {
	var b Breakdown
	if domain.BloodCompatible(donor.BloodGroup, recipient.BloodGroup) {
		b.Blood = BloodPoints
	}
	// exact match on the stored value, no case folding
	if donor.Location.State == recipient.Location.State {
		b.Proximity = SameStatePoints
	} else {
		b.Proximity = OtherStatePoints
	}
	if recipient.Priority == domain.PriorityEmergency && donor.EmergencyAvailable {
		b.Emergency = EmergencyPoints
	}
	diff := donor.Age - recipient.Age
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff < closeAgeDifference:
		b.Age = CloseAgePoints
	case diff < nearAgeDifference:
		b.Age = NearAgePoints
	}
	return b
}
