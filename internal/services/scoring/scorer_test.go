package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"organease/internal/domain"
)

func donor(group domain.BloodGroup, state string, emergency bool, age int) domain.DonorProfile {
	return domain.DonorProfile{BloodGroup: group, Location: domain.Location{State: state}, EmergencyAvailable: emergency, Age: age}
}

func recipient(group domain.BloodGroup, state string, p domain.Priority, age int) domain.RecipientProfile {
	return domain.RecipientProfile{BloodGroup: group, Location: domain.Location{State: state}, Priority: p, Age: age}
}

func TestScore_UniversalDonorEmergencySameState(t *testing.T) {
	d := donor(domain.BloodONeg, "CA", true, 30)
	r := recipient(domain.BloodAPos, "CA", domain.PriorityEmergency, 28)

	assert.Equal(t, 100, Score(d, r))
	assert.Equal(t, Breakdown{Blood: 40, Proximity: 30, Emergency: 20, Age: 10}, Explain(d, r))
}

func TestScore_Axes(t *testing.T) {
	tests := []struct {
		name string
		d    domain.DonorProfile
		r    domain.RecipientProfile
		want int
	}{
		{"other state", donor(domain.BloodOPos, "CA", false, 40), recipient(domain.BloodOPos, "NY", domain.PriorityNormal, 45), 40 + 15 + 10},
		{"state is case sensitive", donor(domain.BloodOPos, "ca", false, 40), recipient(domain.BloodOPos, "CA", domain.PriorityNormal, 40), 40 + 15 + 10},
		{"emergency needs donor flag", donor(domain.BloodOPos, "CA", false, 40), recipient(domain.BloodOPos, "CA", domain.PriorityEmergency, 40), 40 + 30 + 10},
		{"high priority is not emergency", donor(domain.BloodOPos, "CA", true, 40), recipient(domain.BloodOPos, "CA", domain.PriorityHigh, 40), 40 + 30 + 10},
		{"age diff 10", donor(domain.BloodOPos, "CA", false, 40), recipient(domain.BloodOPos, "CA", domain.PriorityNormal, 50), 40 + 30 + 5},
		{"age diff 19", donor(domain.BloodOPos, "CA", false, 59), recipient(domain.BloodOPos, "CA", domain.PriorityNormal, 40), 40 + 30 + 5},
		{"age diff 20", donor(domain.BloodOPos, "CA", false, 20), recipient(domain.BloodOPos, "CA", domain.PriorityNormal, 40), 40 + 30},
		{"incompatible blood", donor(domain.BloodAPos, "CA", false, 40), recipient(domain.BloodOPos, "CA", domain.PriorityNormal, 40), 30 + 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.d, tt.r))
		})
	}
}

func TestScore_BoundsAndDeterminism(t *testing.T) {
	groups := []domain.BloodGroup{domain.BloodONeg, domain.BloodOPos, domain.BloodAPos, domain.BloodABNeg, domain.BloodBPos}
	priorities := []domain.Priority{domain.PriorityNormal, domain.PriorityHigh, domain.PriorityEmergency}
	for _, dg := range groups {
		for _, rg := range groups {
			for _, p := range priorities {
				for _, age := range []int{0, 15, 35, 80} {
					d := donor(dg, "TX", age%2 == 0, age)
					r := recipient(rg, "TX", p, 30)
					s := Score(d, r)
					assert.GreaterOrEqual(t, s, 0)
					assert.LessOrEqual(t, s, MaxScore)
					assert.Equal(t, s, Score(d, r))
				}
			}
		}
	}
	assert.Equal(t, 100, MaxScore)
}
