package domain

// receivesFrom maps a recipient blood group to the donor groups it accepts.
var receivesFrom = map[BloodGroup][]BloodGroup{
	BloodONeg:  {BloodONeg},
	BloodOPos:  {BloodOPos, BloodONeg},
	BloodANeg:  {BloodANeg, BloodONeg},
	BloodAPos:  {BloodAPos, BloodANeg, BloodOPos, BloodONeg},
	BloodBNeg:  {BloodBNeg, BloodONeg},
	BloodBPos:  {BloodBPos, BloodBNeg, BloodOPos, BloodONeg},
	BloodABNeg: {BloodABNeg, BloodANeg, BloodBNeg, BloodONeg},
	BloodABPos: {BloodABPos, BloodABNeg, BloodAPos, BloodANeg, BloodBPos, BloodBNeg, BloodOPos, BloodONeg},
}

func (b BloodGroup) Valid() bool {
	_, ok := receivesFrom[b]
	return ok
}

// BloodCompatible reports whether a donor of group donor can give to a
// recipient of group recipient. Unknown groups are never compatible.
func BloodCompatible(donor, recipient BloodGroup) bool {
	for _, g := range receivesFrom[recipient] {
		if g == donor {
			return true
		}
	}
	return false
}
