package ai

// ActionId enumerates every action an entity can intend. Declaration order is
// load-bearing: when two actions score exactly equal, the one declared
// earlier in the decision config wins, and configs are validated against this
// set. Charge and Flee never appear as intentions; gait selection uses them
// as movement tiers.
type ActionId uint8

const (
	Idle ActionId = iota
	Wander
	Eat
	Attack
	Charge
	Flee

	NumActions = 6
)

func (a ActionId) String() string {
	switch a {
	case Idle:
		return "Idle"
	case Wander:
		return "Wander"
	case Eat:
		return "Eat"
	case Attack:
		return "Attack"
	case Charge:
		return "Charge"
	case Flee:
		return "Flee"
	}
	return "Unknown"
}

// ParseActionId maps a config string to its ActionId.
func ParseActionId(s string) (ActionId, bool) {
	switch s {
	case "Idle":
		return Idle, true
	case "Wander":
		return Wander, true
	case "Eat":
		return Eat, true
	case "Attack":
		return Attack, true
	case "Charge":
		return Charge, true
	case "Flee":
		return Flee, true
	}
	return Idle, false
}
