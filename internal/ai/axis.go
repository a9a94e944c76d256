package ai

// Axis enumerates the input signals a consideration can read. Missing
// components on the entity side make an axis read as 0, never an error.
type Axis uint8

const (
	// HungerRatio is hunger current/max; 0 if absent or max <= 0.
	HungerRatio Axis = iota
	// HealthRatio is health current/max; 0 if absent or max <= 0.
	HealthRatio
	// FoodNearby is the co-located edible count, capped at 3, divided by 3.
	FoodNearby
	// EnemyNearby is the co-located hostile count, capped at 3, divided by 3.
	EnemyNearby
	// Aggression reads CombatStats.Aggression.
	Aggression
	// Constant reads the consideration's own fixed value.
	Constant
)

func (a Axis) String() string {
	switch a {
	case HungerRatio:
		return "HungerRatio"
	case HealthRatio:
		return "HealthRatio"
	case FoodNearby:
		return "FoodNearby"
	case EnemyNearby:
		return "EnemyNearby"
	case Aggression:
		return "Aggression"
	case Constant:
		return "Constant"
	}
	return "Unknown"
}

// ParseAxis maps a config string to its Axis.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "HungerRatio":
		return HungerRatio, true
	case "HealthRatio":
		return HealthRatio, true
	case "FoodNearby":
		return FoodNearby, true
	case "EnemyNearby":
		return EnemyNearby, true
	case "Aggression":
		return Aggression, true
	case "Constant":
		return Constant, true
	}
	return Constant, false
}

// Inputs is the per-entity snapshot the decision system samples once before
// scoring. All values are already normalized to [0,1] except Aggression,
// which the species data keeps in range.
type Inputs struct {
	HungerRatio float64
	HealthRatio float64
	FoodNearby  float64
	EnemyNearby float64
	Aggression  float64
}

// axis reads one signal; constant is the consideration's own value.
func (in Inputs) axis(a Axis, constant float64) float64 {
	switch a {
	case HungerRatio:
		return in.HungerRatio
	case HealthRatio:
		return in.HealthRatio
	case FoodNearby:
		return in.FoodNearby
	case EnemyNearby:
		return in.EnemyNearby
	case Aggression:
		return in.Aggression
	case Constant:
		return constant
	}
	return 0
}
