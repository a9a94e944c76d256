package component

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/core/ecs"
)

// Components are plain value types. None of them holds a pointer to another
// entity — cross-references are always by id, so no ownership cycles exist.

// Position is the entity's tile coordinate.
type Position struct {
	X, Y int32
}

// Hunger grows by 1 per tick up to Max; eating reduces Current.
type Hunger struct {
	Current, Max int32
}

// Health reaching 0 queues the entity for death.
type Health struct {
	Current, Max int32
}

// Fatigue accumulates while using a fast gait and recovers otherwise.
// At or above UnconsciousThreshold recovery speeds up; above DamageThreshold
// the excess converts into health damage.
type Fatigue struct {
	Current int32
}

const (
	UnconsciousThreshold int32 = 100
	FatigueDamageStart   int32 = 200
	FatigueDamageStep    int32 = 50
)

// CombatStats marks an entity as a combatant. Aggression feeds the AI axis
// of the same name and stays in [0,1] in species data.
type CombatStats struct {
	Attack, Defense int32
	Aggression      float64
}

// GaitProfile carries one movement cooldown per gait tier, indexed by the
// gait's ActionId. Zero means the tier does not move.
type GaitProfile struct {
	Cooldowns [ai.NumActions]uint32
}

// Gait is the movement tier chosen for the current intention. Charge and
// Flee are the fast tiers; they drain fatigue.
type Gait struct {
	Current ai.ActionId
}

// Fast reports whether the current gait drains fatigue.
func (g Gait) Fast() bool {
	return g.Current == ai.Charge || g.Current == ai.Flee
}

// Speed is the display tier derived from the gait: 0 stationary, 1 normal,
// 2 fast.
type Speed struct {
	Tier int32
}

// MoveCooldown gates movement; an entity steps only when Remaining hits 0.
type MoveCooldown struct {
	Remaining uint32
}

// Icon is the single rune the renderer samples for this entity.
type Icon rune

// Name is the display name the renderer samples for this entity.
type Name string

// Nutrition marks an entity as edible; eating it reduces hunger by Value.
type Nutrition struct {
	Value int32
}

// Intention is the decision engine's output: what to do this tick, and to
// whom. Target is 0 for untargeted actions.
type Intention struct {
	Action ai.ActionId
	Target ecs.Entity
}

// ActionState tracks action continuity for the inertia bonus and the
// per-action cooldown counters.
type ActionState struct {
	Current       ai.ActionId
	TicksInAction uint32
	Cooldowns     [ai.NumActions]uint32
}

// WanderTarget is the tile a wandering entity is pathing toward.
type WanderTarget struct {
	X, Y int32
}
