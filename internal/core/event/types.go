package event

import (
	"fmt"

	"github.com/petiteville/server/internal/core/ecs"
)

// Kind enumerates the closed set of simulation event variants.
type Kind uint8

const (
	Spawned Kind = iota
	Died
	Moved
	Ate
	Attacked
	HungerChanged
)

func (k Kind) String() string {
	switch k {
	case Spawned:
		return "spawned"
	case Died:
		return "died"
	case Attacked:
		return "attacked"
	case Ate:
		return "ate"
	case Moved:
		return "moved"
	case HungerChanged:
		return "hunger"
	}
	return "unknown"
}

// Event is one tagged log entry. The meaning of Target and Amount depends on
// the kind: Attacked carries (attacker, victim, damage), Ate carries
// (eater, food, nutrition), Moved carries the destination in X/Y,
// HungerChanged carries the new hunger value in Amount.
type Event struct {
	Tick   ecs.Tick
	Kind   Kind
	Actor  ecs.Entity
	Target ecs.Entity
	X, Y   int32
	Amount int32
}

// Line renders the event as a single human-readable line for status queries.
func (e Event) Line() string {
	switch e.Kind {
	case Spawned:
		return fmt.Sprintf("[%d] #%d spawned", e.Tick, e.Actor)
	case Died:
		return fmt.Sprintf("[%d] #%d died", e.Tick, e.Actor)
	case Moved:
		return fmt.Sprintf("[%d] #%d moved to (%d,%d)", e.Tick, e.Actor, e.X, e.Y)
	case Ate:
		return fmt.Sprintf("[%d] #%d ate #%d (+%d)", e.Tick, e.Actor, e.Target, e.Amount)
	case Attacked:
		return fmt.Sprintf("[%d] #%d hit #%d for %d", e.Tick, e.Actor, e.Target, e.Amount)
	case HungerChanged:
		return fmt.Sprintf("[%d] #%d hunger now %d", e.Tick, e.Actor, e.Amount)
	}
	return fmt.Sprintf("[%d] #%d ?", e.Tick, e.Actor)
}
