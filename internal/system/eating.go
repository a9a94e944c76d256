package system

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/core/event"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

// EatingSystem consumes a co-located food target: hunger drops by the food's
// nutrition and the food is marked for death. Third of the actions
// sub-systems. The lethal event order is fixed: Ate (the cause), then Died,
// then the pending-death push — never the reverse.
type EatingSystem struct {
	st *world.State
}

func NewEatingSystem(st *world.State) *EatingSystem {
	return &EatingSystem{st: st}
}

func (s *EatingSystem) Phase() coresys.Phase { return coresys.PhaseActions }

func (s *EatingSystem) Update(tick ecs.Tick) {
	for _, id := range ecs.Keys(s.st.Intentions) {
		if s.st.Dying(id) {
			continue
		}
		it, _ := s.st.Intentions.Get(id)
		if it.Action != ai.Eat || it.Target.IsZero() {
			continue
		}
		food := it.Target
		// A food already claimed by a lower id this tick is gone.
		if !s.st.Pool.Alive(food) || s.st.Dying(food) {
			continue
		}
		pos, ok := s.st.Positions.Get(id)
		if !ok {
			continue
		}
		fpos, ok := s.st.Positions.Get(food)
		if !ok || pos != fpos {
			continue
		}
		nut, ok := s.st.Nutritions.Get(food)
		if !ok {
			continue
		}
		h, ok := s.st.Hungers.Get(id)
		if !ok {
			continue
		}
		h.Current -= nut.Value
		if h.Current < 0 {
			h.Current = 0
		}
		s.st.Hungers.Set(id, h)

		s.st.Events.Push(event.Event{
			Tick: tick, Kind: event.Ate, Actor: id, Target: food, Amount: nut.Value,
		})
		s.st.Events.Push(event.Event{Tick: tick, Kind: event.Died, Actor: food})
		s.st.QueueDeath(food)
	}
}
