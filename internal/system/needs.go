package system

import (
	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/core/event"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

const (
	// fatigueDrainPerTick is added while a fast gait (Charge/Flee) is active.
	fatigueDrainPerTick int32 = 3
	// fatigue recovery per tick below / at-or-above the unconscious threshold.
	fatigueRecoverSlow int32 = 1
	fatigueRecoverFast int32 = 5
)

// NeedsSystem advances hunger and fatigue and converts extreme fatigue into
// health damage. Phase 2. All mutation follows the two-pass read-snapshot
// then apply discipline.
type NeedsSystem struct {
	st *world.State
}

func NewNeedsSystem(st *world.State) *NeedsSystem {
	return &NeedsSystem{st: st}
}

func (s *NeedsSystem) Phase() coresys.Phase { return coresys.PhaseNeeds }

func (s *NeedsSystem) Update(tick ecs.Tick) {
	s.tickHunger(tick)
	s.tickFatigue(tick)
}

func (s *NeedsSystem) tickHunger(tick ecs.Tick) {
	type change struct {
		id      ecs.Entity
		h       component.Hunger
		starved bool
	}
	var changes []change
	for _, id := range ecs.Keys(s.st.Hungers) {
		if s.st.Dying(id) {
			continue
		}
		h, _ := s.st.Hungers.Get(id)
		if h.Max <= 0 {
			continue
		}
		old := h.Current
		h.Current++
		if h.Current > h.Max {
			h.Current = h.Max
		}
		changes = append(changes, change{id, h, old < h.Max && h.Current == h.Max})
	}
	for _, c := range changes {
		s.st.Hungers.Set(c.id, c.h)
		if c.starved {
			s.st.Events.Push(event.Event{
				Tick: tick, Kind: event.HungerChanged, Actor: c.id, Amount: c.h.Current,
			})
		}
	}
}

func (s *NeedsSystem) tickFatigue(tick ecs.Tick) {
	type change struct {
		id ecs.Entity
		f  component.Fatigue
	}
	var changes []change
	ids := ecs.Keys(s.st.Fatigues)
	for _, id := range ids {
		if s.st.Dying(id) {
			continue
		}
		f, _ := s.st.Fatigues.Get(id)
		g, _ := s.st.Gaits.Get(id)
		if g.Fast() {
			f.Current += fatigueDrainPerTick
		} else if f.Current >= component.UnconsciousThreshold {
			f.Current -= fatigueRecoverFast
		} else if f.Current > 0 {
			f.Current -= fatigueRecoverSlow
		}
		if f.Current < 0 {
			f.Current = 0
		}
		changes = append(changes, change{id, f})
	}
	for _, c := range changes {
		s.st.Fatigues.Set(c.id, c.f)
	}

	// Excess above the damage threshold converts into health loss: one
	// guaranteed point per 50 excess, plus one RNG draw proportional to the
	// remainder. Iterated in id order so the draw sequence is reproducible.
	for _, id := range ids {
		if s.st.Dying(id) {
			continue
		}
		f, _ := s.st.Fatigues.Get(id)
		if f.Current <= component.FatigueDamageStart {
			continue
		}
		excess := f.Current - component.FatigueDamageStart
		dmg := excess / component.FatigueDamageStep
		rem := excess % component.FatigueDamageStep
		if rem > 0 && s.st.Rng.Float64() < float64(rem)/float64(component.FatigueDamageStep) {
			dmg++
		}
		if dmg == 0 {
			continue
		}
		h, ok := s.st.Healths.Get(id)
		if !ok {
			continue
		}
		h.Current -= dmg
		s.st.Healths.Set(id, h)
		if h.Current <= 0 {
			s.st.Events.Push(event.Event{Tick: tick, Kind: event.Died, Actor: id})
			s.st.QueueDeath(id)
		}
	}
}
