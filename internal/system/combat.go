package system

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/core/event"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

// CombatSystem resolves attacks between co-located entities. Last of the
// actions sub-systems. Damage is computed for every attacker from a snapshot
// of the stat tables, then applied in attacker-id order, so an early kill
// never changes a later attacker's damage roll.
type CombatSystem struct {
	st *world.State
}

func NewCombatSystem(st *world.State) *CombatSystem {
	return &CombatSystem{st: st}
}

func (s *CombatSystem) Phase() coresys.Phase { return coresys.PhaseActions }

type strike struct {
	attacker ecs.Entity
	victim   ecs.Entity
	damage   int32
}

func (s *CombatSystem) Update(tick ecs.Tick) {
	var strikes []strike
	for _, id := range ecs.Keys(s.st.Intentions) {
		if s.st.Dying(id) {
			continue
		}
		it, _ := s.st.Intentions.Get(id)
		if it.Action != ai.Attack || it.Target.IsZero() {
			continue
		}
		victim := it.Target
		if !s.st.Pool.Alive(victim) {
			continue
		}
		// A fleeing combatant is disengaging, not striking.
		if g, ok := s.st.Gaits.Get(id); ok && g.Current == ai.Flee {
			continue
		}
		pos, ok := s.st.Positions.Get(id)
		if !ok {
			continue
		}
		vpos, ok := s.st.Positions.Get(victim)
		if !ok || pos != vpos {
			continue
		}
		atk, ok := s.st.Combat.Get(id)
		if !ok {
			continue
		}
		var def component.CombatStats
		def, _ = s.st.Combat.Get(victim)
		dmg := atk.Attack - def.Defense
		if dmg < 1 {
			dmg = 1
		}
		strikes = append(strikes, strike{attacker: id, victim: victim, damage: dmg})
	}

	for _, st := range strikes {
		if s.st.Dying(st.victim) {
			continue // already killed earlier this pass
		}
		h, ok := s.st.Healths.Get(st.victim)
		if !ok {
			continue
		}
		h.Current -= st.damage
		s.st.Healths.Set(st.victim, h)
		s.st.Events.Push(event.Event{
			Tick: tick, Kind: event.Attacked,
			Actor: st.attacker, Target: st.victim, Amount: st.damage,
		})
		if h.Current <= 0 {
			s.st.Events.Push(event.Event{Tick: tick, Kind: event.Died, Actor: st.victim})
			s.st.QueueDeath(st.victim)
		}
	}
}
