package system

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

// nearbyCap bounds the FoodNearby/EnemyNearby axes: counts cap at 3 and
// normalize by 3.
const nearbyCap = 3

// DecisionSystem clears stale intentions and recomputes one per live,
// non-dying actor. Phase 3.
type DecisionSystem struct {
	st     *world.State
	engine *ai.Engine
}

func NewDecisionSystem(st *world.State, engine *ai.Engine) *DecisionSystem {
	return &DecisionSystem{st: st, engine: engine}
}

func (s *DecisionSystem) Phase() coresys.Phase { return coresys.PhaseDecisions }

func (s *DecisionSystem) Update(_ ecs.Tick) {
	ids := ecs.Keys(s.st.ActionStates)

	// Decrement every positive cooldown counter first, keeping the
	// pre-decrement values: a counter that was still positive at tick start
	// stays "on cooldown" for the remainder of this tick even if the
	// decrement just zeroed it. Arming N therefore blocks the action for N
	// following ticks; this off-by-one is deliberate and pinned by test.
	pre := make(map[ecs.Entity][ai.NumActions]uint32, len(ids))
	for _, id := range ids {
		as, _ := s.st.ActionStates.Get(id)
		pre[id] = as.Cooldowns
		for i := range as.Cooldowns {
			if as.Cooldowns[i] > 0 {
				as.Cooldowns[i]--
			}
		}
		s.st.ActionStates.Set(id, as)
	}

	for _, id := range ids {
		if s.st.Dying(id) {
			continue
		}
		as, _ := s.st.ActionStates.Get(id)
		cd := pre[id]
		choice := s.engine.Choose(s.inputs(id), as.Current, func(a ai.ActionId) bool {
			return cd[a] > 0
		})
		s.st.Intentions.Set(id, component.Intention{
			Action: choice,
			Target: s.resolveTarget(id, choice),
		})

		if as.Current == choice {
			as.TicksInAction++
		} else {
			// Arm the previous action's cooldown on the way out.
			if def := s.engine.Config().Def(as.Current); def != nil && def.CooldownTicks > 0 {
				as.Cooldowns[as.Current] = def.CooldownTicks
			}
			as.Current = choice
			as.TicksInAction = 0
		}
		s.st.ActionStates.Set(id, as)
	}
}

// inputs samples the entity's axes. Missing components read as 0.
func (s *DecisionSystem) inputs(id ecs.Entity) ai.Inputs {
	var in ai.Inputs
	if h, ok := s.st.Hungers.Get(id); ok && h.Max > 0 {
		in.HungerRatio = float64(h.Current) / float64(h.Max)
	}
	if h, ok := s.st.Healths.Get(id); ok && h.Max > 0 {
		in.HealthRatio = float64(h.Current) / float64(h.Max)
	}
	if c, ok := s.st.Combat.Get(id); ok {
		in.Aggression = c.Aggression
	}
	if p, ok := s.st.Positions.Get(id); ok {
		food, enemies := 0, 0
		for _, other := range s.st.Spatial.At(p.X, p.Y) {
			if other == id || s.st.Dying(other) {
				continue
			}
			if s.st.Nutritions.Has(other) {
				food++
			}
			if s.st.Combat.Has(other) {
				enemies++
			}
		}
		in.FoodNearby = normalizeCount(food)
		in.EnemyNearby = normalizeCount(enemies)
	}
	return in
}

func normalizeCount(n int) float64 {
	if n > nearbyCap {
		n = nearbyCap
	}
	return float64(n) / nearbyCap
}

// resolveTarget picks the concrete co-located target for targeted actions:
// Eat takes the highest nutrition, Attack the lowest current health; both
// break ties toward the lowest id, which the sorted tile slice provides.
func (s *DecisionSystem) resolveTarget(id ecs.Entity, choice ai.ActionId) ecs.Entity {
	if choice != ai.Eat && choice != ai.Attack {
		return 0
	}
	p, ok := s.st.Positions.Get(id)
	if !ok {
		return 0
	}
	var best ecs.Entity
	var bestVal int32
	for _, other := range s.st.Spatial.At(p.X, p.Y) {
		if other == id || s.st.Dying(other) {
			continue
		}
		switch choice {
		case ai.Eat:
			n, ok := s.st.Nutritions.Get(other)
			if !ok {
				continue
			}
			if best.IsZero() || n.Value > bestVal {
				best, bestVal = other, n.Value
			}
		case ai.Attack:
			if !s.st.Combat.Has(other) {
				continue
			}
			var hp int32
			if h, ok := s.st.Healths.Get(other); ok {
				hp = h.Current
			}
			if best.IsZero() || hp < bestVal {
				best, bestVal = other, hp
			}
		}
	}
	return best
}
