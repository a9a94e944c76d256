package system

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

// GaitSystem maps the current intention plus fatigue onto a movement tier.
// First of the actions sub-systems (phase 4). Charge and Flee are the fast
// tiers; they are never intentions themselves.
type GaitSystem struct {
	st *world.State
}

func NewGaitSystem(st *world.State) *GaitSystem {
	return &GaitSystem{st: st}
}

func (s *GaitSystem) Phase() coresys.Phase { return coresys.PhaseActions }

func (s *GaitSystem) Update(_ ecs.Tick) {
	for _, id := range ecs.Keys(s.st.Gaits) {
		if s.st.Dying(id) {
			continue
		}
		it, _ := s.st.Intentions.Get(id)
		gait := s.selectGait(id, it.Action)
		s.st.Gaits.Set(id, component.Gait{Current: gait})

		profile, _ := s.st.GaitProfiles.Get(id)
		tier := int32(0)
		if profile.Cooldowns[gait] > 0 {
			tier = 1
			if (component.Gait{Current: gait}).Fast() {
				tier = 2
			}
		}
		s.st.Speeds.Set(id, component.Speed{Tier: tier})
	}
}

func (s *GaitSystem) selectGait(id ecs.Entity, intent ai.ActionId) ai.ActionId {
	if intent != ai.Attack {
		return intent
	}
	// Combatants flee when badly hurt, charge while fresh, and fall back to
	// the plain attack gait once fatigued.
	if h, ok := s.st.Healths.Get(id); ok && h.Max > 0 && h.Current*4 < h.Max {
		return ai.Flee
	}
	if f, ok := s.st.Fatigues.Get(id); ok && f.Current >= component.UnconsciousThreshold {
		return ai.Attack
	}
	return ai.Charge
}
