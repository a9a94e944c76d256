package world

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/data"
)

// SpawnSpecies instantiates a species template at a tile, attaching the
// components the template implies. This is the loader path the spawn list
// and scenario scripts go through.
func (s *State) SpawnSpecies(sp *data.Species, x, y int32) ecs.Entity {
	id := s.Spawn()
	s.Positions.Set(id, component.Position{X: x, Y: y})
	s.Icons.Set(id, component.Icon(sp.IconRune()))
	s.Names.Set(id, component.Name(sp.Name))

	if sp.Nutrition > 0 {
		s.Nutritions.Set(id, component.Nutrition{Value: sp.Nutrition})
	}
	if sp.MaxHunger > 0 {
		s.Hungers.Set(id, component.Hunger{Current: 0, Max: sp.MaxHunger})
	}
	if sp.MaxHealth > 0 {
		s.Healths.Set(id, component.Health{Current: sp.MaxHealth, Max: sp.MaxHealth})
	}
	if sp.Attack > 0 {
		s.Combat.Set(id, component.CombatStats{
			Attack:     sp.Attack,
			Defense:    sp.Defense,
			Aggression: sp.Aggression,
		})
	}

	// Anything with a gait profile is an actor: it gets the movement and
	// decision components. Inert edibles stay component-light.
	if len(sp.GaitCooldowns) > 0 {
		s.Fatigues.Set(id, component.Fatigue{})
		s.GaitProfiles.Set(id, component.GaitProfile{Cooldowns: sp.Profile()})
		s.Gaits.Set(id, component.Gait{Current: ai.Idle})
		s.Speeds.Set(id, component.Speed{})
		s.MoveCooldowns.Set(id, component.MoveCooldown{})
		s.Intentions.Set(id, component.Intention{Action: ai.Idle})
		s.ActionStates.Set(id, component.ActionState{Current: ai.Idle})
	}
	return id
}
