package system

import (
	coresys "github.com/petiteville/server/internal/core/system"

	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/world"
)

// EnvironmentSystem relaxes tile temperatures toward their terrain targets,
// at most one bounded step per tick. Phase 1.
type EnvironmentSystem struct {
	st *world.State
}

func NewEnvironmentSystem(st *world.State) *EnvironmentSystem {
	return &EnvironmentSystem{st: st}
}

func (s *EnvironmentSystem) Phase() coresys.Phase { return coresys.PhaseEnvironment }

func (s *EnvironmentSystem) Update(_ ecs.Tick) {
	s.st.Map.RelaxTemperature()
}
