package system

import (
	"github.com/petiteville/server/internal/ai"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

// NewScheduler wires the five phases in their fixed order. The four
// sub-systems sharing the actions phase rely on the runner's stable sort to
// keep their registration order: gait, movement, eating, combat.
func NewScheduler(st *world.State, engine *ai.Engine) *coresys.Runner {
	r := coresys.NewRunner()
	r.Register(NewEnvironmentSystem(st))
	r.Register(NewNeedsSystem(st))
	r.Register(NewDecisionSystem(st, engine))
	r.Register(NewGaitSystem(st))
	r.Register(NewMovementSystem(st))
	r.Register(NewEatingSystem(st))
	r.Register(NewCombatSystem(st))
	r.Register(NewConsequencesSystem(st))
	return r
}

// Step runs one complete tick: the spatial index is rebuilt from the
// previous tick's positions, every phase runs, and only then does the tick
// counter advance. A tick that does not complete must not advance the
// counter; there is no partial-tick rollback.
func Step(st *world.State, r *coresys.Runner) {
	st.RebuildSpatial()
	r.Tick(st.Tick() + 1)
	st.AdvanceTick()
}
