package system

import "github.com/petiteville/server/internal/core/ecs"

// Phase defines execution ordering within a single tick. The five phases
// always run in declaration order; no phase is ever skipped or reordered.
type Phase int

const (
	PhaseEnvironment Phase = iota // 0: tile temperature relaxation
	PhaseNeeds                    // 1: hunger, fatigue, exhaustion damage
	PhaseDecisions                // 2: utility AI intention scoring
	PhaseActions                  // 3: gait, movement, eating, combat
	PhaseConsequences             // 4: drain pending deaths — always last
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(tick ecs.Tick)
}
