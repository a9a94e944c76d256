package system

import (
	"github.com/petiteville/server/internal/core/ecs"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/world"
)

// ConsequencesSystem despawns every entity queued for death: removed from
// the alive set and from every registered property table in one step. Always
// the last phase. Under the simdebug build tag it asserts the structural
// invariants afterwards and aborts on violation.
type ConsequencesSystem struct {
	st *world.State
}

func NewConsequencesSystem(st *world.State) *ConsequencesSystem {
	return &ConsequencesSystem{st: st}
}

func (s *ConsequencesSystem) Phase() coresys.Phase { return coresys.PhaseConsequences }

func (s *ConsequencesSystem) Update(_ ecs.Tick) {
	s.st.DrainDeaths()
	if world.DebugChecks {
		if err := s.st.CheckDeathsDrained(); err != nil {
			panic(err)
		}
		if err := s.st.CheckZombieFree(); err != nil {
			panic(err)
		}
	}
}
