package system

import (
	"sort"

	"github.com/petiteville/server/internal/core/ecs"
)

// Runner executes systems in phase order each tick. Systems sharing a phase
// run in registration order (the actions sub-order relies on this, so the
// sort must be stable).
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs every system once for the given logical tick. A tick is
// run-to-completion: there is no partial execution or rollback.
func (r *Runner) Tick(tick ecs.Tick) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(tick)
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
