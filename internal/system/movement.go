package system

import (
	"github.com/petiteville/server/internal/ai"
	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/core/event"
	coresys "github.com/petiteville/server/internal/core/system"
	"github.com/petiteville/server/internal/pathfind"
	"github.com/petiteville/server/internal/world"
)

const (
	// wanderRadius bounds how far a fresh wander target may be.
	wanderRadius int32 = 8
	// wanderRetargetChance is 1-in-N per idle wander tick.
	wanderRetargetChance = 4
)

// movement deltas in fixed order; the RNG indexes into this for random walks.
var moveDirs = [8][2]int32{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// MovementSystem steps entities whose move cooldown has expired: pathing
// toward a wander target or an attack target, fleeing, or random-walking.
// Second of the actions sub-systems. Steps are computed from a snapshot of
// all positions and applied afterwards, so one entity's move is never
// observed by another entity's decision in the same pass.
type MovementSystem struct {
	st *world.State
}

func NewMovementSystem(st *world.State) *MovementSystem {
	return &MovementSystem{st: st}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseActions }

type plannedMove struct {
	id          ecs.Entity
	to          component.Position
	moved       bool
	reset       uint32
	setWander   *component.WanderTarget
	clearWander bool
}

func (s *MovementSystem) Update(tick ecs.Tick) {
	var plans []plannedMove
	for _, id := range ecs.Keys(s.st.MoveCooldowns) {
		if s.st.Dying(id) {
			continue
		}
		mc, _ := s.st.MoveCooldowns.Get(id)
		if mc.Remaining > 0 {
			mc.Remaining--
			s.st.MoveCooldowns.Set(id, mc)
			continue
		}
		pos, ok := s.st.Positions.Get(id)
		if !ok {
			continue
		}
		gait, _ := s.st.Gaits.Get(id)
		profile, _ := s.st.GaitProfiles.Get(id)
		cd := profile.Cooldowns[gait.Current]
		if cd == 0 {
			continue // stationary tier
		}
		if plan, ok := s.plan(id, pos, gait, cd); ok {
			plans = append(plans, plan)
		}
	}

	for _, p := range plans {
		if p.moved {
			s.st.Positions.Set(p.id, p.to)
			s.st.MoveCooldowns.Set(p.id, component.MoveCooldown{Remaining: p.reset})
			s.st.Events.Push(event.Event{
				Tick: tick, Kind: event.Moved, Actor: p.id, X: p.to.X, Y: p.to.Y,
			})
		}
		if p.clearWander {
			s.st.WanderTargets.Remove(p.id)
		}
		if p.setWander != nil {
			s.st.WanderTargets.Set(p.id, *p.setWander)
		}
	}
}

// plan decides one entity's step. It reads positions only through the
// snapshot tables and draws from the RNG in id order.
func (s *MovementSystem) plan(id ecs.Entity, pos component.Position, gait component.Gait, cd uint32) (plannedMove, bool) {
	it, _ := s.st.Intentions.Get(id)
	switch it.Action {
	case ai.Attack:
		tp, ok := s.st.Positions.Get(it.Target)
		if !ok || it.Target.IsZero() || !s.st.Pool.Alive(it.Target) || s.st.Dying(it.Target) {
			return plannedMove{}, false
		}
		if gait.Current == ai.Flee {
			return s.planFlee(id, pos, tp, cd)
		}
		if pos == tp {
			return plannedMove{}, false // already co-located, combat handles it
		}
		return s.planPathStep(id, pos, tp, cd)

	case ai.Wander:
		if wt, ok := s.st.WanderTargets.Get(id); ok {
			goal := component.Position{X: wt.X, Y: wt.Y}
			if pos == goal {
				return plannedMove{id: id, clearWander: true}, true
			}
			plan, ok := s.planPathStep(id, pos, goal, cd)
			if !ok {
				// unreachable target: drop it and hold position
				return plannedMove{id: id, clearWander: true}, true
			}
			if plan.to == goal {
				plan.clearWander = true
			}
			return plan, true
		}
		// No target yet: occasionally pick one, otherwise take one random
		// step.
		if s.st.Rng.Intn(wanderRetargetChance) == 0 {
			tx := pos.X + s.st.Rng.Int31n(2*wanderRadius+1) - wanderRadius
			ty := pos.Y + s.st.Rng.Int31n(2*wanderRadius+1) - wanderRadius
			if (tx != pos.X || ty != pos.Y) && s.st.Map.Walkable(tx, ty) {
				return plannedMove{id: id, setWander: &component.WanderTarget{X: tx, Y: ty}}, true
			}
		}
		d := moveDirs[s.st.Rng.Intn(len(moveDirs))]
		nx, ny := pos.X+d[0], pos.Y+d[1]
		if !s.st.Map.Walkable(nx, ny) {
			return plannedMove{}, false
		}
		return plannedMove{id: id, to: component.Position{X: nx, Y: ny}, moved: true, reset: cd}, true
	}
	return plannedMove{}, false
}

// planPathStep takes the first step of an A* path toward goal. Pathfinding
// failure is a normal hold-position outcome, never an error.
func (s *MovementSystem) planPathStep(id ecs.Entity, pos, goal component.Position, cd uint32) (plannedMove, bool) {
	path, found := pathfind.FindPath(s.st.Map,
		pathfind.Point{X: pos.X, Y: pos.Y},
		pathfind.Point{X: goal.X, Y: goal.Y})
	if !found || len(path) == 0 {
		return plannedMove{}, false
	}
	return plannedMove{
		id:    id,
		to:    component.Position{X: path[0].X, Y: path[0].Y},
		moved: true,
		reset: cd,
	}, true
}

// planFlee steps onto the walkable neighbor that strictly increases the
// Chebyshev distance to the threat. Fixed direction order keeps tie
// resolution reproducible.
func (s *MovementSystem) planFlee(id ecs.Entity, pos, threat component.Position, cd uint32) (plannedMove, bool) {
	best := pos
	bestDist := chebyshev(pos.X, pos.Y, threat.X, threat.Y)
	for _, d := range moveDirs {
		nx, ny := pos.X+d[0], pos.Y+d[1]
		if !s.st.Map.Walkable(nx, ny) {
			continue
		}
		if dist := chebyshev(nx, ny, threat.X, threat.Y); dist > bestDist {
			best = component.Position{X: nx, Y: ny}
			bestDist = dist
		}
	}
	if best == pos {
		return plannedMove{}, false // cornered
	}
	return plannedMove{id: id, to: best, moved: true, reset: cd}, true
}

func chebyshev(x1, y1, x2, y2 int32) int32 {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
