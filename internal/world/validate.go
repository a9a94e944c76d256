package world

import (
	"fmt"

	"github.com/petiteville/server/internal/core/ecs"
)

// Structural validators. The consequences system runs them after phase 5
// when the simdebug build tag is set and panics on violation — fail fast, no
// recovery. Release builds compile the checks out, so tests call these
// directly to keep the invariants covered everywhere.

// CheckZombieFree verifies that every key in every property table is a
// member of the alive set.
func (s *State) CheckZombieFree() error {
	if err := checkOwners(s, "position", s.Positions); err != nil {
		return err
	}
	if err := checkOwners(s, "hunger", s.Hungers); err != nil {
		return err
	}
	if err := checkOwners(s, "health", s.Healths); err != nil {
		return err
	}
	if err := checkOwners(s, "fatigue", s.Fatigues); err != nil {
		return err
	}
	if err := checkOwners(s, "combat", s.Combat); err != nil {
		return err
	}
	if err := checkOwners(s, "gait-profile", s.GaitProfiles); err != nil {
		return err
	}
	if err := checkOwners(s, "gait", s.Gaits); err != nil {
		return err
	}
	if err := checkOwners(s, "speed", s.Speeds); err != nil {
		return err
	}
	if err := checkOwners(s, "move-cooldown", s.MoveCooldowns); err != nil {
		return err
	}
	if err := checkOwners(s, "icon", s.Icons); err != nil {
		return err
	}
	if err := checkOwners(s, "name", s.Names); err != nil {
		return err
	}
	if err := checkOwners(s, "nutrition", s.Nutritions); err != nil {
		return err
	}
	if err := checkOwners(s, "intention", s.Intentions); err != nil {
		return err
	}
	if err := checkOwners(s, "action-state", s.ActionStates); err != nil {
		return err
	}
	return checkOwners(s, "wander-target", s.WanderTargets)
}

// CheckDeathsDrained verifies the pending-deaths queue is empty; it must be
// immediately after the consequences phase.
func (s *State) CheckDeathsDrained() error {
	if n := len(s.pendingDeath); n != 0 {
		return fmt.Errorf("world: %d pending deaths not drained", n)
	}
	return nil
}

func checkOwners[T any](s *State, table string, st *ecs.Store[T]) error {
	var err error
	st.Each(func(id ecs.Entity, _ T) {
		if err == nil && !s.Pool.Alive(id) {
			err = fmt.Errorf("world: zombie entity %d in %s table", id, table)
		}
	})
	return err
}
