package world

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/petiteville/server/internal/core/ecs"
)

// Snapshot produces a canonical digest of all observable state: the alive id
// set, every component value in id order, the event count and the tick. Two
// runs from the same seed and input sequence must produce identical digests
// every tick; two different seeds must diverge.
func (s *State) Snapshot() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d alive=%v events=%d\n", s.tick, s.Pool.AliveSorted(), s.Events.Len())
	writeStore(&b, "pos", s.Positions)
	writeStore(&b, "hunger", s.Hungers)
	writeStore(&b, "health", s.Healths)
	writeStore(&b, "fatigue", s.Fatigues)
	writeStore(&b, "combat", s.Combat)
	writeStore(&b, "gaitprofile", s.GaitProfiles)
	writeStore(&b, "gait", s.Gaits)
	writeStore(&b, "speed", s.Speeds)
	writeStore(&b, "movecd", s.MoveCooldowns)
	writeStore(&b, "icon", s.Icons)
	writeStore(&b, "name", s.Names)
	writeStore(&b, "nutrition", s.Nutritions)
	writeStore(&b, "intent", s.Intentions)
	writeStore(&b, "actionstate", s.ActionStates)
	writeStore(&b, "wander", s.WanderTargets)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeStore[T any](b *strings.Builder, label string, st *ecs.Store[T]) {
	fmt.Fprintf(b, "%s:", label)
	ecs.EachOrdered(st, func(id ecs.Entity, c T) {
		fmt.Fprintf(b, " %d=%+v", id, c)
	})
	b.WriteByte('\n')
}
