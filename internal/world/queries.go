package world

import (
	"fmt"
	"strings"

	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/tilemap"
)

// Read-only queries for the host/renderer. The core never calls into
// rendering; these are sampled once per displayed frame.

// TerrainAt returns the terrain at a coordinate.
func (s *State) TerrainAt(x, y int32) (tilemap.Terrain, bool) {
	return s.Map.TerrainAt(x, y)
}

// TemperatureAt returns the transient temperature at a coordinate.
func (s *State) TemperatureAt(x, y int32) (float32, bool) {
	return s.Map.TemperatureAt(x, y)
}

// EntitiesAt returns the entities standing on exactly (x,y), sorted by id.
func (s *State) EntitiesAt(x, y int32) []ecs.Entity {
	return s.Spatial.At(x, y)
}

// EntitiesInRange returns the entities within Chebyshev distance r of (x,y),
// sorted by id.
func (s *State) EntitiesInRange(x, y, r int32) []ecs.Entity {
	return s.Spatial.InRange(x, y, r)
}

// QuartierName resolves a quartier id to its display name, or "" when the
// id is unassigned or unknown.
func (s *State) QuartierName(id uint8) string {
	if id == 0 {
		return ""
	}
	return s.QuartierNames[id]
}

// StatusSummary renders one line per live entity, sorted by id.
func (s *State) StatusSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d, %d alive\n", s.tick, s.Pool.Count())
	for _, id := range s.Pool.AliveSorted() {
		icon := '?'
		if ic, ok := s.Icons.Get(id); ok {
			icon = rune(ic)
		}
		name := "(unnamed)"
		if n, ok := s.Names.Get(id); ok {
			name = string(n)
		}
		fmt.Fprintf(&b, "%c #%d %s", icon, id, name)
		if p, ok := s.Positions.Get(id); ok {
			fmt.Fprintf(&b, " @(%d,%d)", p.X, p.Y)
			if q, ok := s.Map.QuartierAt(p.X, p.Y); ok && q != 0 {
				if qn := s.QuartierName(q); qn != "" {
					fmt.Fprintf(&b, " [%s]", qn)
				}
			}
		}
		if h, ok := s.Healths.Get(id); ok {
			fmt.Fprintf(&b, " hp %d/%d", h.Current, h.Max)
		}
		if h, ok := s.Hungers.Get(id); ok {
			fmt.Fprintf(&b, " hunger %d/%d", h.Current, h.Max)
		}
		if it, ok := s.Intentions.Get(id); ok {
			fmt.Fprintf(&b, " -> %s", it.Action)
			if !it.Target.IsZero() {
				fmt.Fprintf(&b, " #%d", it.Target)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RecentEventLines renders up to the n most recent events oldest-first.
func (s *State) RecentEventLines(n int) []string {
	evs := s.Events.Recent(n)
	lines := make([]string, len(evs))
	for i, e := range evs {
		lines[i] = e.Line()
	}
	return lines
}
