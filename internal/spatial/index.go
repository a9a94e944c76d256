// Package spatial provides the tile-coordinate → entity lookup. The index is
// rebuilt from scratch once per tick; no incremental maintenance, chosen for
// simplicity over micro-optimization.
package spatial

import "github.com/petiteville/server/internal/core/ecs"

type coord struct {
	x, y int32
}

// Index maps occupied tiles to the entities standing on them. Because it is
// rebuilt from an id-sorted entity list, every per-tile slice is sorted by
// id and queries are deterministic.
type Index struct {
	cells map[coord][]ecs.Entity
}

func NewIndex() *Index {
	return &Index{cells: make(map[coord][]ecs.Entity, 256)}
}

// Rebuild clears the index and reinserts every entity for which pos reports
// a position. ids must be sorted ascending.
func (idx *Index) Rebuild(ids []ecs.Entity, pos func(ecs.Entity) (x, y int32, ok bool)) {
	for k := range idx.cells {
		delete(idx.cells, k)
	}
	for _, id := range ids {
		x, y, ok := pos(id)
		if !ok {
			continue
		}
		c := coord{x, y}
		idx.cells[c] = append(idx.cells[c], id)
	}
}

// At returns the entities on exactly (x,y), sorted by id. The returned slice
// is shared with the index; callers must not mutate it.
func (idx *Index) At(x, y int32) []ecs.Entity {
	return idx.cells[coord{x, y}]
}

// InRange returns all entities within Chebyshev distance r of (x,y), sorted
// by id, by scanning the bounded square of candidate tiles.
func (idx *Index) InRange(x, y, r int32) []ecs.Entity {
	if r < 0 {
		return nil
	}
	var out []ecs.Entity
	for cy := y - r; cy <= y+r; cy++ {
		for cx := x - r; cx <= x+r; cx++ {
			out = append(out, idx.cells[coord{cx, cy}]...)
		}
	}
	sortEntities(out)
	return out
}

func sortEntities(ids []ecs.Entity) {
	// insertion sort; neighborhoods are small
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
