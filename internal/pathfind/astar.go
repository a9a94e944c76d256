// Package pathfind implements A* search over 8-connected tile grids with an
// octile heuristic and a hard expansion budget. "No path" is a normal result,
// never an error: callers hold position or pick a new target.
package pathfind

import "container/heap"

// Grid is the read-only view the search needs. The tile map satisfies it.
type Grid interface {
	InBounds(x, y int32) bool
	Walkable(x, y int32) bool
}

// Point is one tile coordinate on the grid.
type Point struct {
	X, Y int32
}

const (
	// CardinalCost and DiagonalCost define the movement cost model.
	// 141 is √2×100 truncated, which keeps the octile heuristic admissible.
	CardinalCost = 100
	DiagonalCost = 141

	// MaxExpansions bounds worst-case search latency on large grids. Once
	// this many nodes have been expanded the search gives up.
	MaxExpansions = 8192
)

// neighbor order is fixed so the open-set contents, and therefore tie
// resolution, are identical across runs.
var neighbors = [8]struct {
	dx, dy int32
	cost   int32
}{
	{0, -1, CardinalCost},
	{1, 0, CardinalCost},
	{0, 1, CardinalCost},
	{-1, 0, CardinalCost},
	{1, -1, DiagonalCost},
	{1, 1, DiagonalCost},
	{-1, 1, DiagonalCost},
	{-1, -1, DiagonalCost},
}

// FindPath searches from start to goal. The returned path excludes start and
// ends at goal; it is empty (non-nil) when start == goal. The goal tile is
// always treated as traversable regardless of its terrain, so an agent can
// path onto an occupied or special tile it could not cross. Returns
// (nil, false) when either endpoint is off the grid, the goal is unreachable,
// or the expansion budget runs out.
func FindPath(g Grid, start, goal Point) ([]Point, bool) {
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) {
		return nil, false
	}
	if start == goal {
		return []Point{}, true
	}

	gScore := map[Point]int32{start: 0}
	cameFrom := map[Point]Point{}
	closed := map[Point]struct{}{}

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, node{p: start, f: octile(start, goal)})

	expanded := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		if cur.p == goal {
			return rebuild(cameFrom, start, goal), true
		}
		if _, done := closed[cur.p]; done {
			continue // stale duplicate entry
		}
		closed[cur.p] = struct{}{}

		expanded++
		if expanded > MaxExpansions {
			return nil, false
		}

		for _, n := range neighbors {
			next := Point{cur.p.X + n.dx, cur.p.Y + n.dy}
			if !g.InBounds(next.X, next.Y) {
				continue
			}
			if next != goal && !g.Walkable(next.X, next.Y) {
				continue
			}
			tentative := gScore[cur.p] + n.cost
			if prev, seen := gScore[next]; seen && tentative >= prev {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur.p
			heap.Push(open, node{p: next, f: tentative + octile(next, goal)})
		}
	}
	return nil, false
}

// octile is the admissible, consistent heuristic for this cost model:
// 100×max(dx,dy) + 41×min(dx,dy).
func octile(a, b Point) int32 {
	dx := abs32(a.X - b.X)
	dy := abs32(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return CardinalCost*dx + (DiagonalCost-CardinalCost)*dy
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func rebuild(cameFrom map[Point]Point, start, goal Point) []Point {
	var rev []Point
	for p := goal; p != start; p = cameFrom[p] {
		rev = append(rev, p)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// node is an open-set entry; seq breaks f-ties by insertion order so the
// heap's behavior does not depend on anything but the input.
type node struct {
	p   Point
	f   int32
	seq int
}

type openSet struct {
	nodes []node
	seq   int
}

func (o *openSet) Len() int { return len(o.nodes) }

func (o *openSet) Less(i, j int) bool {
	if o.nodes[i].f != o.nodes[j].f {
		return o.nodes[i].f < o.nodes[j].f
	}
	return o.nodes[i].seq < o.nodes[j].seq
}

func (o *openSet) Swap(i, j int) { o.nodes[i], o.nodes[j] = o.nodes[j], o.nodes[i] }

func (o *openSet) Push(x any) {
	n := x.(node)
	n.seq = o.seq
	o.seq++
	o.nodes = append(o.nodes, n)
}

func (o *openSet) Pop() any {
	n := o.nodes[len(o.nodes)-1]
	o.nodes = o.nodes[:len(o.nodes)-1]
	return n
}
