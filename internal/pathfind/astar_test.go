package pathfind

import (
	"testing"

	"github.com/petiteville/server/internal/tilemap"
)

func openGrid(t *testing.T, w, h int32) *tilemap.Map {
	t.Helper()
	m, err := tilemap.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestOpenGridStepCount(t *testing.T) {
	m := openGrid(t, 20, 20)
	path, ok := FindPath(m, Point{0, 0}, Point{10, 7})
	if !ok {
		t.Fatal("no path on an open grid")
	}
	// Chebyshev distance: diagonals cover both axes at once.
	if len(path) != 10 {
		t.Fatalf("path has %d steps, want 10", len(path))
	}
	if path[len(path)-1] != (Point{10, 7}) {
		t.Fatalf("path ends at %v, want goal", path[len(path)-1])
	}
	// Every step is 8-connected and walkable.
	prev := Point{0, 0}
	for i, p := range path {
		dx, dy := p.X-prev.X, p.Y-prev.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("step %d from %v to %v is not a single move", i, prev, p)
		}
		prev = p
	}
}

func TestStartEqualsGoal(t *testing.T) {
	m := openGrid(t, 5, 5)
	path, ok := FindPath(m, Point{2, 2}, Point{2, 2})
	if !ok {
		t.Fatal("start==goal must succeed")
	}
	if len(path) != 0 {
		t.Fatalf("path has %d steps, want 0", len(path))
	}
}

func TestOutOfBoundsEndpoints(t *testing.T) {
	m := openGrid(t, 5, 5)
	if _, ok := FindPath(m, Point{-1, 0}, Point{2, 2}); ok {
		t.Fatal("out-of-bounds start must fail")
	}
	if _, ok := FindPath(m, Point{0, 0}, Point{5, 5}); ok {
		t.Fatal("out-of-bounds goal must fail")
	}
}

func TestEnclosedGoalUnreachable(t *testing.T) {
	m := openGrid(t, 20, 20)
	// Wall ring with no entrance around (10,10).
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			m.SetTerrain(10+dx, 10+dy, tilemap.Wall, 0)
		}
	}
	if _, ok := FindPath(m, Point{0, 0}, Point{10, 10}); ok {
		t.Fatal("fully enclosed goal must be unreachable")
	}
}

func TestGoalTileAlwaysTraversable(t *testing.T) {
	m := openGrid(t, 10, 10)
	m.SetTerrain(5, 5, tilemap.Wall, 0)
	path, ok := FindPath(m, Point{0, 0}, Point{5, 5})
	if !ok {
		t.Fatal("goal on a wall tile must still be reachable")
	}
	if path[len(path)-1] != (Point{5, 5}) {
		t.Fatal("path does not end on the goal")
	}
	// The wall is traversable only as the goal, not as a corridor.
	m.SetTerrain(7, 7, tilemap.Wall, 0)
	path, ok = FindPath(m, Point{0, 0}, Point{9, 9})
	if !ok {
		t.Fatal("detour around interior wall failed")
	}
	for _, p := range path[:len(path)-1] {
		if !m.Walkable(p.X, p.Y) {
			t.Fatalf("path crosses non-walkable interior tile %v", p)
		}
	}
}

func TestExpansionBudget(t *testing.T) {
	// A sealed goal on a grid whose reachable region exceeds the budget:
	// the search must give up instead of expanding two hundred thousand
	// nodes.
	m := openGrid(t, 200, 200)
	goal := Point{199, 199}
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			m.SetTerrain(goal.X+dx, goal.Y+dy, tilemap.Wall, 0)
		}
	}
	if _, ok := FindPath(m, Point{0, 0}, goal); ok {
		t.Fatal("sealed goal must return no path")
	}
}

func TestDeterministicPaths(t *testing.T) {
	m := openGrid(t, 40, 40)
	m.SetTerrain(20, 0, tilemap.Wall, 0)
	m.SetTerrain(20, 1, tilemap.Wall, 0)
	m.SetTerrain(20, 2, tilemap.Wall, 0)
	first, ok := FindPath(m, Point{1, 1}, Point{38, 2})
	if !ok {
		t.Fatal("no path")
	}
	for i := 0; i < 5; i++ {
		again, ok := FindPath(m, Point{1, 1}, Point{38, 2})
		if !ok || len(again) != len(first) {
			t.Fatal("repeated search returned a different result")
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("repeated search diverged at step %d", j)
			}
		}
	}
}
