package tilemap

import "testing"

func TestWalkability(t *testing.T) {
	walkable := []Terrain{Road, Floor, Door, Courtyard, Garden, Bridge}
	for _, terr := range walkable {
		if !terr.Walkable() {
			t.Errorf("%s should be walkable", terr)
		}
	}
	for _, terr := range []Terrain{Wall, Water} {
		if terr.Walkable() {
			t.Errorf("%s should not be walkable", terr)
		}
	}
}

func TestChunkAddressing(t *testing.T) {
	m, err := New(130, 70)
	if err != nil {
		t.Fatal(err)
	}
	if m.ChunkCols() != 3 || m.ChunkRows() != 2 {
		t.Fatalf("chunk grid %dx%d, want 3x2", m.ChunkCols(), m.ChunkRows())
	}

	// A write past the first chunk column must land in chunk (1,0) and be
	// readable back through the same coordinate.
	m.SetTerrain(70, 3, Water, 0)
	if terr, _ := m.TerrainAt(70, 3); terr != Water {
		t.Fatalf("terrain at (70,3) = %s, want water", terr)
	}
	if terr, _ := m.TerrainAt(6, 3); terr != Road {
		t.Fatalf("terrain at (6,3) = %s, want road (untouched)", terr)
	}
	if m.ChunkAt(1, 0) == nil || !m.ChunkAt(1, 0).Dirty() {
		t.Fatal("chunk (1,0) not marked dirty after write")
	}
	if m.ChunkAt(0, 0).Dirty() {
		t.Fatal("chunk (0,0) dirty without a write")
	}
}

func TestBounds(t *testing.T) {
	m, err := New(100, 50)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		x, y int32
		in   bool
	}{
		{0, 0, true},
		{99, 49, true},
		{100, 0, false},
		{0, 50, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.in {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.in)
		}
	}
	if _, ok := m.TerrainAt(100, 0); ok {
		t.Fatal("TerrainAt out of bounds reported ok")
	}
	if m.Walkable(-1, -1) {
		t.Fatal("out-of-bounds tile reported walkable")
	}
}

func TestTouchTracking(t *testing.T) {
	m, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	m.SetBuilding(10, 10, 42, 77)
	c := m.ChunkAt(0, 0)
	if c.LastTouched() != 77 {
		t.Fatalf("lastTouched = %d, want 77", c.LastTouched())
	}
	if b, _ := m.BuildingAt(10, 10); b != 42 {
		t.Fatalf("building = %d, want 42", b)
	}
}

func TestTemperatureRelaxation(t *testing.T) {
	m, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	m.SetTerrain(5, 5, Water, 0) // target 9.0, starts at 15.0

	m.RelaxTemperature()
	temp, _ := m.TemperatureAt(5, 5)
	if temp != DefaultTemperature-MaxTemperatureStep {
		t.Fatalf("after one step temp = %v, want %v", temp, DefaultTemperature-MaxTemperatureStep)
	}

	// Relaxation converges onto the target without overshooting.
	for i := 0; i < 200; i++ {
		m.RelaxTemperature()
	}
	temp, _ = m.TemperatureAt(5, 5)
	target := Water.TargetTemperature()
	if diff := temp - target; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("temp %v did not converge to %v", temp, target)
	}
}

func TestSettledChunksSkip(t *testing.T) {
	m, err := New(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	// Road target is 16.0; from 15.0 the chunk needs 10 steps, then settles.
	for i := 0; i < 20; i++ {
		m.RelaxTemperature()
	}
	if changed := m.RelaxTemperature(); changed != 0 {
		t.Fatalf("settled chunk still changed %d tiles", changed)
	}
	// Touching terrain unsettles the chunk.
	m.SetTerrain(0, 0, Water, 1)
	if changed := m.RelaxTemperature(); changed == 0 {
		t.Fatal("terrain change did not unsettle the chunk")
	}
}
