package tilemap

import (
	"fmt"

	"github.com/petiteville/server/internal/core/ecs"
)

// Map is the chunked terrain/temperature/ownership grid. Width and height
// are in tiles; the chunk grid covers them rounded up, so edge chunks may
// contain padding tiles that are never addressable through the accessors.
type Map struct {
	width, height int32
	cols, rows    int32 // chunk grid dimensions
	chunks        []*Chunk
}

// New creates a map of the given size with all tiles at the zero terrain
// (Road) and the default temperature. The GIS side paints real terrain in.
func New(width, height int32) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tilemap: invalid size %dx%d", width, height)
	}
	cols := (width + ChunkSize - 1) / ChunkSize
	rows := (height + ChunkSize - 1) / ChunkSize
	m := &Map{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		chunks: make([]*Chunk, cols*rows),
	}
	for i := range m.chunks {
		m.chunks[i] = newChunk()
	}
	return m, nil
}

func (m *Map) Width() int32      { return m.width }
func (m *Map) Height() int32     { return m.height }
func (m *Map) ChunkCols() int32  { return m.cols }
func (m *Map) ChunkRows() int32  { return m.rows }
func (m *Map) ChunkCount() int   { return len(m.chunks) }
func (m *Map) ChunkAt(col, row int32) *Chunk {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return nil
	}
	return m.chunks[row*m.cols+col]
}

// InBounds reports whether (x,y) is a valid tile coordinate. Coordinates are
// never negative on a valid map.
func (m *Map) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// locate resolves a tile coordinate to its chunk and chunk-local offset.
// Callers bounds-check first.
func (m *Map) locate(x, y int32) (*Chunk, int) {
	c := m.chunks[(y/ChunkSize)*m.cols+(x/ChunkSize)]
	return c, int(y%ChunkSize)*ChunkSize + int(x%ChunkSize)
}

func (m *Map) TerrainAt(x, y int32) (Terrain, bool) {
	if !m.InBounds(x, y) {
		return Wall, false
	}
	c, off := m.locate(x, y)
	return c.Terrain[off], true
}

// Walkable reports whether an entity can stand on (x,y). Out-of-bounds tiles
// are never walkable.
func (m *Map) Walkable(x, y int32) bool {
	t, ok := m.TerrainAt(x, y)
	return ok && t.Walkable()
}

func (m *Map) SetTerrain(x, y int32, t Terrain, now ecs.Tick) {
	if !m.InBounds(x, y) {
		return
	}
	c, off := m.locate(x, y)
	c.Terrain[off] = t
	c.settled = false
	c.touch(now)
}

func (m *Map) TemperatureAt(x, y int32) (float32, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	c, off := m.locate(x, y)
	return c.Temperature[off], true
}

func (m *Map) BuildingAt(x, y int32) (uint32, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	c, off := m.locate(x, y)
	return c.Building[off], true
}

func (m *Map) SetBuilding(x, y int32, id uint32, now ecs.Tick) {
	if !m.InBounds(x, y) {
		return
	}
	c, off := m.locate(x, y)
	c.Building[off] = id
	c.touch(now)
}

func (m *Map) BlockAt(x, y int32) (uint16, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	c, off := m.locate(x, y)
	return c.Block[off], true
}

func (m *Map) SetBlock(x, y int32, id uint16, now ecs.Tick) {
	if !m.InBounds(x, y) {
		return
	}
	c, off := m.locate(x, y)
	c.Block[off] = id
	c.touch(now)
}

func (m *Map) QuartierAt(x, y int32) (uint8, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	c, off := m.locate(x, y)
	return c.Quartier[off], true
}

func (m *Map) SetQuartier(x, y int32, id uint8, now ecs.Tick) {
	if !m.InBounds(x, y) {
		return
	}
	c, off := m.locate(x, y)
	c.Quartier[off] = id
	c.touch(now)
}

// RelaxTemperature runs one environment step over every unsettled chunk and
// returns the number of tiles whose temperature moved.
func (m *Map) RelaxTemperature() int {
	changed := 0
	for _, c := range m.chunks {
		if c.settled {
			continue
		}
		changed += c.relax()
	}
	return changed
}
