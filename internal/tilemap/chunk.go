package tilemap

import "github.com/petiteville/server/internal/core/ecs"

const (
	// ChunkSize is the edge length of a chunk in tiles.
	ChunkSize = 64
	// ChunkTiles is the number of tiles in one chunk.
	ChunkTiles = ChunkSize * ChunkSize

	// DefaultTemperature is the transient temperature every tile starts at;
	// temperature is never persisted and resets to this on load.
	DefaultTemperature float32 = 15.0

	// MaxTemperatureStep bounds how far a tile's temperature can move toward
	// its terrain target in one tick.
	MaxTemperatureStep float32 = 0.1
)

// Chunk is the 64×64 storage and serialization unit of the grid. Tiles are
// stored offset-major: offset = localY*ChunkSize + localX, in [0, 4095].
type Chunk struct {
	Terrain     [ChunkTiles]Terrain
	Temperature [ChunkTiles]float32
	Building    [ChunkTiles]uint32
	Block       [ChunkTiles]uint16
	Quartier    [ChunkTiles]uint8

	dirty       bool
	lastTouched ecs.Tick
	settled     bool // temperature at equilibrium, relaxation can skip it
}

func newChunk() *Chunk {
	c := &Chunk{}
	for i := range c.Temperature {
		c.Temperature[i] = DefaultTemperature
	}
	return c
}

// Dirty reports whether the chunk's static layers changed since the last
// serialization.
func (c *Chunk) Dirty() bool { return c.dirty }

// ClearDirty is called after the chunk has been written out.
func (c *Chunk) ClearDirty() { c.dirty = false }

// LastTouched is the tick of the most recent static-layer write.
func (c *Chunk) LastTouched() ecs.Tick { return c.lastTouched }

func (c *Chunk) touch(now ecs.Tick) {
	c.dirty = true
	c.lastTouched = now
}

// relax moves every tile's temperature one bounded step toward its terrain
// target. Returns the number of tiles that moved; a chunk with no movement
// is settled until its terrain changes.
func (c *Chunk) relax() int {
	changed := 0
	for i := range c.Temperature {
		target := c.Terrain[i].TargetTemperature()
		diff := target - c.Temperature[i]
		if diff == 0 {
			continue
		}
		step := diff
		if step > MaxTemperatureStep {
			step = MaxTemperatureStep
		} else if step < -MaxTemperatureStep {
			step = -MaxTemperatureStep
		}
		c.Temperature[i] += step
		changed++
	}
	if changed == 0 {
		c.settled = true
	}
	return changed
}
