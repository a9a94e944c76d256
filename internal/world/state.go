package world

import (
	"math/rand"

	"github.com/petiteville/server/internal/component"
	"github.com/petiteville/server/internal/core/ecs"
	"github.com/petiteville/server/internal/core/event"
	"github.com/petiteville/server/internal/spatial"
	"github.com/petiteville/server/internal/tilemap"
)

// State is the whole simulation context: entity pool, component stores, tile
// map, spatial index, event log, RNG, tick counter, pending deaths. It is
// passed by reference into every system — never reached through a global.
type State struct {
	Pool     *ecs.Pool
	Registry *ecs.Registry

	Positions     *ecs.Store[component.Position]
	Hungers       *ecs.Store[component.Hunger]
	Healths       *ecs.Store[component.Health]
	Fatigues      *ecs.Store[component.Fatigue]
	Combat        *ecs.Store[component.CombatStats]
	GaitProfiles  *ecs.Store[component.GaitProfile]
	Gaits         *ecs.Store[component.Gait]
	Speeds        *ecs.Store[component.Speed]
	MoveCooldowns *ecs.Store[component.MoveCooldown]
	Icons         *ecs.Store[component.Icon]
	Names         *ecs.Store[component.Name]
	Nutritions    *ecs.Store[component.Nutrition]
	Intentions    *ecs.Store[component.Intention]
	ActionStates  *ecs.Store[component.ActionState]
	WanderTargets *ecs.Store[component.WanderTarget]

	Map     *tilemap.Map
	Spatial *spatial.Index
	Events  *event.Log

	// Rng is the single seeded random source. Every draw in the simulation
	// goes through it; combined with fixed system order and id-sorted
	// iteration this makes whole-tick replays bit-identical.
	Rng *rand.Rand

	// QuartierNames maps quartier ids to display names, supplied by the GIS
	// side at construction. Opaque to the core beyond the lookup.
	QuartierNames map[uint8]string

	tick         ecs.Tick
	pendingDeath []ecs.Entity
	pendingSet   map[ecs.Entity]struct{}
}

// Options configures a new State.
type Options struct {
	Seed          int64
	EventCapacity int
	Map           *tilemap.Map
	QuartierNames map[uint8]string
}

func NewState(opts Options) *State {
	reg := ecs.NewRegistry()
	return &State{
		Pool:          ecs.NewPool(),
		Registry:      reg,
		Positions:     ecs.NewStore[component.Position](reg),
		Hungers:       ecs.NewStore[component.Hunger](reg),
		Healths:       ecs.NewStore[component.Health](reg),
		Fatigues:      ecs.NewStore[component.Fatigue](reg),
		Combat:        ecs.NewStore[component.CombatStats](reg),
		GaitProfiles:  ecs.NewStore[component.GaitProfile](reg),
		Gaits:         ecs.NewStore[component.Gait](reg),
		Speeds:        ecs.NewStore[component.Speed](reg),
		MoveCooldowns: ecs.NewStore[component.MoveCooldown](reg),
		Icons:         ecs.NewStore[component.Icon](reg),
		Names:         ecs.NewStore[component.Name](reg),
		Nutritions:    ecs.NewStore[component.Nutrition](reg),
		Intentions:    ecs.NewStore[component.Intention](reg),
		ActionStates:  ecs.NewStore[component.ActionState](reg),
		WanderTargets: ecs.NewStore[component.WanderTarget](reg),
		Map:           opts.Map,
		Spatial:       spatial.NewIndex(),
		Events:        event.NewLog(opts.EventCapacity),
		Rng:           rand.New(rand.NewSource(opts.Seed)),
		QuartierNames: opts.QuartierNames,
		pendingSet:    make(map[ecs.Entity]struct{}, 16),
	}
}

// Tick is the current completed tick count.
func (s *State) Tick() ecs.Tick { return s.tick }

// AdvanceTick commits a completed scheduler pass. Callers must not advance
// if any phase did not run.
func (s *State) AdvanceTick() { s.tick++ }

// Spawn allocates a fresh entity and logs the Spawned event. Components are
// attached afterwards by loaders and scripts.
func (s *State) Spawn() ecs.Entity {
	id := s.Pool.Spawn()
	s.Events.Push(event.Event{Tick: s.tick, Kind: event.Spawned, Actor: id})
	return id
}

// QueueDeath marks an entity for removal by the consequences phase. Every
// later phase this tick skips it; callers emit the cause and Died events
// before queueing, never after.
func (s *State) QueueDeath(id ecs.Entity) {
	if _, dup := s.pendingSet[id]; dup {
		return
	}
	s.pendingSet[id] = struct{}{}
	s.pendingDeath = append(s.pendingDeath, id)
}

// Dying reports whether the entity is already queued for death this tick.
func (s *State) Dying(id ecs.Entity) bool {
	_, ok := s.pendingSet[id]
	return ok
}

// PendingDeaths is the number of queued deaths; zero outside the window
// between a lethal outcome and the consequences phase.
func (s *State) PendingDeaths() int { return len(s.pendingDeath) }

// DrainDeaths despawns every queued entity: each one is removed from the
// alive set and from every registered component store in one step.
func (s *State) DrainDeaths() {
	for _, id := range s.pendingDeath {
		s.Registry.RemoveAll(id)
		s.Pool.Despawn(id)
		delete(s.pendingSet, id)
	}
	s.pendingDeath = s.pendingDeath[:0]
}

// RebuildSpatial refreshes the tile index from the current alive, positioned
// entities. Runs once per tick before decisions.
func (s *State) RebuildSpatial() {
	s.Spatial.Rebuild(s.Pool.AliveSorted(), func(id ecs.Entity) (int32, int32, bool) {
		p, ok := s.Positions.Get(id)
		return p.X, p.Y, ok
	})
}
