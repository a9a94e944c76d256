package ecs

import "sort"

// Entity is an opaque simulation entity id. Ids start at 1 and grow
// monotonically; 0 is reserved and never allocated. An id is never reused
// after despawn, so a stale reference can be detected by an aliveness check.
type Entity uint64

// Tick is the logical simulation tick counter. It is a distinct type from
// Entity so the two can never be mixed up in a signature.
type Tick uint64

func (e Entity) IsZero() bool { return e == 0 }

// Pool manages entity allocation and the alive set.
type Pool struct {
	nextID Entity
	alive  map[Entity]struct{}
}

func NewPool() *Pool {
	return &Pool{
		nextID: 1,
		alive:  make(map[Entity]struct{}, 256),
	}
}

// Spawn allocates a fresh entity id and adds it to the alive set.
// No components are implied.
func (p *Pool) Spawn() Entity {
	id := p.nextID
	p.nextID++
	p.alive[id] = struct{}{}
	return id
}

func (p *Pool) Alive(id Entity) bool {
	_, ok := p.alive[id]
	return ok
}

func (p *Pool) Count() int { return len(p.alive) }

// Despawn removes the entity from the alive set. Component cleanup is the
// Registry's job; callers go through Registry.RemoveAll first.
func (p *Pool) Despawn(id Entity) {
	delete(p.alive, id)
}

// AliveSorted returns the alive set as a slice sorted by id. Systems that
// iterate entities for any order-sensitive effect must use this, never the
// map directly.
func (p *Pool) AliveSorted() []Entity {
	ids := make([]Entity, 0, len(p.alive))
	for id := range p.alive {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
