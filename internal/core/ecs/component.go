package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on despawn.
type Removable interface {
	Remove(id Entity)
}

// Store is a generic typed map store for ECS components. Components are plain
// values; no reflect, no interface{} — pure generics.
type Store[T any] struct {
	data map[Entity]T
}

// NewStore creates a store and registers it with reg so despawn cleanup
// covers it automatically. Every store must be built through this.
func NewStore[T any](reg *Registry) *Store[T] {
	s := &Store[T]{data: make(map[Entity]T, 256)}
	reg.Register(s)
	return s
}

func (s *Store[T]) Set(id Entity, c T) {
	s.data[id] = c
}

func (s *Store[T]) Get(id Entity) (T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id Entity) {
	delete(s.data, id)
}

func (s *Store[T]) Has(id Entity) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each iterates in map order. Only safe for effects that are order-blind;
// anything touching the RNG, the event log, or first-match selection goes
// through Keys / EachOrdered instead.
func (s *Store[T]) Each(fn func(Entity, T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
