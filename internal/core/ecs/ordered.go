package ecs

import "sort"

// Keys returns the store's entity ids sorted ascending. This is the single
// audited path for deterministic iteration: hash-map order must never leak
// into an observable outcome (RNG draws, first-match picks, event emission).
func Keys[T any](s *Store[T]) []Entity {
	ids := make([]Entity, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EachOrdered visits the store's entries in ascending id order.
func EachOrdered[T any](s *Store[T], fn func(Entity, T)) {
	for _, id := range Keys(s) {
		fn(id, s.data[id])
	}
}

// Keys2 returns the sorted ids of entities present in both stores. Iterates
// the smaller store and checks the larger one.
func Keys2[A, B any](sa *Store[A], sb *Store[B]) []Entity {
	var ids []Entity
	if sa.Len() <= sb.Len() {
		ids = make([]Entity, 0, sa.Len())
		for id := range sa.data {
			if _, ok := sb.data[id]; ok {
				ids = append(ids, id)
			}
		}
	} else {
		ids = make([]Entity, 0, sb.Len())
		for id := range sb.data {
			if _, ok := sa.data[id]; ok {
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
