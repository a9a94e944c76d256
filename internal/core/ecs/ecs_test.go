package ecs

import "testing"

func TestPoolSpawnMonotonic(t *testing.T) {
	p := NewPool()
	first := p.Spawn()
	if first == 0 {
		t.Fatal("id 0 is reserved and must never be allocated")
	}
	prev := first
	for i := 0; i < 100; i++ {
		id := p.Spawn()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestPoolNoReuseAfterDespawn(t *testing.T) {
	p := NewPool()
	a := p.Spawn()
	p.Despawn(a)
	b := p.Spawn()
	if b == a {
		t.Fatalf("id %d reused after despawn", a)
	}
	if p.Alive(a) {
		t.Fatal("despawned entity still alive")
	}
	if !p.Alive(b) {
		t.Fatal("fresh entity not alive")
	}
}

func TestRegistryRemoveAll(t *testing.T) {
	reg := NewRegistry()
	pos := NewStore[[2]int32](reg)
	hp := NewStore[int32](reg)

	p := NewPool()
	e := p.Spawn()
	pos.Set(e, [2]int32{3, 4})
	hp.Set(e, 10)

	reg.RemoveAll(e)
	if pos.Has(e) || hp.Has(e) {
		t.Fatal("RemoveAll left residual components")
	}
}

func TestKeysSorted(t *testing.T) {
	reg := NewRegistry()
	s := NewStore[int](reg)
	p := NewPool()
	var spawned []Entity
	for i := 0; i < 50; i++ {
		e := p.Spawn()
		s.Set(e, i)
		spawned = append(spawned, e)
	}
	keys := Keys(s)
	if len(keys) != len(spawned) {
		t.Fatalf("got %d keys, want %d", len(keys), len(spawned))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			t.Fatalf("keys not strictly ascending at %d: %v", i, keys[i-1:i+1])
		}
	}
}

func TestKeys2Intersection(t *testing.T) {
	reg := NewRegistry()
	a := NewStore[int](reg)
	b := NewStore[string](reg)
	p := NewPool()

	both := p.Spawn()
	onlyA := p.Spawn()
	onlyB := p.Spawn()
	a.Set(both, 1)
	a.Set(onlyA, 2)
	b.Set(both, "x")
	b.Set(onlyB, "y")

	keys := Keys2(a, b)
	if len(keys) != 1 || keys[0] != both {
		t.Fatalf("Keys2 = %v, want [%d]", keys, both)
	}
}

func TestAliveSorted(t *testing.T) {
	p := NewPool()
	for i := 0; i < 20; i++ {
		p.Spawn()
	}
	ids := p.AliveSorted()
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("alive ids not sorted: %v", ids)
		}
	}
}
