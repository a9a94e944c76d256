package event

import (
	"testing"

	"github.com/petiteville/server/internal/core/ecs"
)

func push(l *Log, n int) {
	for i := 0; i < n; i++ {
		l.Push(Event{Tick: ecs.Tick(i), Kind: Moved, Actor: ecs.Entity(i + 1)})
	}
}

func TestLogRetainsLastCapacity(t *testing.T) {
	const capacity, extra = 8, 5
	l := NewLog(capacity)
	push(l, capacity+extra)

	if l.Len() != capacity {
		t.Fatalf("len = %d, want %d", l.Len(), capacity)
	}
	all := l.Recent(capacity)
	for i, e := range all {
		want := ecs.Tick(extra + i)
		if e.Tick != want {
			t.Fatalf("entry %d has tick %d, want %d (oldest-first)", i, e.Tick, want)
		}
	}
}

func TestRecentMoreThanStored(t *testing.T) {
	l := NewLog(16)
	push(l, 3)
	got := l.Recent(100)
	if len(got) != 3 {
		t.Fatalf("Recent(100) = %d events, want 3", len(got))
	}
	if got[0].Tick != 0 || got[2].Tick != 2 {
		t.Fatalf("events out of order: %v", got)
	}
}

func TestCapacityClampedToOne(t *testing.T) {
	for _, c := range []int{0, -5} {
		l := NewLog(c)
		if l.Cap() != 1 {
			t.Fatalf("NewLog(%d).Cap() = %d, want 1", c, l.Cap())
		}
		push(l, 3)
		if l.Len() != 1 {
			t.Fatalf("len = %d, want 1", l.Len())
		}
		if l.Recent(1)[0].Tick != 2 {
			t.Fatal("clamped log did not keep the newest event")
		}
	}
}

func TestAllRestartable(t *testing.T) {
	l := NewLog(4)
	push(l, 6) // retains ticks 2..5

	collect := func() []ecs.Tick {
		var out []ecs.Tick
		for e := range l.All() {
			out = append(out, e.Tick)
		}
		return out
	}
	first := collect()
	second := collect()
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("traversals returned %d and %d events, want 4", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("second traversal differs from the first")
		}
		if first[i] != ecs.Tick(2+i) {
			t.Fatalf("traversal not oldest-to-newest: %v", first)
		}
	}
}

func TestAllEarlyStop(t *testing.T) {
	l := NewLog(8)
	push(l, 8)
	seen := 0
	for range l.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("early break saw %d events", seen)
	}
}
