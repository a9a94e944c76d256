package event

import "iter"

// Log is a fixed-capacity ring buffer of events. Pushing past capacity
// silently discards the oldest entry; there is no way to lose a newer event
// to an older one.
type Log struct {
	buf   []Event
	head  int // index of the oldest entry
	count int
}

// NewLog creates a log holding at most capacity events. Capacity is clamped
// to a minimum of 1.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{buf: make([]Event, capacity)}
}

func (l *Log) Cap() int { return len(l.buf) }
func (l *Log) Len() int { return l.count }

// Push appends an event, evicting the oldest entry when full.
func (l *Log) Push(e Event) {
	if l.count < len(l.buf) {
		l.buf[(l.head+l.count)%len(l.buf)] = e
		l.count++
		return
	}
	l.buf[l.head] = e
	l.head = (l.head + 1) % len(l.buf)
}

// Recent returns up to the n most recent events, oldest-first. Asking for
// more than are stored returns everything stored.
func (l *Log) Recent(n int) []Event {
	if n > l.count {
		n = l.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Event, 0, n)
	start := l.count - n
	for i := start; i < l.count; i++ {
		out = append(out, l.buf[(l.head+i)%len(l.buf)])
	}
	return out
}

// All returns a restartable oldest-to-newest traversal of the stored events.
func (l *Log) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for i := 0; i < l.count; i++ {
			if !yield(l.buf[(l.head+i)%len(l.buf)]) {
				return
			}
		}
	}
}
