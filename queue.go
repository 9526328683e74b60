package eventx

import (
	"sync"
	"sync/atomic"

	"github.com/comalice/eventx/internal/ring"
)

// locker guards queue mutation. InterruptSafe dispatchers use a real mutex;
// NotInterruptSafe dispatchers use the no-op variant and rely on the
// caller's single-goroutine promise.
type locker interface {
	Lock()
	Unlock()
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// eventQueue is one priority lane: a fixed ring of events behind a locker,
// plus an atomic length mirror so emptiness can be checked without taking
// the guard.
type eventQueue struct {
	mu   locker
	ring *ring.Ring[Event]
	n    atomic.Int64
}

func newEventQueue(capacity int, safety SafetyMode) *eventQueue {
	q := &eventQueue{ring: ring.New[Event](capacity)}
	if safety == InterruptSafe {
		q.mu = new(sync.Mutex)
	} else {
		q.mu = nopLocker{}
	}
	return q
}

// submit inserts ev at the tail, reporting false when the lane is full. The
// fullness check sits inside the guarded region: tested outside it, two
// producers could both pass and one would overwrite a live slot.
func (q *eventQueue) submit(ev Event) bool {
	q.mu.Lock()
	if !q.ring.Push(ev) {
		q.mu.Unlock()
		return false
	}
	q.n.Add(1)
	q.mu.Unlock()
	return true
}

// pop removes the oldest event. The emptiness check sits before the guarded
// region, on the atomic mirror: a false "empty" only defers the event to the
// next cycle, and since only the single consumer ever decrements, a
// non-empty observation still holds once the guard is taken.
func (q *eventQueue) pop() (Event, bool) {
	if q.n.Load() == 0 {
		return Event{}, false
	}
	q.mu.Lock()
	ev, ok := q.ring.Pop()
	if ok {
		q.n.Add(-1)
	}
	q.mu.Unlock()
	return ev, ok
}

// size, empty, and full read the atomic mirror; they never take the guard.
func (q *eventQueue) size() int   { return int(q.n.Load()) }
func (q *eventQueue) empty() bool { return q.n.Load() == 0 }
func (q *eventQueue) full() bool  { return int(q.n.Load()) == q.ring.Cap() }
