// Package ring implements a fixed-capacity circular FIFO buffer.
//
// The buffer is allocated once and never grows. Full and empty states are
// disambiguated by an explicit element count rather than by comparing head
// and tail, so head == tail is never ambiguous.
//
// Ring performs no locking of its own. Callers that share a ring across
// goroutines must hold an external lock around every call.
package ring

// Ring is a fixed-capacity FIFO backed by a single slice.
type Ring[T any] struct {
	buf   []T
	head  int // oldest element
	tail  int // next free slot
	count int
}

// New returns a ring with the given capacity. Capacities below 1 are raised
// to 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v at the tail. It reports false, leaving the ring unchanged,
// when the ring is full.
func (r *Ring[T]) Push(v T) bool {
	if r.count == len(r.buf) {
		return false
	}
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % len(r.buf)
	r.count++
	return true
}

// Pop removes and returns the oldest element, zeroing the vacated slot.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, true
}

// Len returns the number of buffered elements.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.count == 0 }

// Full reports whether the ring is at capacity.
func (r *Ring[T]) Full() bool { return r.count == len(r.buf) }
