// Package testutil provides listeners and helpers for exercising
// dispatchers in tests and benchmarks.
package testutil

import (
	"sync"
	"sync/atomic"

	"github.com/comalice/eventx"
)

// Recorder is a listener that keeps every (code, param) pair it receives.
// All methods are safe for concurrent use, so a Recorder works under a
// running pump as well as in single-goroutine tests.
type Recorder struct {
	mu    sync.Mutex
	calls []eventx.Event
}

// HandleEvent appends the invocation.
func (r *Recorder) HandleEvent(code, param int) {
	r.mu.Lock()
	r.calls = append(r.calls, eventx.Event{Code: code, Param: param})
	r.mu.Unlock()
}

// Calls returns a copy of the recorded invocations in order.
func (r *Recorder) Calls() []eventx.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]eventx.Event, len(r.calls))
	copy(out, r.calls)
	return out
}

// Codes returns just the Code values, in invocation order.
func (r *Recorder) Codes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Code
	}
	return out
}

// Params returns just the Param values, in invocation order.
func (r *Recorder) Params() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Param
	}
	return out
}

// Count returns the number of invocations so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// Counter is a listener that only counts invocations. It is cheaper than
// Recorder for throughput tests.
type Counter struct {
	n atomic.Int64
}

// HandleEvent increments the counter.
func (c *Counter) HandleEvent(code, param int) { c.n.Add(1) }

// Count returns the invocations so far.
func (c *Counter) Count() int64 { return c.n.Load() }

// Reset zeroes the counter.
func (c *Counter) Reset() { c.n.Store(0) }

// Feed submits events to d at the given priority and returns how many were
// accepted.
func Feed(d *eventx.Dispatcher, pri eventx.Priority, events ...eventx.Event) int {
	accepted := 0
	for _, ev := range events {
		if d.QueueEvent(ev.Code, ev.Param, pri) {
			accepted++
		}
	}
	return accepted
}
