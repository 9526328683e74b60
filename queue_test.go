package eventx

import (
	"sync"
	"testing"
)

// Events come out in submission order within one queue.
func TestEventQueueFIFO(t *testing.T) {
	q := newEventQueue(4, InterruptSafe)
	for i := 0; i < 4; i++ {
		if !q.submit(Event{Code: 1, Param: i}) {
			t.Fatalf("submit %d failed", i)
		}
	}
	for i := 0; i < 4; i++ {
		ev, ok := q.pop()
		if !ok || ev.Param != i {
			t.Fatalf("pop() = %+v, %v, want param %d", ev, ok, i)
		}
	}
}

// A full queue rejects the submission and keeps its state.
func TestEventQueueFullRejects(t *testing.T) {
	q := newEventQueue(2, InterruptSafe)
	q.submit(Event{Param: 0})
	q.submit(Event{Param: 1})
	if q.submit(Event{Param: 2}) {
		t.Fatal("submit into full queue succeeded")
	}
	if got := q.size(); got != 2 {
		t.Errorf("size = %d, want 2", got)
	}
	ev, _ := q.pop()
	if ev.Param != 0 {
		t.Errorf("head after rejected submit = %d, want 0", ev.Param)
	}
}

// Popping an empty queue reports no event and takes no guard.
func TestEventQueueEmptyPop(t *testing.T) {
	q := newEventQueue(2, InterruptSafe)
	if _, ok := q.pop(); ok {
		t.Error("pop on empty queue = true, want false")
	}
	if !q.empty() || q.full() {
		t.Error("fresh queue should be empty and not full")
	}
}

// Observers track transitions between empty, partial, and full.
func TestEventQueueObservers(t *testing.T) {
	q := newEventQueue(2, InterruptSafe)
	if got := q.size(); got != 0 {
		t.Errorf("size = %d, want 0", got)
	}
	q.submit(Event{})
	if q.empty() || q.full() {
		t.Error("queue with one of two slots used should be neither empty nor full")
	}
	q.submit(Event{})
	if !q.full() {
		t.Error("full() = false at capacity")
	}
	q.pop()
	q.pop()
	if !q.empty() {
		t.Error("empty() = false after draining")
	}
}

// The unsafe mode exercises the no-op guard on the same code path.
func TestEventQueueUnsafeMode(t *testing.T) {
	q := newEventQueue(2, NotInterruptSafe)
	q.submit(Event{Param: 1})
	ev, ok := q.pop()
	if !ok || ev.Param != 1 {
		t.Errorf("pop() = %+v, %v, want param 1", ev, ok)
	}
}

// Many producers race into one queue while a single consumer drains it; the
// sum of accepted submissions equals the sum of popped events.
func TestEventQueueConcurrentSubmit(t *testing.T) {
	const producers = 8
	const perProducer = 1000

	q := newEventQueue(128, InterruptSafe)
	var wg sync.WaitGroup
	accepted := make([]int, producers)
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if q.submit(Event{Code: p, Param: i}) {
					accepted[p]++
				}
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	popped := 0
	for {
		if _, ok := q.pop(); ok {
			popped++
			continue
		}
		select {
		case <-done:
			for {
				if _, ok := q.pop(); !ok {
					break
				}
				popped++
			}
			want := 0
			for _, a := range accepted {
				want += a
			}
			if popped != want {
				t.Errorf("popped %d events, accepted %d", popped, want)
			}
			if !q.empty() {
				t.Error("queue should be empty after final drain")
			}
			return
		default:
		}
	}
}
