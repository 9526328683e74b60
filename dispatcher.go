package eventx

import "github.com/joeycumines/logiface"

// Dispatcher routes queued events to registered listeners. It owns one event
// queue per priority and a single listener table, all allocated at
// construction and never resized.
//
// See the package documentation for the concurrency contract: QueueEvent and
// the queue observers are safe from any goroutine in InterruptSafe mode;
// processing and listener management belong to one consumer goroutine.
type Dispatcher struct {
	safety      SafetyMode
	queueCap    int
	listenerCap int

	high *eventQueue
	low  *eventQueue

	listeners *listenerTable

	log *logiface.Logger[logiface.Event]

	stats stats
}

// New constructs a Dispatcher. Defaults: InterruptSafe guarding,
// DefaultQueueCapacity slots per priority queue, DefaultListenerCapacity
// listener slots, no logger.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		queueCap:    DefaultQueueCapacity,
		listenerCap: DefaultListenerCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	d.high = newEventQueue(d.queueCap, d.safety)
	d.low = newEventQueue(d.queueCap, d.safety)
	d.listeners = newListenerTable(d.listenerCap)
	return d
}

// SafetyMode returns the guarding mode the dispatcher was built with.
func (d *Dispatcher) SafetyMode() SafetyMode { return d.safety }

// Stats returns a snapshot of the activity counters.
func (d *Dispatcher) Stats() Stats { return d.stats.snapshot() }

//
// Listener management (consumer goroutine only)
//

// AddListener registers l for events with the given code. It reports false
// when l is nil or the table is full. Registering the same (code, listener)
// pair twice is allowed; both entries fire.
func (d *Dispatcher) AddListener(code int, l Listener) bool {
	ok := d.listeners.add(code, l)
	if ok {
		d.log.Debug().Int("code", code).Log("listener added")
	}
	return ok
}

// RemoveListener removes the first registration matching (code, l) and
// reports whether one was found. Duplicates need one call each.
//
// Identity caveat: listeners are matched by function code pointer for
// func-kinded listeners and by == otherwise, so closures built from the same
// literal are indistinguishable. See ListenerFunc.
func (d *Dispatcher) RemoveListener(code int, l Listener) bool {
	ok := d.listeners.remove(code, l)
	if ok {
		d.log.Debug().Int("code", code).Log("listener removed")
	}
	return ok
}

// RemoveListeners removes every registration of l, whatever the code, and
// returns how many were removed.
func (d *Dispatcher) RemoveListeners(l Listener) int {
	n := d.listeners.removeAll(l)
	if n > 0 {
		d.log.Debug().Int("removed", n).Log("listener removed for all codes")
	}
	return n
}

// EnableListener sets the enabled flag of the first registration matching
// (code, l) and reports whether a match was found. Disabled listeners stay
// registered but are skipped during dispatch.
func (d *Dispatcher) EnableListener(code int, l Listener, enable bool) bool {
	return d.listeners.enable(code, l, enable)
}

// IsListenerEnabled returns the enabled flag of the first registration
// matching (code, l), or false when nothing matches.
func (d *Dispatcher) IsListenerEnabled(code int, l Listener) bool {
	return d.listeners.enabled(code, l)
}

// SetDefaultListener installs l as the fallback for events no registered
// listener handles, enabling it. It reports false when l is nil.
func (d *Dispatcher) SetDefaultListener(l Listener) bool {
	return d.listeners.setDefault(l)
}

// RemoveDefaultListener clears the fallback listener.
func (d *Dispatcher) RemoveDefaultListener() {
	d.listeners.removeDefault()
}

// EnableDefaultListener sets the fallback's enabled flag without removing it.
func (d *Dispatcher) EnableDefaultListener(enable bool) {
	d.listeners.enableDefault(enable)
}

// IsListenerListEmpty reports whether no listeners are registered.
func (d *Dispatcher) IsListenerListEmpty() bool { return d.listeners.empty() }

// IsListenerListFull reports whether the listener table is at capacity.
func (d *Dispatcher) IsListenerListFull() bool { return d.listeners.full() }

// NumListeners returns the number of live registrations.
func (d *Dispatcher) NumListeners() int { return d.listeners.size() }

//
// Queues
//

// QueueEvent submits an event to the queue selected by pri, defaulting to
// PriorityLow. It reports false, dropping the event, when that queue is
// full. Safe from any goroutine in InterruptSafe mode.
func (d *Dispatcher) QueueEvent(code, param int, pri ...Priority) bool {
	p := priorityOf(pri)
	ok := d.lane(p).submit(Event{Code: code, Param: param})
	if ok {
		d.stats.submitted.Add(1)
		d.log.Debug().Int("code", code).Int("param", param).Str("priority", p.String()).Log("event queued")
	} else {
		d.stats.dropped.Add(1)
		d.log.Warning().Int("code", code).Int("param", param).Str("priority", p.String()).Log("queue full, event dropped")
	}
	return ok
}

// IsEventQueueEmpty reports whether the queue selected by pri (default low)
// holds no events.
func (d *Dispatcher) IsEventQueueEmpty(pri ...Priority) bool {
	return d.lane(priorityOf(pri)).empty()
}

// IsEventQueueFull reports whether the queue selected by pri (default low)
// is at capacity.
func (d *Dispatcher) IsEventQueueFull(pri ...Priority) bool {
	return d.lane(priorityOf(pri)).full()
}

// NumEventsInQueue returns the number of events waiting in the queue
// selected by pri (default low).
func (d *Dispatcher) NumEventsInQueue(pri ...Priority) int {
	return d.lane(priorityOf(pri)).size()
}

//
// Processing (consumer goroutine only)
//

// ProcessEvent consumes at most one event and returns how many listeners
// handled it. The high-priority queue is tried first. The low-priority queue
// is attempted only when the handled count is still zero after the
// high-priority attempt, whether the high queue was empty or its event had
// no enabled listener and no enabled default. Zero handled listeners is a
// normal outcome, not a failure.
func (d *Dispatcher) ProcessEvent() int {
	handled := 0
	if ev, ok := d.high.pop(); ok {
		handled = d.dispatch(ev)
	}
	if handled == 0 {
		if ev, ok := d.low.pop(); ok {
			handled = d.dispatch(ev)
		}
	}
	return handled
}

// ProcessAllEvents drains the high-priority queue completely, then the
// low-priority queue completely, and returns the total handled count.
//
// If producers keep submitting faster than events are drained, this call may
// never return. That hazard is the caller's to manage, typically by calling
// ProcessEvent from a paced loop instead.
func (d *Dispatcher) ProcessAllEvents() int {
	handled := 0
	for {
		ev, ok := d.high.pop()
		if !ok {
			break
		}
		handled += d.dispatch(ev)
	}
	for {
		ev, ok := d.low.pop()
		if !ok {
			break
		}
		handled += d.dispatch(ev)
	}
	return handled
}

// dispatch fans ev out through the listener table and keeps the counters.
func (d *Dispatcher) dispatch(ev Event) int {
	d.stats.popped.Add(1)
	handled := d.listeners.send(ev.Code, ev.Param)
	if handled == 0 {
		d.stats.unhandled.Add(1)
	} else {
		d.stats.handled.Add(int64(handled))
	}
	d.log.Debug().Int("code", ev.Code).Int("param", ev.Param).Int("handled", handled).Log("event dispatched")
	return handled
}

// lane maps a priority to its queue.
func (d *Dispatcher) lane(p Priority) *eventQueue {
	if p == PriorityHigh {
		return d.high
	}
	return d.low
}

// priorityOf resolves an optional priority argument, defaulting to low.
func priorityOf(pri []Priority) Priority {
	if len(pri) > 0 {
		return pri[0]
	}
	return PriorityLow
}
