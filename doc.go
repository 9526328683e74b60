// Package eventx is an interrupt-safe, fixed-capacity event dispatch library.
//
// Producers submit small integer-pair events into one of two statically
// sized FIFO queues (high and low priority). A single consumer goroutine
// drains them cooperatively, typically once per iteration of a host loop,
// and fans each event out to registered listeners:
//   - Queues are plain rings, allocated once, never resized
//   - Submission from any goroutine is safe in the default mode
//   - Listeners can be enabled, disabled, and removed individually
//   - An optional default listener catches events nobody else handled
//
// # Example Usage
//
//	d := eventx.New()
//	d.AddListener(eventx.EventTimer0, eventx.ListenerFunc(func(code, param int) {
//		fmt.Println("timer fired", param)
//	}))
//	d.QueueEvent(eventx.EventTimer0, 42)
//	d.ProcessEvent()
//
// # Concurrency Contract
//
// QueueEvent and the queue observers may be called from any goroutine when
// the dispatcher is built with InterruptSafe (the default). Everything else,
// processing and listener management alike, belongs to exactly one consumer
// goroutine. The listener table is deliberately unlocked: registering,
// removing, or enabling listeners from a producer goroutine is undefined
// behavior by contract.
//
// With NotInterruptSafe the queue guard is a no-op and the caller promises
// single-goroutine use throughout. Use it when everything runs on one
// goroutine and the mutex is measurable overhead.
//
// # Processing
//
// ProcessEvent consumes at most one event. The high-priority queue is tried
// first; the low-priority queue is attempted only when the high-priority
// attempt handled zero listeners, whether because the high queue was empty
// or because the popped event had no enabled listener and no enabled
// default. ProcessAllEvents drains the high queue completely, then the low
// queue completely. A sustained stream of high-priority submissions can
// starve low-priority processing indefinitely; that trade-off is part of the
// contract. Similarly, ProcessAllEvents may never return while producers
// outpace the drain.
//
// # Failure Model
//
// Core operations never panic and never return errors. Capacity and lookup
// failures are reported by bool and int returns: a full queue rejects the
// event, a full table rejects the registration, a lookup that matches
// nothing reports false or zero. Retry and backoff policy stays with the
// caller.
package eventx
