// Package pump drives an eventx.Dispatcher from a ticker loop.
//
// The dispatcher is deliberately passive: it processes events only when its
// consumer calls ProcessEvent or ProcessAllEvents. A Pump supplies that
// consumer, pacing the calls at a fixed interval:
//   - ModeDrain empties both queues every tick (the usual choice)
//   - ModeSingle consumes at most one event per tick
//
// # Example Usage
//
//	d := eventx.New()
//	d.AddListener(eventx.EventTime, handler)
//
//	p := pump.New(d, pump.WithInterval(10*time.Millisecond))
//	if err := p.Start(ctx); err != nil {
//		return err
//	}
//	defer p.Stop()
//
// # Consumer Ownership
//
// While a pump runs, its goroutine is the dispatcher's single consumer.
// Exactly one pump may drive a dispatcher, and listener management must
// happen before Start or after Stop; producers may keep submitting from any
// goroutine throughout (in the dispatcher's InterruptSafe mode).
//
// # Panic Containment
//
// A panicking listener is recovered, logged with its stack when a logger is
// configured, and the loop continues with the next tick. The pump never
// crashes the process on a listener's behalf.
//
// # Pacing Trade-offs
//
// ModeDrain keeps queues short but gives one tick an unbounded amount of
// work under heavy submission. ModeSingle bounds per-tick work at one event
// in exchange for queue growth; pick it when tick latency matters more than
// queue depth. Worst-case event latency is one interval plus the work ahead
// of the event in its queue.
package pump
