package eventx

import "sync/atomic"

// Stats is a point-in-time snapshot of dispatcher activity.
type Stats struct {
	Submitted int64 // events accepted into a queue
	Dropped   int64 // events rejected because their queue was full
	Popped    int64 // events consumed from the queues
	Handled   int64 // listener invocations, default listener included
	Unhandled int64 // popped events that no listener handled
}

// stats is the live counter block behind Stats. Counters are atomic because
// submissions may arrive from any goroutine.
type stats struct {
	submitted atomic.Int64
	dropped   atomic.Int64
	popped    atomic.Int64
	handled   atomic.Int64
	unhandled atomic.Int64
}

func (s *stats) snapshot() Stats {
	return Stats{
		Submitted: s.submitted.Load(),
		Dropped:   s.dropped.Load(),
		Popped:    s.popped.Load(),
		Handled:   s.handled.Load(),
		Unhandled: s.unhandled.Load(),
	}
}
