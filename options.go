package eventx

import "github.com/joeycumines/logiface"

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithSafetyMode selects queue guarding. The default is InterruptSafe.
func WithSafetyMode(m SafetyMode) Option {
	return func(d *Dispatcher) {
		d.safety = m
	}
}

// WithQueueCapacity sets the capacity of each priority queue. Values below 1
// fall back to DefaultQueueCapacity.
func WithQueueCapacity(n int) Option {
	return func(d *Dispatcher) {
		if n < 1 {
			n = DefaultQueueCapacity
		}
		d.queueCap = n
	}
}

// WithListenerCapacity sets the listener table capacity. Values below 1 fall
// back to DefaultListenerCapacity.
func WithListenerCapacity(n int) Option {
	return func(d *Dispatcher) {
		if n < 1 {
			n = DefaultListenerCapacity
		}
		d.listenerCap = n
	}
}

// WithLogger attaches a logger for submit and dispatch tracing. Leaving it
// unset (or passing nil) disables tracing entirely.
func WithLogger(log *logiface.Logger[logiface.Event]) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}
