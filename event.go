package eventx

// Event is a queued occurrence: an integer code identifying what happened
// plus one integer parameter. Events are copied into queue slots at
// submission and are immutable from then on; duplicates are permitted and
// processed independently.
type Event struct {
	Code  int
	Param int
}

// Priority selects which of the two FIFO lanes an event enters. The lanes
// are independent rings, not a heap; priority only decides drain order.
type Priority uint8

const (
	// PriorityLow is the default lane and the zero value.
	PriorityLow Priority = iota
	// PriorityHigh events are drained ahead of all low-priority events.
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// SafetyMode controls queue guarding. InterruptSafe (the zero value and the
// default) guards every queue mutation with a mutex so any goroutine may
// submit. NotInterruptSafe removes the guard; the caller then promises
// single-goroutine use.
type SafetyMode uint8

const (
	InterruptSafe SafetyMode = iota
	NotInterruptSafe
)

func (m SafetyMode) String() string {
	switch m {
	case InterruptSafe:
		return "interrupt-safe"
	case NotInterruptSafe:
		return "not-interrupt-safe"
	default:
		return "unknown"
	}
}

// Default capacities, applied when the corresponding option is absent.
// Each priority queue gets DefaultQueueCapacity slots.
const (
	DefaultQueueCapacity    = 8
	DefaultListenerCapacity = 8
)

// Conventional event codes. These are ordinary ints with no runtime meaning;
// callers may use any values they like. The block starts at 200 to stay
// clear of small application-defined code spaces.
const (
	// EventNone marks an unset code. Never submit it as a real event.
	EventNone = iota + 200

	EventKeyPress
	EventKeyRelease
	EventChar

	EventTime

	EventTimer0
	EventTimer1
	EventTimer2
	EventTimer3

	EventAnalog0
	EventAnalog1
	EventAnalog2
	EventAnalog3
	EventAnalog4
	EventAnalog5

	EventMenu0
	EventMenu1
	EventMenu2
	EventMenu3
	EventMenu4
	EventMenu5
	EventMenu6
	EventMenu7
	EventMenu8
	EventMenu9

	EventSerial
	EventPaint

	EventUser0
	EventUser1
	EventUser2
	EventUser3
	EventUser4
	EventUser5
	EventUser6
	EventUser7
	EventUser8
	EventUser9
)
