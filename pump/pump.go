package pump

import (
	"context"
	"errors"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/comalice/eventx"
	"github.com/joeycumines/logiface"
)

// Mode selects how much work one tick performs.
type Mode uint8

const (
	// ModeDrain processes every queued event each tick.
	ModeDrain Mode = iota
	// ModeSingle processes at most one event each tick.
	ModeSingle
)

func (m Mode) String() string {
	switch m {
	case ModeDrain:
		return "drain"
	case ModeSingle:
		return "single"
	default:
		return "unknown"
	}
}

// DefaultInterval paces pumps that did not configure an interval.
const DefaultInterval = 10 * time.Millisecond

// Pump owns the consumer goroutine of a Dispatcher: every interval it calls
// ProcessAllEvents (ModeDrain) or ProcessEvent (ModeSingle).
//
// One pump per dispatcher. While the pump runs, listener management on the
// dispatcher is off-limits; see the package documentation.
type Pump struct {
	d        *eventx.Dispatcher
	interval time.Duration
	mode     Mode
	log      *logiface.Logger[logiface.Event]

	running atomic.Bool
	cancel  context.CancelFunc
	stopped chan struct{}

	ticks   atomic.Uint64
	handled atomic.Int64
}

// Option configures a Pump.
type Option func(*Pump)

// WithInterval sets the tick interval. Non-positive values fall back to
// DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(p *Pump) {
		if d <= 0 {
			d = DefaultInterval
		}
		p.interval = d
	}
}

// WithMode selects the per-tick processing mode.
func WithMode(m Mode) Option {
	return func(p *Pump) {
		p.mode = m
	}
}

// WithLogger attaches a logger for lifecycle and panic reporting.
func WithLogger(log *logiface.Logger[logiface.Event]) Option {
	return func(p *Pump) {
		p.log = log
	}
}

// New creates a stopped pump around d.
func New(d *eventx.Dispatcher, opts ...Option) *Pump {
	p := &Pump{
		d:        d,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Start launches the tick loop. It fails when the pump has no dispatcher or
// is already running. The loop exits when ctx is cancelled or Stop is
// called.
func (p *Pump) Start(ctx context.Context) error {
	if p.d == nil {
		return errors.New("pump has no dispatcher")
	}
	if !p.running.CompareAndSwap(false, true) {
		return errors.New("pump already running")
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.stopped = make(chan struct{})
	go p.loop(ctx)
	return nil
}

// Stop cancels the loop and waits for it to exit. Calling Stop on a pump
// that is not running is a no-op.
func (p *Pump) Stop() {
	if !p.running.Load() {
		return
	}
	p.cancel()
	<-p.stopped
}

// Running reports whether the loop is live.
func (p *Pump) Running() bool { return p.running.Load() }

// Ticks returns the number of completed ticks.
func (p *Pump) Ticks() uint64 { return p.ticks.Load() }

// Handled returns the total handled count accumulated across ticks.
func (p *Pump) Handled() int64 { return p.handled.Load() }

func (p *Pump) loop(ctx context.Context) {
	defer close(p.stopped)
	defer p.running.Store(false)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Debug().Dur("interval", p.interval).Stringer("mode", p.mode).Log("pump started")

	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Uint64("ticks", p.ticks.Load()).Log("pump stopped")
			return
		case <-ticker.C:
			p.tick()
			p.ticks.Add(1)
		}
	}
}

// tick runs one processing step, containing listener panics so one bad
// listener cannot kill the loop.
func (p *Pump) tick() {
	defer func() {
		if r := recover(); r != nil {
			p.log.Err().Any("panic", r).Str("stack", string(debug.Stack())).Log("listener panicked")
		}
	}()

	var n int
	if p.mode == ModeSingle {
		n = p.d.ProcessEvent()
	} else {
		n = p.d.ProcessAllEvents()
	}
	p.handled.Add(int64(n))
}
