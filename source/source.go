// Package source provides producers that feed events into a Dispatcher
// from timers, OS signals, and channels. Each source runs its own
// goroutine and submits through QueueEvent, so the dispatcher's capacity
// bound applies: submissions against a full queue are counted as dropped,
// never blocked on.
package source

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/comalice/eventx"
)

// Source is a producer with a start/stop lifecycle. Start launches the
// producing goroutine; Stop terminates it and waits for it to exit.
type Source interface {
	Start(ctx context.Context) error
	Stop()
}

// TickerSource emits one event per interval. The event param carries a
// sequence number starting at 0.
type TickerSource struct {
	d        *eventx.Dispatcher
	code     int
	interval time.Duration
	pri      eventx.Priority

	running atomic.Bool
	stop    chan struct{}
	done    chan struct{}

	emitted atomic.Int64
	dropped atomic.Int64
}

// NewTicker creates a TickerSource that submits (code, seq) to d every
// interval at the given priority.
func NewTicker(d *eventx.Dispatcher, code int, interval time.Duration, pri eventx.Priority) *TickerSource {
	return &TickerSource{
		d:        d,
		code:     code,
		interval: interval,
		pri:      pri,
	}
}

// Start launches the ticker goroutine.
func (s *TickerSource) Start(ctx context.Context) error {
	if s.d == nil {
		return errors.New("ticker source has no dispatcher")
	}
	if s.interval <= 0 {
		return errors.New("ticker interval must be positive")
	}
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("ticker source already running")
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(ctx)
	return nil
}

func (s *TickerSource) run(ctx context.Context) {
	defer close(s.done)
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	seq := 0
	for {
		select {
		case <-ticker.C:
			if s.d.QueueEvent(s.code, seq, s.pri) {
				s.emitted.Add(1)
			} else {
				s.dropped.Add(1)
			}
			seq++
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop terminates the goroutine and waits for it to exit.
func (s *TickerSource) Stop() {
	if !s.running.Load() {
		return
	}
	close(s.stop)
	<-s.done
}

// Emitted returns how many events were accepted by the dispatcher.
func (s *TickerSource) Emitted() int64 { return s.emitted.Load() }

// Dropped returns how many events were rejected because the queue was full.
func (s *TickerSource) Dropped() int64 { return s.dropped.Load() }

// SignalSource translates OS signals into events. The event param is the
// signal number when the signal is a syscall.Signal, 0 otherwise.
type SignalSource struct {
	d    *eventx.Dispatcher
	code int
	pri  eventx.Priority
	sigs []os.Signal

	running atomic.Bool
	ch      chan os.Signal
	stop    chan struct{}
	done    chan struct{}

	emitted atomic.Int64
	dropped atomic.Int64
}

// NewSignal creates a SignalSource that submits (code, signum) to d when
// any of sigs arrives.
func NewSignal(d *eventx.Dispatcher, code int, pri eventx.Priority, sigs ...os.Signal) *SignalSource {
	return &SignalSource{
		d:    d,
		code: code,
		pri:  pri,
		sigs: sigs,
	}
}

// Start registers the signal handler and launches the forwarding goroutine.
func (s *SignalSource) Start(ctx context.Context) error {
	if s.d == nil {
		return errors.New("signal source has no dispatcher")
	}
	if len(s.sigs) == 0 {
		return errors.New("signal source has no signals to watch")
	}
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("signal source already running")
	}
	s.ch = make(chan os.Signal, 1)
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	signal.Notify(s.ch, s.sigs...)
	go s.run(ctx)
	return nil
}

func (s *SignalSource) run(ctx context.Context) {
	defer close(s.done)
	defer s.running.Store(false)

	for {
		select {
		case sig := <-s.ch:
			param := 0
			if n, ok := sig.(syscall.Signal); ok {
				param = int(n)
			}
			if s.d.QueueEvent(s.code, param, s.pri) {
				s.emitted.Add(1)
			} else {
				s.dropped.Add(1)
			}
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop unregisters the handler, terminates the goroutine, and waits for it
// to exit.
func (s *SignalSource) Stop() {
	if !s.running.Load() {
		return
	}
	signal.Stop(s.ch)
	close(s.stop)
	<-s.done
}

// Emitted returns how many signals were accepted by the dispatcher.
func (s *SignalSource) Emitted() int64 { return s.emitted.Load() }

// Dropped returns how many signals were rejected because the queue was full.
func (s *SignalSource) Dropped() int64 { return s.dropped.Load() }

// ChannelSource forwards events from a caller-owned channel. The channel
// should be buffered if backpressure handling is needed; a closed channel
// terminates the source.
type ChannelSource struct {
	d   *eventx.Dispatcher
	ch  <-chan eventx.Event
	pri eventx.Priority

	running atomic.Bool
	stop    chan struct{}
	done    chan struct{}

	emitted atomic.Int64
	dropped atomic.Int64
}

// NewChannel creates a ChannelSource that forwards events from ch to d at
// the given priority.
func NewChannel(d *eventx.Dispatcher, ch <-chan eventx.Event, pri eventx.Priority) *ChannelSource {
	return &ChannelSource{
		d:   d,
		ch:  ch,
		pri: pri,
	}
}

// Start launches the forwarding goroutine.
func (s *ChannelSource) Start(ctx context.Context) error {
	if s.d == nil {
		return errors.New("channel source has no dispatcher")
	}
	if s.ch == nil {
		return errors.New("channel source has no channel")
	}
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("channel source already running")
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(ctx)
	return nil
}

func (s *ChannelSource) run(ctx context.Context) {
	defer close(s.done)
	defer s.running.Store(false)

	for {
		select {
		case ev, ok := <-s.ch:
			if !ok {
				return
			}
			if s.d.QueueEvent(ev.Code, ev.Param, s.pri) {
				s.emitted.Add(1)
			} else {
				s.dropped.Add(1)
			}
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop terminates the goroutine and waits for it to exit. A source that
// already exited because its channel closed needs no Stop, but calling it
// is harmless.
func (s *ChannelSource) Stop() {
	if !s.running.Load() {
		return
	}
	close(s.stop)
	<-s.done
}

// Emitted returns how many events were accepted by the dispatcher.
func (s *ChannelSource) Emitted() int64 { return s.emitted.Load() }

// Dropped returns how many events were rejected because the queue was full.
func (s *ChannelSource) Dropped() int64 { return s.dropped.Load() }
