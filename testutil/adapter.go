package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/comalice/eventx"
	"github.com/comalice/eventx/pump"
)

// ConsumerAdapter provides a common interface for manual and pump-driven
// event consumption. This allows running the same test suite on both
// consumption styles.
type ConsumerAdapter interface {
	Start(ctx context.Context) error
	Stop() error
	Submit(code, param int, pri eventx.Priority) bool
	WaitIdle(timeout time.Duration) error
	Handled() int64
}

// ManualAdapter drains the dispatcher inline from the calling goroutine.
type ManualAdapter struct {
	d       *eventx.Dispatcher
	handled int64
}

// NewManualAdapter creates an adapter that processes events on WaitIdle.
func NewManualAdapter(d *eventx.Dispatcher) *ManualAdapter {
	return &ManualAdapter{d: d}
}

func (a *ManualAdapter) Start(ctx context.Context) error { return nil }

func (a *ManualAdapter) Stop() error { return nil }

func (a *ManualAdapter) Submit(code, param int, pri eventx.Priority) bool {
	return a.d.QueueEvent(code, param, pri)
}

func (a *ManualAdapter) WaitIdle(timeout time.Duration) error {
	a.handled += int64(a.d.ProcessAllEvents())
	return nil
}

func (a *ManualAdapter) Handled() int64 { return a.handled }

// PumpAdapter consumes through a background pump.
type PumpAdapter struct {
	d *eventx.Dispatcher
	p *pump.Pump
}

// NewPumpAdapter creates an adapter whose events are consumed by a pump
// ticking at the given interval.
func NewPumpAdapter(d *eventx.Dispatcher, interval time.Duration) *PumpAdapter {
	return &PumpAdapter{
		d: d,
		p: pump.New(d, pump.WithInterval(interval)),
	}
}

func (a *PumpAdapter) Start(ctx context.Context) error {
	return a.p.Start(ctx)
}

func (a *PumpAdapter) Stop() error {
	a.p.Stop()
	return nil
}

func (a *PumpAdapter) Submit(code, param int, pri eventx.Priority) bool {
	return a.d.QueueEvent(code, param, pri)
}

func (a *PumpAdapter) WaitIdle(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if a.d.IsEventQueueEmpty(eventx.PriorityHigh) && a.d.IsEventQueueEmpty(eventx.PriorityLow) {
			// Give the in-flight tick a chance to finish dispatching.
			time.Sleep(5 * time.Millisecond)
			return nil
		}
		if time.Now().After(deadline) {
			return errors.New("queues not drained before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func (a *PumpAdapter) Handled() int64 { return a.p.Handled() }
