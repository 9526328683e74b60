// Package benchmarks provides performance benchmarks for event throughput.
package benchmarks

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/comalice/eventx"
)

// BenchmarkSubmitDispatchCycle measures a queue-then-process round trip on
// a single goroutine, in both safety modes. The interrupt-safe mode pays
// for a mutex acquisition per submit and per pop; the difference between
// the two sub-benchmarks is that cost.
func BenchmarkSubmitDispatchCycle(b *testing.B) {
	for _, mode := range []eventx.SafetyMode{eventx.InterruptSafe, eventx.NotInterruptSafe} {
		b.Run(mode.String(), func(b *testing.B) {
			d, count := NewCountingDispatcher(eventx.WithSafetyMode(mode))

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if !d.QueueEvent(benchCode, i) {
					b.Fatal("queue rejected event with an empty queue")
				}
				if d.ProcessEvent() == 0 {
					b.Fatal("event was not handled")
				}
			}
			b.StopTimer()

			if got := atomic.LoadInt64(count); got != int64(b.N) {
				b.Fatalf("expected %d handled events, got %d", b.N, got)
			}
		})
	}
}

// BenchmarkConcurrentProducers measures throughput with multiple producer
// goroutines against a single draining consumer, verified via the listener
// counter.
func BenchmarkConcurrentProducers(b *testing.B) {
	d, processed := NewCountingDispatcher(eventx.WithQueueCapacity(10000))

	stop := make(chan struct{})
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-stop:
				d.ProcessAllEvents()
				return
			default:
				if d.ProcessAllEvents() == 0 {
					time.Sleep(time.Microsecond)
				}
			}
		}
	}()

	numWorkers := 8
	eventsPerWorker := b.N / numWorkers
	if eventsPerWorker == 0 {
		eventsPerWorker = 1
	}
	var wg sync.WaitGroup
	var successfulSends int64
	var failedSends int64
	b.ResetTimer()
	b.ReportAllocs()
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < eventsPerWorker; i++ {
				if d.QueueEvent(benchCode, i) {
					atomic.AddInt64(&successfulSends, 1)
				} else {
					atomic.AddInt64(&failedSends, 1)
					time.Sleep(time.Microsecond) // back off against a full queue
				}
			}
		}()
	}
	wg.Wait()

	totalSuccessful := atomic.LoadInt64(&successfulSends)
	if totalFailed := atomic.LoadInt64(&failedSends); totalFailed > 0 {
		b.Logf("Hit backpressure: %d successful, %d dropped (%.1f%% of b.N)",
			totalSuccessful, totalFailed, float64(totalSuccessful)/float64(b.N)*100)
	}

	// Wait for processing of successful events only
	if totalSuccessful > 0 {
		timeout := time.After(30 * time.Second)
		for {
			if atomic.LoadInt64(processed) >= totalSuccessful {
				break
			}
			select {
			case <-timeout:
				b.Fatalf("timeout waiting for processing, processed: %d / %d successful sends",
					atomic.LoadInt64(processed), totalSuccessful)
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
		b.ReportMetric(float64(totalSuccessful)/b.Elapsed().Seconds(), "events/sec")
	}
	close(stop)
	<-consumerDone
}

// BenchmarkQueueCapacity measures how many events can be queued before the
// capacity bound rejects submissions, without a consumer running.
func BenchmarkQueueCapacity(b *testing.B) {
	configs := []struct {
		name     string
		capacity int
	}{
		{"default", eventx.DefaultQueueCapacity},
		{"cap=1024", 1024},
	}

	for _, cfg := range configs {
		b.Run(cfg.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				d := eventx.New(eventx.WithQueueCapacity(cfg.capacity))
				b.StartTimer()

				accepted := 0
				for d.QueueEvent(benchCode, accepted) {
					accepted++
				}
				if accepted != cfg.capacity {
					b.Fatalf("expected %d accepted events, got %d", cfg.capacity, accepted)
				}
			}
			b.ReportMetric(float64(cfg.capacity), "events")
		})
	}
}
