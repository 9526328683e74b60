package benchmarks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/comalice/eventx"
	"github.com/comalice/eventx/pump"
)

// Pump Benchmarks
//
// These benchmarks measure end-to-end behavior with the consumer running as
// a paced background loop:
// - Throughput: Events actually dispatched per second (verified via listener counters)
// - Latency: Real end-to-end time from QueueEvent to listener invocation

// BenchmarkPumpThroughput measures actual events dispatched per second with
// verification that listeners ran.
func BenchmarkPumpThroughput(b *testing.B) {
	d, processed := NewCountingDispatcher(eventx.WithQueueCapacity(10000))

	p := pump.New(d, pump.WithInterval(time.Millisecond)) // 1000 Hz
	if err := p.Start(context.Background()); err != nil {
		b.Fatal(err)
	}
	defer p.Stop()

	b.ResetTimer()
	b.ReportAllocs()

	successfulSends := 0
	for i := 0; i < b.N; i++ {
		if !d.QueueEvent(benchCode, i) {
			// Hit backpressure - stop benchmark
			b.StopTimer()
			b.Logf("Stopped at backpressure after %d events (%.1f%% of b.N)",
				successfulSends, float64(successfulSends)/float64(b.N)*100)
			break
		}
		successfulSends++
	}

	// Wait for processing to complete
	if successfulSends > 0 {
		timeout := time.After(30 * time.Second)
		for {
			if atomic.LoadInt64(processed) >= int64(successfulSends) {
				break
			}
			select {
			case <-timeout:
				b.Fatalf("timeout waiting for processing, processed: %d / %d successful sends",
					atomic.LoadInt64(processed), successfulSends)
			default:
				time.Sleep(time.Millisecond)
			}
		}
		b.ReportMetric(float64(successfulSends)/b.Elapsed().Seconds(), "events/sec")
	}
}

// BenchmarkPumpLatency measures time from QueueEvent to listener invocation.
// This measures the real latency including tick scheduling overhead.
func BenchmarkPumpLatency(b *testing.B) {
	dispatched := make(chan time.Time, 100)
	d := eventx.New(eventx.WithQueueCapacity(100))
	d.AddListener(benchCode, eventx.ListenerFunc(func(code, param int) {
		dispatched <- time.Now()
	}))

	p := pump.New(d, pump.WithInterval(time.Millisecond)) // 1000 Hz
	if err := p.Start(context.Background()); err != nil {
		b.Fatal(err)
	}
	defer p.Stop()

	b.ResetTimer()

	// Send all events first, recording send times
	var sendTimes []time.Time
	for i := 0; i < b.N && i < 50; i++ { // Limit to 50 iterations for latency test
		sendTimes = append(sendTimes, time.Now())
		if !d.QueueEvent(benchCode, i) {
			b.Logf("Stopped at backpressure after %d sends", len(sendTimes))
			sendTimes = sendTimes[:len(sendTimes)-1]
			break
		}
	}

	// Wait for all dispatches and measure latencies
	var totalLatency time.Duration
	successfulMeasurements := 0
	timeout := time.After(5 * time.Second)

	for i := 0; i < len(sendTimes); i++ {
		select {
		case completeTime := <-dispatched:
			latency := completeTime.Sub(sendTimes[i])
			totalLatency += latency
			successfulMeasurements++
		case <-timeout:
			b.Logf("timeout after %d/%d measurements", successfulMeasurements, len(sendTimes))
			goto done
		}
	}

done:
	if successfulMeasurements > 0 {
		avgLatency := totalLatency / time.Duration(successfulMeasurements)
		b.ReportMetric(float64(avgLatency.Nanoseconds()), "ns/latency")
		b.ReportMetric(float64(avgLatency.Microseconds()), "µs/latency")
	}
}
