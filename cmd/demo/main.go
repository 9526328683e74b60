package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/comalice/eventx"
	"github.com/comalice/eventx/profile"
	"github.com/comalice/eventx/pump"
	"github.com/comalice/eventx/source"
)

func main() {
	var (
		profilePath = flag.String("profile", "", "path to a YAML or JSON dispatcher profile")
		tickEvery   = flag.Duration("tick", 500*time.Millisecond, "ticker source interval")
		duration    = flag.Duration("duration", 0, "exit after this long (0 = run until SIGINT)")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := logiface.LevelInformational
	if *debug {
		level = logiface.LevelDebug
	}
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(os.Stderr)),
		stumpy.L.WithLevel(level),
	).Logger()

	p := profile.Default()
	if *profilePath != "" {
		loaded, err := profile.Load(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		p = loaded
	}
	logger.Info().Str("profile", p.Name).Log("starting demo")

	tickCode := eventx.EventTime
	if c, ok := p.Code("tick"); ok {
		tickCode = c
	}
	signalCode := eventx.EventSerial
	if c, ok := p.Code("signal"); ok {
		signalCode = c
	}

	d := eventx.New(append(p.Options(), eventx.WithLogger(logger))...)

	cycles := 0
	b := eventx.NewBinder()
	b.HandleFunc(tickCode, func(code, param int) {
		cycles++
		fmt.Printf("--- Cycle %d --- (seq=%d)\n", cycles, param)
	})
	b.HandleFunc(signalCode, func(code, param int) {
		fmt.Printf("caught signal %d as a high-priority event\n", param)
	})
	b.Default(eventx.ListenerFunc(func(code, param int) {
		fmt.Printf("unclaimed event: code=%d param=%d\n", code, param)
	}))
	if err := b.Apply(d); err != nil {
		log.Fatalf("Failed to apply bindings: %v", err)
	}

	ctx := context.Background()

	pmp := pump.New(d, append(p.PumpOptions(), pump.WithLogger(logger))...)
	if err := pmp.Start(ctx); err != nil {
		log.Fatalf("Failed to start pump: %v", err)
	}

	ticker := source.NewTicker(d, tickCode, *tickEvery, eventx.PriorityLow)
	if err := ticker.Start(ctx); err != nil {
		log.Fatalf("Failed to start ticker source: %v", err)
	}

	// SIGUSR1 and SIGHUP become events; SIGINT and SIGTERM shut down.
	sigSource := source.NewSignal(d, signalCode, eventx.PriorityHigh, syscall.SIGUSR1, syscall.SIGHUP)
	if err := sigSource.Start(ctx); err != nil {
		log.Fatalf("Failed to start signal source: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var timeout <-chan time.Time
	if *duration > 0 {
		timeout = time.After(*duration)
	}

	select {
	case <-stop:
		fmt.Println("\nShutting down gracefully...")
	case <-timeout:
		fmt.Println("\nDemo duration elapsed.")
	}

	sigSource.Stop()
	ticker.Stop()
	pmp.Stop()

	// Dispatch whatever the sources managed to queue before stopping.
	d.ProcessAllEvents()

	stats := d.Stats()
	logger.Info().
		Int64("submitted", stats.Submitted).
		Int64("dropped", stats.Dropped).
		Int64("handled", stats.Handled).
		Int64("unhandled", stats.Unhandled).
		Uint64("pump_ticks", pmp.Ticks()).
		Log("demo finished")
}
