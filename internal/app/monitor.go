package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/musaed/internal/state"
)

const defaultHealthInterval = 3 * time.Second

// HealthProber is the liveness half of the backend.
type HealthProber interface {
	Health(ctx context.Context) error
}

// StartHealthMonitor launches a background goroutine that probes the backend
// immediately and then at a fixed cadence until ctx is cancelled. Each probe is
// bounded by the interval so a hung backend cannot stall later ticks. Failures
// mark the backend down and are logged; they never stop the loop. It returns
// immediately.
func StartHealthMonitor(ctx context.Context, store *state.Store, prober HealthProber, interval time.Duration) {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for ctx.Err() == nil {
			probe(ctx, store, prober, interval)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func probe(ctx context.Context, store *state.Store, prober HealthProber, timeout time.Duration) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := prober.Health(probeCtx)
	if ctx.Err() != nil {
		return
	}
	store.UpdateHealth(err)
	if err != nil {
		log.Printf("health probe failed: %v", err)
	}
}
