package auth

import (
	"context"
	"time"
)

// Delayer stands in for the upstream latency a real identity provider would
// add. Injecting it keeps tests instant.
type Delayer interface {
	Delay(ctx context.Context) error
}

// NopDelayer returns immediately; the default for tests.
type NopDelayer struct{}

func (NopDelayer) Delay(context.Context) error { return nil }

// FixedDelayer waits the configured duration, honoring context cancellation.
type FixedDelayer struct {
	D time.Duration
}

func (f FixedDelayer) Delay(ctx context.Context) error {
	timer := time.NewTimer(f.D)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
