package animation

import (
	"context"
	"fmt"
	"time"
)

// Clock sleeps between blocking playback steps.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock sleeps on the wall clock.
type SystemClock struct{}

// Sleep waits for d or until ctx is done.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run plays samples synchronously: sleep one interval, then apply, for
// every sample. It returns early when ctx is cancelled.
func Run(ctx context.Context, clock Clock, samples []Sample, interval time.Duration, apply func(Sample)) error {
	for i, s := range samples {
		if err := clock.Sleep(ctx, interval); err != nil {
			return fmt.Errorf("playback stopped at step %d of %d: %w", i, len(samples), err)
		}
		apply(s)
	}
	return nil
}
