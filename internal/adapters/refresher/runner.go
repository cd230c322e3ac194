// Package refresher provides the adapter that runs reconciliation cycles on
// a timer.
package refresher

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const defaultInterval = 5 * time.Minute

// Refresher runs one reconciliation cycle and reports the resulting job count.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Tracker  Refresher
	Interval time.Duration
	Logger   *slog.Logger
}

// Runner drives periodic refreshes. The tracker serializes cycles itself, so
// a tick landing while a manual refresh is in flight simply waits its turn.
type Runner struct {
	tracker  Refresher
	interval time.Duration
	logger   *slog.Logger
}

// NewRunner creates a new refresher runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Tracker == nil {
		return nil, errors.New("tracker is required")
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{tracker: opts.Tracker, interval: interval, logger: logger}, nil
}

// Run refreshes once immediately, then on every tick until the context is
// cancelled. A failed cycle is logged and the loop continues; the next tick
// is the retry mechanism.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting refresher", "interval", r.interval)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "refresher stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Runner) refresh(ctx context.Context) {
	start := time.Now()
	count, err := r.tracker.Refresh(ctx)
	elapsed := time.Since(start)

	if err != nil {
		r.logger.WarnContext(ctx, "refresh cycle failed",
			"error", err, "duration", elapsed)
		return
	}
	r.logger.InfoContext(ctx, "refresh cycle complete",
		"jobs", count, "duration", elapsed)
}
