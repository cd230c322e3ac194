package refresher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRefresher struct {
	count   atomic.Int64
	results chan error
}

func (s *stubRefresher) Refresh(context.Context) (int, error) {
	s.count.Add(1)
	select {
	case err := <-s.results:
		return 0, err
	default:
		return 0, nil
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRunner_RequiresTracker(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(RunnerOptions{})
	assert.Error(t, err)
}

func TestNewRunner_DefaultsInterval(t *testing.T) {
	t.Parallel()

	runner, err := NewRunner(RunnerOptions{Tracker: &stubRefresher{}, Logger: testLogger()})
	require.NoError(t, err)
	assert.Equal(t, defaultInterval, runner.interval)
}

func TestRunner_RefreshesImmediatelyAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	tracker := &stubRefresher{}
	runner, err := NewRunner(RunnerOptions{
		Tracker:  tracker,
		Interval: time.Hour, // no tick during the test
		Logger:   testLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	// The immediate refresh happens before the first tick.
	require.Eventually(t, func() bool {
		return tracker.count.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a clean stop")
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}

func TestRunner_ContinuesAfterFailedCycle(t *testing.T) {
	t.Parallel()

	tracker := &stubRefresher{results: make(chan error, 1)}
	tracker.results <- errors.New("source down")

	runner, err := NewRunner(RunnerOptions{
		Tracker:  tracker,
		Interval: 10 * time.Millisecond,
		Logger:   testLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	// First cycle fails; the ticker drives at least one more.
	require.Eventually(t, func() bool {
		return tracker.count.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}
