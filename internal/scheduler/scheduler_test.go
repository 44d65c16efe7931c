package scheduler_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedwatch/internal/scheduler"
	"feedwatch/internal/service"
)

type stubSweeper struct {
	calls atomic.Int32
	fn    func(ctx context.Context, call int32) (int64, error)
}

func (s *stubSweeper) SweepOrphans(ctx context.Context) (int64, error) {
	call := s.calls.Add(1)
	if s.fn != nil {
		return s.fn(ctx, call)
	}
	return 0, nil
}

func TestScheduler_RunsImmediately(t *testing.T) {
	ran := make(chan struct{}, 1)
	sweeper := &stubSweeper{fn: func(context.Context, int32) (int64, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 0, nil
	}}

	s := scheduler.New(sweeper, time.Hour)
	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run on start")
	}
}

func TestScheduler_RetriesTransientFailure(t *testing.T) {
	done := make(chan struct{}, 1)
	sweeper := &stubSweeper{fn: func(_ context.Context, call int32) (int64, error) {
		if call == 1 {
			return 0, fmt.Errorf("sweep orphans: %w", service.ErrStoreUnavailable)
		}
		select {
		case done <- struct{}{}:
		default:
		}
		return 0, nil
	}}

	s := scheduler.New(sweeper, time.Hour)
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep was not retried after a transient failure")
	}
	require.GreaterOrEqual(t, sweeper.calls.Load(), int32(2))
}

func TestScheduler_StopCancelsInFlightSweep(t *testing.T) {
	started := make(chan struct{})
	sweeper := &stubSweeper{fn: func(ctx context.Context, _ int32) (int64, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	}}

	s := scheduler.New(sweeper, time.Hour)
	s.Start()

	<-started
	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not cancel the in-flight sweep")
	}
}
