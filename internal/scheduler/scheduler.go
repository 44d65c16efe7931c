package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"feedwatch/internal/logger"
	"feedwatch/internal/service"
)

// Sweeper removes delivery history left behind for channels that no
// longer have a feed.
type Sweeper interface {
	SweepOrphans(ctx context.Context) (int64, error)
}

type Scheduler struct {
	sweeper    Sweeper
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current sweep
	mu         sync.Mutex         // protects cancelFunc
}

func New(sweeper Sweeper, interval time.Duration) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "sweep", "resource", "entry", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing sweep first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "sweep", "resource", "entry", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	// Use the same timeout as the sweep interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	// Store cancel function so Stop() can cancel an ongoing sweep
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = time.Minute

	var removed int64
	err := backoff.Retry(func() error {
		n, err := s.sweeper.SweepOrphans(ctx)
		if err != nil {
			// Only transient store errors are worth another attempt
			if errors.Is(err, service.ErrStoreUnavailable) {
				return err
			}
			return backoff.Permanent(err)
		}
		removed = n
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled sweep cancelled", "module", "scheduler", "action", "sweep", "resource", "entry", "result", "cancelled")
			return
		}
		logger.Error("scheduled sweep failed", "module", "scheduler", "action", "sweep", "resource", "entry", "result", "failed", "error", err)
		return
	}
	logger.Debug("scheduled sweep completed", "module", "scheduler", "action", "sweep", "resource", "entry", "result", "ok", "removed", removed)
}
