package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slack2jira/pkg/utils/errutil"
	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
)

// SyncFunc runs one sync cycle
type SyncFunc func(ctx context.Context) error

// SyncWorker repeats a sync cycle at a fixed interval.
//
// Cycles never overlap: a cycle longer than the interval delays the next
// tick. A failed cycle is reported through errutil.Handle, unless it was
// already handled by the cycle itself, and retried at the next tick.
type SyncWorker struct {
	sync     SyncFunc
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}

	cycles int
}

// NewSyncWorker creates a worker running fn every interval
func NewSyncWorker(fn SyncFunc, interval time.Duration) (*SyncWorker, error) {
	if fn == nil {
		return nil, goerr.New("sync function is required")
	}
	if interval <= 0 {
		return nil, goerr.New("sync interval must be positive", goerr.V("interval", interval))
	}

	return &SyncWorker{
		sync:     fn,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins the loop in a goroutine. The first cycle runs immediately.
func (w *SyncWorker) Start(ctx context.Context) {
	logging.From(ctx).Info("Sync worker starting",
		"interval", w.interval.String())

	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the running cycle to finish
func (w *SyncWorker) Stop() {
	select {
	case <-w.stopCh:
	default:
		close(w.stopCh)
	}
	<-w.doneCh
}

// Done is closed when the loop has exited
func (w *SyncWorker) Done() <-chan struct{} {
	return w.doneCh
}

// Cycles returns the number of completed cycles. Valid after Done is closed.
func (w *SyncWorker) Cycles() int {
	return w.cycles
}

func (w *SyncWorker) run(ctx context.Context) {
	defer close(w.doneCh)
	logger := logging.From(ctx)

	w.runCycle(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runCycle(ctx)

		case <-w.stopCh:
			logger.Info("Sync worker received stop signal", "cycles", w.cycles)
			return

		case <-ctx.Done():
			logger.Info("Sync worker context cancelled", "cycles", w.cycles)
			return
		}
	}
}

func (w *SyncWorker) runCycle(ctx context.Context) {
	startTime := time.Now()
	err := w.sync(ctx)
	w.cycles++

	if err != nil {
		_ = errutil.Handle(ctx, err, "Sync cycle failed (will retry next interval)")
		return
	}

	logging.From(ctx).Info("Sync cycle completed",
		"cycle", w.cycles,
		"duration", time.Since(startTime).String())
}
