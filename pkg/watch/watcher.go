package watch

import (
	"context"
	"time"

	"github.com/raykavin/tokenwatch/pkg/core"
	"github.com/raykavin/tokenwatch/pkg/logger"
	"github.com/raykavin/tokenwatch/pkg/metrics"
)

// DefaultCheckInterval is the period between check cycles when the
// configuration does not override it.
const DefaultCheckInterval = 15 * time.Minute

// Watcher runs the periodic check cycle and forwards non-empty alert
// blocks to the notifier. One deployment runs a single watcher.
type Watcher struct {
	reporter *Reporter
	notifier core.Notifier
	interval time.Duration
	log      logger.Logger
}

func NewWatcher(reporter *Reporter, notifier core.Notifier, interval time.Duration, log logger.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Watcher{
		reporter: reporter,
		notifier: notifier,
		interval: interval,
		log:      log,
	}
}

// Run blocks until the context is canceled. Cancellation is serviced at
// the next select point; an in-flight cycle is allowed to finish.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Infof("price watcher started, checking every %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("price watcher stopped")
			return
		case <-ticker.C:
			w.runCycle(ctx)
		}
	}
}

// runCycle executes one check cycle. A failing cycle is logged and
// dropped so that it never kills the watcher.
func (w *Watcher) runCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Errorf("check cycle panicked: %v", r)
		}
	}()

	w.log.Info("checking prices...")

	start := time.Now()
	text := w.reporter.Check(ctx)
	metrics.CheckCycles.Inc()
	metrics.CheckDuration.Observe(time.Since(start).Seconds())

	if text == "" {
		return
	}

	if err := w.notifier.Notify(text); err != nil {
		metrics.DeliveryFailures.Inc()
		w.log.WithError(err).Error("got error when sending alert")
		return
	}

	metrics.AlertsSent.Inc()
}
