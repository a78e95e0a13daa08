// Package watch polls the network configuration file and runs a reconciliation
// pass whenever its modification time changes.
package watch

import (
	"context"
	"fmt"
	"time"

	"tw-network-manager/internal/pkg/config"
	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/port"
)

// State is the only data kept between passes.
type State struct {
	lastModTime time.Time
	seen        bool
}

// ShouldReconcile reports whether mod differs from the last observed modification
// time. The first observation always reconciles.
func (s *State) ShouldReconcile(mod time.Time) bool {
	return !s.seen || !mod.Equal(s.lastModTime)
}

// Observe records mod as the last observed modification time.
func (s *State) Observe(mod time.Time) {
	s.lastModTime = mod
	s.seen = true
}

// Watcher drives reconciliation from configuration file changes.
type Watcher struct {
	files      port.FileManager
	reconciler port.Reconciler
	path       string
	interval   time.Duration
	trigger    <-chan struct{}
	state      State
}

// NewWatcher creates a watcher polling path every interval.
func NewWatcher(files port.FileManager, reconciler port.Reconciler, path string, interval time.Duration) *Watcher {
	return &Watcher{
		files:      files,
		reconciler: reconciler,
		path:       path,
		interval:   interval,
	}
}

// WithTrigger makes every receive on trigger poll immediately instead of
// waiting for the next tick.
func (w *Watcher) WithTrigger(trigger <-chan struct{}) *Watcher {
	w.trigger = trigger
	return w
}

// Poll checks the file once and runs a pass if it changed. It reports whether a
// pass was attempted. The modification time is recorded before the pass, so a
// failing configuration is retried only after the file changes again.
func (w *Watcher) Poll(ctx context.Context) (bool, error) {
	if !w.files.FileExists(w.path) {
		return false, nil
	}

	mod, err := w.files.ModTime(w.path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", w.path, err)
	}
	if !w.state.ShouldReconcile(mod) {
		return false, nil
	}
	w.state.Observe(mod)

	logging.WithComponent("watch").WithField("modified", mod.Format(time.RFC3339Nano)).
		Info("Network configuration changed")

	data, err := w.files.ReadFile(w.path)
	if err != nil {
		return true, fmt.Errorf("failed to read %s: %w", w.path, err)
	}
	cfg, err := config.ParseNetwork(data)
	if err != nil {
		return true, err
	}
	return true, w.reconciler.Reconcile(ctx, cfg)
}

// Run polls until ctx is done. Pass errors are logged and polling continues at
// the same cadence.
func (w *Watcher) Run(ctx context.Context) error {
	logger := logging.WithComponent("watch").WithField("path", w.path)
	logger.WithField("interval", w.interval).Info("Watching network configuration")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		ran, err := w.Poll(ctx)
		switch {
		case err != nil:
			logger.WithError(err).Error("Reconciliation pass failed")
		case ran:
			logger.Info("Reconciliation pass complete")
		}

		select {
		case <-ctx.Done():
			logger.Info("Watcher stopped")
			return ctx.Err()
		case <-ticker.C:
		case <-w.trigger:
		}
	}
}
