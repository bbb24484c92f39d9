// Package watch reruns a function whenever a file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the quiet period after the last event before fn runs again.
// Editors often emit several events for one save.
const Debounce = 100 * time.Millisecond

// Watch calls fn once, then again after each write, create or rename of path,
// until ctx is done. The parent directory is watched so that files replaced
// by rename-on-save are still seen. Errors from fn are logged and do not stop
// the watch.
func Watch(ctx context.Context, path string, fn func(ctx context.Context) error, logger *slog.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	run := func() {
		if err := fn(ctx); err != nil {
			logger.Error("watch_run_failed", "path", abs, "error", err)
		}
	}
	run()

	timer := time.NewTimer(Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("watch_event", "path", abs, "op", ev.Op.String())
			timer.Reset(Debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch_error", "error", err)

		case <-timer.C:
			logger.Info("watch_rerun", "path", abs)
			run()
		}
	}
}
