// SPDX-License-Identifier: MIT
package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/netanalyzer/logging"
)

// DefaultDebounce is how long Watch waits after the last event before
// reloading.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc reloads the roster at path.
type ReloadFunc func(path string) error

// Watch calls reload whenever the file at path is written, created or
// renamed into place, until ctx is done. Bursts of events closer together
// than debounce trigger one reload.
//
// The parent directory is watched rather than the file so that editors that
// save through a rename keep being followed.
func Watch(ctx context.Context, path string, debounce time.Duration, reload ReloadFunc, log *slog.Logger) error {
	log = logging.OrDiscard(log)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			if err := reload(abs); err != nil {
				log.Warn("reload failed, keeping previous graph", slog.String("path", abs), slog.String("error", err.Error()))
				continue
			}
			log.Info("roster reloaded", slog.String("path", abs))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}
