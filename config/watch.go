package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often Watch re-reads the file without fsnotify.
const pollInterval = 500 * time.Millisecond

// Watch calls fn with the freshly loaded config every time the file at path
// is written or replaced, until ctx is cancelled. fn receives the load error
// instead of a config when the new contents are invalid.
//
// Uses fsnotify on the parent directory, which survives editors that save by
// rename, and falls back to polling the modification time.
func Watch(ctx context.Context, path string, fn func(Config, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling config", slog.Any("error", err))
		return watchPolling(ctx, abs, fn)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		slog.Debug("cannot watch config directory, polling", slog.Any("error", err))
		return watchPolling(ctx, abs, fn)
	}

	return watchEvents(ctx, abs, watcher, fn)
}

func watchEvents(ctx context.Context, path string, watcher *fsnotify.Watcher, fn func(Config, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fn(Load(path))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", slog.Any("error", err))
		}
	}
}

func watchPolling(ctx context.Context, path string, fn func(Config, error)) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last time.Time
	if info, err := os.Stat(path); err == nil {
		last = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil || !info.ModTime().After(last) {
				continue
			}
			last = info.ModTime()
			fn(Load(path))
		}
	}
}
