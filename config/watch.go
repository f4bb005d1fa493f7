package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback polling cadence when fsnotify is unavailable.
const pollInterval = time.Second

// Watch follows the configuration file at path and sends each successfully
// reloaded Config on the returned channel. The channel is closed when ctx
// is cancelled. Files that fail to load after a change are skipped; the
// previous configuration stays in effect.
//
// Uses fsnotify for efficient file watching with polling fallback.
func Watch(ctx context.Context, path string) <-chan *Config {
	ch := make(chan *Config, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			pollLoop(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly; editors often replace files on save).
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			pollLoop(ctx, ch, path)
			return
		}

		watchLoop(ctx, ch, path, watcher)
	}()

	return ch
}

// watchLoop reloads the config on fsnotify write/create events.
func watchLoop(ctx context.Context, ch chan<- *Config, path string, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			send(ctx, ch, path)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
		}
	}
}

// pollLoop reloads the config when the file's modification time changes.
func pollLoop(ctx context.Context, ch chan<- *Config, path string) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				send(ctx, ch, path)
			}
		}
	}
}

// send loads path and delivers the config unless ctx is done.
func send(ctx context.Context, ch chan<- *Config, path string) {
	cfg, err := Load(path)
	if err != nil {
		return
	}
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
