package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/timbenroeck/macos-capture-transcripts/internal/logger"
)

type implWatcher struct {
	inputDir string
	pattern  string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// Start blocks until ctx is cancelled. Matching create/write events are
// batched until the directory has been quiet for the debounce period, then
// the handler runs synchronously, so two runs never overlap.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (debounce: %s). Monitoring: %s", w.debounce, w.inputDir)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(ctx, event) {
				continue
			}
			w.logger.Debug(ctx, "Snapshot change detected: %s (%s)", event.Name, event.Op)
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)

			if err := w.handler(ctx, changed); err != nil {
				w.logger.Error(ctx, "Failed to process %d changed files: %v", len(changed), err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// relevant reports whether event touches a snapshot file. New directories
// are added to the watch list as a side effect.
func (w *implWatcher) relevant(ctx context.Context, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				w.logger.Warn(ctx, "Failed to watch new directory %s: %v", event.Name, err)
			}
			return false
		}
	}

	return w.matches(event.Name)
}

// matches checks path against the input pattern relative to the input dir
func (w *implWatcher) matches(path string) bool {
	rel, err := filepath.Rel(w.inputDir, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(strings.ToLower(w.pattern), strings.ToLower(filepath.ToSlash(rel)))
	return err == nil && ok
}
