package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
	"github.com/trigrman/granola-meetings/internal/logger"
)

// DefaultWatchDebounce collapses the burst of events the desktop app
// produces while rewriting its cache.
const DefaultWatchDebounce = 500 * time.Millisecond

// WatchCache reloads the cache whenever the file changes and reports meetings
// that were not present in any earlier snapshot.
type WatchCache struct {
	Source   meeting.Source
	Path     string
	Debounce time.Duration
}

// WatchUpdate is sent once for the initial snapshot and then after every
// reload that found new meetings.
type WatchUpdate struct {
	Initial bool
	Total   int
	Added   []meeting.Meeting
}

// Execute blocks until ctx is done or the watcher fails.
func (w *WatchCache) Execute(ctx context.Context, onUpdate func(WatchUpdate)) error {
	repo, err := w.Source.Open()
	if err != nil {
		return fmt.Errorf("loading cache: %w", err)
	}
	seen := make(map[string]bool)
	for _, m := range repo.List() {
		seen[m.ID] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// The app replaces the file on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.Path), err)
	}
	onUpdate(WatchUpdate{Initial: true, Total: len(seen)})

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	name := filepath.Clean(w.Path)
	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				reload = time.After(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("[Watch] watcher error: %v", err)
		case <-reload:
			reload = nil
			repo, err := w.Source.Open()
			if err != nil {
				// Usually a half-written file; the next event retries.
				logger.Warnf("[Watch] reload failed: %v", err)
				continue
			}
			update := WatchUpdate{}
			for _, m := range recent(repo, 0) {
				update.Total++
				if !seen[m.ID] {
					seen[m.ID] = true
					update.Added = append(update.Added, m)
				}
			}
			logger.Infof("[Watch] reloaded %d meetings, %d new", update.Total, len(update.Added))
			if len(update.Added) > 0 {
				onUpdate(update)
			}
		}
	}
}
