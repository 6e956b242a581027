package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/qoobee/assetgen/core/cache"
	"github.com/qoobee/assetgen/core/logger"
)

const DefaultDebounce = 500 * time.Millisecond

// FileWatcher re-runs OnChange whenever one of the watched files is written
// with new content. Events are debounced so an editor save burst triggers a
// single run.
type FileWatcher struct {
	Watcher       *fsnotify.Watcher
	Files         []string
	Debounce      time.Duration
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	OnChange      func() error

	cache *cache.ContentCache
}

func NewFileWatcher(files []string, onChange func() error) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &FileWatcher{
		Watcher:  w,
		Debounce: DefaultDebounce,
		OnChange: onChange,
		cache:    cache.NewContentCache(),
	}

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		fw.Files = append(fw.Files, abs)
		// Prime the cache so the first event only fires on real changes.
		fw.cache.HasChanged(abs)
	}

	return fw, nil
}

func (fw *FileWatcher) isWatched(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return slices.Contains(fw.Files, abs)
}

// Watch blocks until ctx is cancelled or the watcher fails. The parent
// directories are watched rather than the files themselves so that editors
// which replace files on save are still picked up.
func (fw *FileWatcher) Watch(ctx context.Context) error {
	var dirs []string
	for _, f := range fw.Files {
		dir := filepath.Dir(f)
		if slices.Contains(dirs, dir) {
			continue
		}
		dirs = append(dirs, dir)
		logger.Debug("Adding watcher for: %s", dir)
		if err := fw.Watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !fw.isWatched(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				fw.debounceGenerate()
			}

		case err, ok := <-fw.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) changed() bool {
	changed := false
	for _, f := range fw.Files {
		if fw.cache.HasChanged(f) {
			changed = true
		}
	}
	fw.cache.LogStats()
	return changed
}

func (fw *FileWatcher) debounceGenerate() {
	fw.Mutex.Lock()
	defer fw.Mutex.Unlock()

	if fw.DebounceTimer != nil {
		fw.DebounceTimer.Stop()
	}

	fw.DebounceTimer = time.AfterFunc(fw.Debounce, func() {
		if !fw.changed() {
			logger.Debug("Inputs unchanged, skipping regeneration")
			return
		}
		logger.Info("Input changes detected, regenerating...")
		if err := fw.OnChange(); err != nil {
			logger.Error("Regeneration failed: %v", err)
		}
	})
}

func (fw *FileWatcher) Close() error {
	fw.Mutex.Lock()
	defer fw.Mutex.Unlock()

	if fw.DebounceTimer != nil {
		fw.DebounceTimer.Stop()
	}

	return fw.Watcher.Close()
}
