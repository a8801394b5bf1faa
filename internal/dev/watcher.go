package dev

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangeWritten ChangeType = iota
	ChangeRemoved
)

// String returns the change type name.
func (c ChangeType) String() string {
	if c == ChangeRemoved {
		return "removed"
	}
	return "written"
}

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch. Subdirectories are not followed.
	Paths []string

	// Match selects the files to report. Nil reports every file.
	Match func(path string) bool

	// Debounce is how long changes are collected before being reported.
	Debounce time.Duration

	Logger *slog.Logger
}

// Watcher reports file changes under a set of directories. Bursts of
// events for the same file within Debounce collapse into one Change.
type Watcher struct {
	config WatcherConfig
	ready  chan struct{}
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Watcher{
		config: config,
		ready:  make(chan struct{}),
	}
}

// Ready is closed once every path is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled, calling fn for each change in path
// order per batch. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context, fn func(Change)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, p := range w.config.Paths {
		if err := fw.Add(p); err != nil {
			return err
		}
		w.config.Logger.Debug("watching", "dir", p)
	}
	close(w.ready)

	pending := make(map[string]ChangeType)
	timer := time.NewTimer(w.config.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.config.Match != nil && !w.config.Match(ev.Name) {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				pending[filepath.Clean(ev.Name)] = ChangeRemoved
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
				pending[filepath.Clean(ev.Name)] = ChangeWritten
			default:
				continue
			}
			timer.Reset(w.config.Debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("watcher error", "err", err)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				fn(Change{Path: p, Type: pending[p]})
			}
			clear(pending)
		}
	}
}
