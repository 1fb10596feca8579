package project

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// WatchOptions configures the brief watcher.
type WatchOptions struct {
	// DebounceMs groups rapid saves of the same brief into one rebuild.
	// Zero means 200ms.
	DebounceMs int
}

// DefaultWatchOptions returns the standard debounce window.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// Watcher rebuilds briefs incrementally as they change on disk. Only the
// changed brief is rebuilt, not the whole workspace.
type Watcher struct {
	builder *Builder
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	options WatchOptions

	root string
	cfg  BuildConfig

	debounceMu     sync.Mutex
	debounceTimers map[string]*time.Timer

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
}

// NewWatcher creates a watcher over the given builder.
func NewWatcher(builder *Builder, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		builder:        builder,
		watcher:        w,
		logger:         logger,
		options:        options,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start builds everything once, then watches rootDir (recursively) and
// rebuilds individual briefs on change. It returns after starting the
// background loop.
func (w *Watcher) Start(rootDir string, cfg BuildConfig) error {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve watch root: %w", err)
	}
	w.root = absRoot
	w.cfg = cfg

	if _, err := w.builder.Run(absRoot, cfg); err != nil {
		return err
	}

	// fsnotify does not recurse, so register every directory under the
	// root except the excluded ones.
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(absRoot, path)
		if relErr == nil && rel != "." {
			relSlash := filepath.ToSlash(rel)
			for _, pattern := range w.excludes() {
				if matched, _ := doublestar.PathMatch(pattern, relSlash); matched {
					return filepath.SkipDir
				}
			}
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("failed to register watch directories: %w", err)
	}

	go w.loop()
	w.logger.Info("watching for brief changes", "root", absRoot)
	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.stopChan)
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("failed to close file watcher", "error", err)
	}
}

func (w *Watcher) excludes() []string {
	if w.cfg.Exclude != nil {
		return w.cfg.Exclude
	}
	return DefaultExclude
}

// loop dispatches file system events until Stop.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// handleEvent filters events down to brief writes/creates and debounces
// the rebuild per path.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return
	}
	if !matchesBrief(rel, w.cfg.Include, w.excludes()) {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounceTimers[event.Name]; ok {
		timer.Stop()
	}
	path := event.Name
	w.debounceTimers[path] = time.AfterFunc(time.Duration(w.options.DebounceMs)*time.Millisecond, func() {
		w.rebuild(path)
	})
}

// rebuild regenerates the outputs for one brief.
func (w *Watcher) rebuild(briefPath string) {
	w.debounceMu.Lock()
	delete(w.debounceTimers, briefPath)
	w.debounceMu.Unlock()

	start := time.Now()
	w.builder.Invalidate(briefPath)
	result := w.builder.BuildBrief(briefPath, w.cfg.OutDir)
	if result.Err != nil {
		w.logger.Error("rebuild failed", "brief", briefPath, "error", result.Err)
		return
	}
	w.logger.Info("rebuilt brief",
		"brief", briefPath,
		"files", result.FilesWritten,
		"ms", time.Since(start).Milliseconds())
}
