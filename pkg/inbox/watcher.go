// Package inbox imports export documents dropped into a watched directory.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/memo/pkg/transfer"
)

const (
	// DefaultPattern selects the files the watcher picks up, matched against the base name.
	DefaultPattern = "*.{json,yaml,yml}"
	// ImportedDir receives files once their notes have been merged.
	ImportedDir = "imported"

	defaultDebounce = 50 * time.Millisecond
)

// Importer merges a raw export document into the collection.
type Importer interface {
	Import(ctx context.Context, raw []byte, format transfer.Format) (int, error)
}

// Result reports the outcome of one dropped file.
type Result struct {
	Path  string
	Count int
	Err   error
}

// Config holds the watcher settings.
type Config struct {
	Dir      string
	Pattern  string
	Debounce time.Duration
	Logger   *slog.Logger
	// OnResult is called after every import attempt, from the watcher goroutine.
	OnResult func(Result)
}

// Watcher imports every matching file written to Dir. Successfully imported files
// are moved to Dir/imported; rejected files stay where they are.
type Watcher struct {
	importer Importer
	config   Config

	mu       sync.Mutex
	running  bool
	timers   map[string]*time.Timer
	pending  sync.WaitGroup
	imported int
	failed   int

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Watcher. Nothing is watched until Start.
func New(importer Importer, config Config) *Watcher {
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Debounce <= 0 {
		config.Debounce = defaultDebounce
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Watcher{
		importer: importer,
		config:   config,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
}

// Start begins watching. Files already present in the directory are imported first.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !doublestar.ValidatePattern(w.config.Pattern) {
		return fmt.Errorf("invalid inbox pattern %q", w.config.Pattern)
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("inbox watcher already started")
	}
	w.running = true
	w.mu.Unlock()

	info, err := os.Stat(w.config.Dir)
	if err != nil {
		w.setRunning(false)
		return fmt.Errorf("inbox directory unavailable: %w", err)
	}
	if !info.IsDir() {
		w.setRunning(false)
		return fmt.Errorf("inbox path is not a directory: %s", w.config.Dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.setRunning(false)
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.config.Dir); err != nil {
		_ = watcher.Close()
		w.setRunning(false)
		return fmt.Errorf("failed to watch %s: %w", w.config.Dir, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.sweep(runCtx)

	lifecycle.Go(runCtx, func(ctx context.Context) error {
		defer close(w.done)
		defer w.setRunning(false)
		defer watcher.Close()
		err := w.loop(ctx, watcher)
		w.drain()
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		w.config.Logger.Error("inbox watcher failed", "dir", w.config.Dir, "error", err)
	}))

	w.config.Logger.Info("watching inbox", "dir", w.config.Dir, "pattern", w.config.Pattern)
	return nil
}

// Stop cancels the watcher and waits for in-flight imports.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// Done is closed once the watcher has fully stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) setRunning(v bool) {
	w.mu.Lock()
	w.running = v
	w.mu.Unlock()
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if w.matches(event.Name) {
				w.schedule(ctx, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			w.config.Logger.Error("fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) matches(path string) bool {
	ok, err := doublestar.Match(w.config.Pattern, filepath.Base(path))
	return err == nil && ok
}

// sweep imports files that were dropped while nobody was watching.
func (w *Watcher) sweep(ctx context.Context) {
	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		w.config.Logger.Warn("inbox sweep failed", "dir", w.config.Dir, "error", err)
		return
	}
	for _, e := range entries {
		if e.Type().IsRegular() && w.matches(e.Name()) {
			w.schedule(ctx, filepath.Join(w.config.Dir, e.Name()))
		}
	}
}

// schedule coalesces the create/write bursts of a single file into one import.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		if t.Stop() {
			t.Reset(w.config.Debounce)
			return
		}
	}

	w.pending.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(w.config.Debounce, func() {
		defer w.pending.Done()
		w.mu.Lock()
		if w.timers[path] == timer {
			delete(w.timers, path)
		}
		w.mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, path)
	})
	w.timers[path] = timer
}

// drain cancels pending timers and waits for running imports.
func (w *Watcher) drain() {
	w.mu.Lock()
	for path, t := range w.timers {
		if t.Stop() {
			w.pending.Done()
		}
		delete(w.timers, path)
	}
	w.mu.Unlock()
	w.pending.Wait()
}

func (w *Watcher) process(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		w.report(Result{Path: path, Err: fmt.Errorf("failed to read %s: %w", path, err)})
		return
	}

	count, err := w.importer.Import(ctx, raw, transfer.FormatFromPath(path))
	if err != nil {
		w.report(Result{Path: path, Err: err})
		return
	}

	if err := w.archive(path); err != nil {
		w.config.Logger.Warn("imported file could not be moved", "path", path, "error", err)
	}
	w.report(Result{Path: path, Count: count})
}

func (w *Watcher) archive(path string) error {
	dest := filepath.Join(w.config.Dir, ImportedDir)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	return os.Rename(path, filepath.Join(dest, filepath.Base(path)))
}

func (w *Watcher) report(res Result) {
	w.mu.Lock()
	if res.Err != nil {
		w.failed++
	} else {
		w.imported++
	}
	w.mu.Unlock()

	if res.Err != nil {
		w.config.Logger.Warn("inbox file rejected", "path", res.Path, "error", res.Err)
	} else {
		w.config.Logger.Info("inbox file imported", "path", res.Path, "count", res.Count)
	}
	if w.config.OnResult != nil {
		w.config.OnResult(res)
	}
}
