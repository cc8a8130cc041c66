// Package watch re-evaluates an options file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/duat-editor/duatflake/internal/deploy"
	"github.com/duat-editor/duatflake/internal/options"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a change must settle before re-evaluation.
const DefaultDebounce = 200 * time.Millisecond

// EvalFunc evaluates a set of options read from the watched file.
type EvalFunc func(options.Options) (deploy.Result, error)

// ReportFunc receives the outcome of every evaluation.
type ReportFunc func(deploy.Result, error)

// Watcher re-evaluates one options file.
type Watcher struct {
	Path     string
	Eval     EvalFunc
	Report   ReportFunc
	Debounce time.Duration // DefaultDebounce if zero
}

// Run evaluates the file once, then again after every write to it, until
// ctx is done. The directory of the file is watched rather than the file
// itself so that editors replacing the file are noticed.
//
// Run returns nil when ctx is done and an error only if watching fails.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Path, err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Path, err)
	}

	w.reload(target)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload(target)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Report(deploy.Result{}, fmt.Errorf("failed to watch %s: %w", w.Path, err))
		}
	}
}

func (w *Watcher) reload(path string) {
	opts, err := options.ReadFile(path)
	if err != nil {
		w.Report(deploy.Result{}, err)
		return
	}
	w.Report(w.Eval(opts))
}
