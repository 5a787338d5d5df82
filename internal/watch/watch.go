// Package watch reports changes to a single notepad file using fsnotify.
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it are still followed.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required before a change is reported.
const DefaultDebounce = 50 * time.Millisecond

// Watcher watches one file.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// New starts watching the directory that holds path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch.New: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch.New: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch.New: %w", err)
	}
	return &Watcher{
		path:     abs,
		fw:       fw,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run calls onChange serially once the file has been quiet for the
// debounce interval after a change, and onError for watcher errors (onError
// may be nil). It blocks until ctx is cancelled or Stop is called.
func (w *Watcher) Run(ctx context.Context, onChange func(), onError func(error)) error {
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
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}

		case <-w.done:
			return nil

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
