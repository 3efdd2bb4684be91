// Package watch reloads the fixture file when it changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cmoscosoz/mock-supabase-go/internal/debug"
)

const debounce = 500 * time.Millisecond

// Watcher watches one file and invokes a callback after each write.
type Watcher struct {
	file     string
	callback func() error
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// New creates a watcher for the given file. The containing directory is
// watched so editors that replace the file atomically are still seen.
func New(file string, callback func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &Watcher{
		file:     absPath,
		callback: callback,
		watcher:  watcher,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. Events within the debounce window collapse into a
// single callback invocation.
func (w *Watcher) Start() {
	go func() {
		timer := time.NewTimer(debounce)
		timer.Stop()
		var pending <-chan time.Time

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				eventPath, err := filepath.Abs(event.Name)
				if err == nil && eventPath == w.file {
					timer.Reset(debounce)
					pending = timer.C
				}

			case <-pending:
				if err := w.callback(); err != nil {
					debug.Error("watch callback failed", "file", w.file, "error", err)
				}
				pending = nil

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				debug.Error("watch error", "error", err)

			case <-w.done:
				return
			}
		}
	}()
}

// Stop stops watching the file.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
