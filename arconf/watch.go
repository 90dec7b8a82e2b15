package arconf

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the time a Watcher waits after the last write before it
// calls back.
const DefaultDelay = 500 * time.Millisecond

// Watcher watches a configuration file for changes.
//
// The directory containing the file is watched rather than the file itself,
// as editors tend to replace files instead of writing to them.
type Watcher struct {
	Delay    time.Duration // debounce interval, DefaultDelay if zero
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
}

// NewWatcher creates a watcher which calls onChange after path has been
// written or re-created.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	if path == "" {
		return nil, ErrNoConfigPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot watch %q: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", path, err)
	}
	return &Watcher{
		watcher:  watcher,
		path:     abs,
		onChange: onChange,
	}, nil
}

// Run watches for file changes. It blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				tracer().Debugf("configuration file event: %v", event)
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(delay, w.onChange)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			tracer().Errorf("configuration watcher error: %v", err)
		}
	}
}
