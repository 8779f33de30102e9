package server

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher calls onChange whenever the watched file is written, created,
// renamed or removed. It watches the parent directory so that editors and
// atomic saves that replace the file are noticed too.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	logger   *log.Logger
}

// NewWatcher starts watching the directory of path.
func NewWatcher(path string, onChange func(), logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching parent directory: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{path: abs, watcher: watcher, onChange: onChange, logger: logger}, nil
}

// Run delivers change notifications until ctx is done. The watcher is
// closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.logger.Debug("changelog changed", "path", w.path, "op", event.Op.String())
			w.onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			// Events may have been dropped.
			w.logger.Warn("watcher error", "err", err)
			w.onChange()
		}
	}
}
