package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/claudeye/claudeye/internal/core/ports"
)

// reloadWindow coalesces the burst of events an editor emits while
// saving into a single reload.
const reloadWindow = 500 * time.Millisecond

// ModuleWatcher reloads the registry whenever the evals module file
// changes. The parent directory is watched rather than the file itself,
// because most editors replace files by rename on save.
type ModuleWatcher struct {
	modulePath string
	registry   ports.Registry
	logger     ports.Logger

	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	done      chan struct{}
}

// NewModuleWatcher creates a watcher for the given evals module path.
func NewModuleWatcher(modulePath string, registry ports.Registry, logger ports.Logger) (*ModuleWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &ModuleWatcher{
		modulePath: modulePath,
		registry:   registry,
		logger:     logger,
		fsWatcher:  fsWatcher,
		done:       make(chan struct{}),
	}
	w.debouncer = NewDebouncer(reloadWindow, w.reload)
	return w, nil
}

// Start begins watching. A watcher for an empty module path is a no-op.
func (w *ModuleWatcher) Start(ctx context.Context) error {
	if w.modulePath == "" {
		close(w.done)
		return nil
	}
	if err := w.fsWatcher.Add(filepath.Dir(w.modulePath)); err != nil {
		return err
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher, flushes any pending reload, and releases all
// resources.
func (w *ModuleWatcher) Stop() error {
	err := w.fsWatcher.Close()
	<-w.done
	w.debouncer.Flush()
	return err
}

// processEvents filters directory events down to the module file and
// feeds them into the debouncer.
func (w *ModuleWatcher) processEvents(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isModuleEvent(event) {
				continue
			}
			w.debouncer.Add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(err)
		}
	}
}

// isModuleEvent reports whether the event concerns the module file with
// an operation that can change its content.
func (w *ModuleWatcher) isModuleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.modulePath) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// reload is the debounced callback rebuilding the registry bindings.
func (w *ModuleWatcher) reload([]string) {
	if err := w.registry.Reload(); err != nil {
		w.logger.Error(err)
		return
	}
	w.logger.Info("evals module reloaded")
}
