package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kraitsura/lelscale/pkg/loader"
	"github.com/kraitsura/lelscale/pkg/logging"
	"github.com/kraitsura/lelscale/pkg/model"
)

// ReloadFunc receives a freshly loaded catalog, or the error that prevented loading it.
type ReloadFunc func(*model.Catalog, error)

// CatalogWatcher watches one catalog file and reloads it on change.
type CatalogWatcher struct {
	path      string
	onReload  ReloadFunc
	debouncer *Debouncer
	fsw       *fsnotify.Watcher
}

// NewCatalogWatcher watches the directory holding path. Watching the
// directory rather than the file survives editors that replace the file
// via rename.
func NewCatalogWatcher(path string, debounce time.Duration, onReload ReloadFunc) (*CatalogWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &CatalogWatcher{
		path:      abs,
		onReload:  onReload,
		debouncer: NewDebouncer(debounce),
		fsw:       fsw,
	}, nil
}

// Path returns the absolute path being watched.
func (w *CatalogWatcher) Path() string {
	return w.path
}

// Run delivers reloads until ctx is cancelled. It closes the underlying
// watcher on return.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	defer w.debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			logging.Debugw("catalog file event", "path", ev.Name, "op", ev.Op.String())
			w.debouncer.Trigger(w.reload)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logging.Warnw("file watcher error", "error", err)
		}
	}
}

func (w *CatalogWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *CatalogWatcher) reload() {
	c, err := loader.LoadCatalogFromFile(w.path)
	if err != nil {
		logging.Warnw("catalog reload failed", "path", w.path, "error", err)
	} else {
		logging.Infow("catalog reloaded", "path", w.path, "gases", c.Len())
	}
	w.onReload(c, err)
}
