// Package watch invalidates the template cache when template files change.
// Used only in dev mode; production parses templates once at startup.
package watch

import (
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher flags template-directory changes. The server checks ConsumeDirty
// before rendering and reparses when it reports true, so a burst of editor
// writes costs one reparse, not one per event.
type Watcher struct {
	fsw   *fsnotify.Watcher
	dirty atomic.Bool
	done  chan struct{}
}

// New watches dir and every subdirectory beneath it. The first render
// always parses, so the watcher starts dirty.
func New(dir string, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	}); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	w.dirty.Store(true)
	go w.loop(log)
	return w, nil
}

func (w *Watcher) loop(log *zap.Logger) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				log.Debug("template change", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
				w.dirty.Store(true)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("template watcher", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// ConsumeDirty reports whether templates changed since the last call and
// clears the flag.
func (w *Watcher) ConsumeDirty() bool {
	return w.dirty.Swap(false)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
