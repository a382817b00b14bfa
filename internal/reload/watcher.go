package reload

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies the reload server when files under the shared assets
// directory change. CSS edits trigger a stylesheet-only refresh; anything
// else triggers a full page reload.
type Watcher struct {
	fs     *fsnotify.Watcher
	done   chan struct{}
	logger *slog.Logger
}

// Watch starts watching dir and forwarding change events to srv.
func Watch(dir string, srv *Server, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fs: fw, done: make(chan struct{}), logger: logger}
	go w.loop(srv)
	return w, nil
}

func (w *Watcher) loop(srv *Server) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("asset changed", "file", event.Name, "op", event.Op.String())
			if strings.EqualFold(filepath.Ext(event.Name), ".css") {
				srv.NotifyCSS(filepath.Base(event.Name))
			} else {
				srv.NotifyReload()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("asset watcher error", "error", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
