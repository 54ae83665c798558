package crumbtug

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// dirWatcher watches the directory the browser shows.
// Events are posted to the UI goroutine with post.
type dirWatcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	post    func(func())
	onEvent func(dir string, event fsnotify.Event)
	dir     string
}

var newFSWatcher = fsnotify.NewWatcher

func newDirWatcher(logger *slog.Logger, post func(func()), onEvent func(dir string, event fsnotify.Event)) (*dirWatcher, error) {
	w, err := newFSWatcher()
	if err != nil {
		return nil, err
	}
	return &dirWatcher{
		watcher: w,
		logger:  logger,
		post:    post,
		onEvent: onEvent,
	}, nil
}

// Watch replaces the watched directory with dir.
func (d *dirWatcher) Watch(dir string) error {
	if dir == d.dir {
		return nil
	}
	if d.dir != "" {
		if err := d.watcher.Remove(d.dir); err != nil {
			d.logger.Debug("failed to stop watching", "dir", d.dir, "err", err)
		}
	}
	d.dir = ""
	if err := d.watcher.Add(dir); err != nil {
		return err
	}
	d.dir = dir
	return nil
}

// Dir returns the directory being watched.
func (d *dirWatcher) Dir() string {
	return d.dir
}

// Run forwards events until ctx is done or the watcher is closed.
func (d *dirWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			d.logger.Debug("directory changed", "event", event.String())
			d.post(func() {
				d.onEvent(d.dir, event)
			})
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			d.logger.Error("directory watcher failed", "err", err)
		}
	}
}

func (d *dirWatcher) Close() error {
	return d.watcher.Close()
}
