package file

import (
	"fmt"
	"path/filepath"

	"tw-network-manager/internal/pkg/logging"

	"github.com/fsnotify/fsnotify"
)

// Notifier signals when a file may have changed. It watches the parent
// directory so that editors replacing the file by rename are seen too.
type Notifier struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	done    chan struct{}
}

// NewNotifier starts watching filename.
func NewNotifier(filename string) (*Notifier, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(filename)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	n := &Notifier{
		watcher: watcher,
		path:    filepath.Clean(filename),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go n.loop()
	return n, nil
}

// Changes delivers at most one pending notification at a time.
func (n *Notifier) Changes() <-chan struct{} {
	return n.changes
}

// Close stops watching.
func (n *Notifier) Close() error {
	err := n.watcher.Close()
	<-n.done
	return err
}

func (n *Notifier) loop() {
	defer close(n.done)
	logger := logging.WithComponent("notify").WithField("path", n.path)

	for {
		select {
		case ev, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != n.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case n.changes <- struct{}{}:
			default:
			}
		case err, ok := <-n.watcher.Errors:
			if !ok {
				return
			}
			logger.WithError(err).Warn("File watcher error")
		}
	}
}
