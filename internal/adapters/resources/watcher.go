package resources

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/chime/internal/domain"
	"github.com/renato0307/chime/internal/logging"
)

// Watcher reports audio files that are created, rewritten, removed or renamed in a directory.
// Consumers should forward changes to the goroutine that owns the registry
// rather than touching the registry from the watcher.
type Watcher struct {
	changes chan domain.Descriptor
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching dir
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		changes: make(chan domain.Descriptor),
		done:    make(chan struct{}),
		watcher: fw,
	}
	go w.run()

	logging.Logger.Debug("Watching sounds directory", "dir", dir)
	return w, nil
}

// Changes yields a descriptor for every audio file event. Consumers re-list
// the directory to tell a removal from a write.
// The channel is closed when the watcher stops.
func (w *Watcher) Changes() <-chan domain.Descriptor {
	return w.changes
}

// Close stops the watcher
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	defer close(w.changes)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			d, ok := descriptorForEvent(event)
			if !ok {
				continue
			}
			logging.Logger.Debug("Sound file changed", "sound", d.ID(), "op", event.Op.String())
			select {
			case w.changes <- d:
			case <-w.done:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("File watcher error", "error", err)
		}
	}
}

const watchedOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// descriptorForEvent maps events on supported audio files to descriptors. Chmod is ignored.
func descriptorForEvent(event fsnotify.Event) (domain.Descriptor, bool) {
	if event.Op&watchedOps == 0 {
		return domain.Descriptor{}, false
	}
	d, err := domain.ParseDescriptor(filepath.Base(event.Name))
	if err != nil || !IsSupported(d) {
		return domain.Descriptor{}, false
	}
	return d, true
}
