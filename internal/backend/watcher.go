package backend

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceWindow = 250 * time.Millisecond

// Event signals that the watched menu file changed, or that watching
// itself failed.
type Event struct {
	Path string
	Err  error
}

// Watcher observes the menu definition file and publishes debounced
// change events. Editors tend to write files as remove+rename pairs,
// so the parent directory is watched and events are filtered by name.
type Watcher struct {
	path   string
	fs     *fsnotify.Watcher
	events chan Event

	stopOnce sync.Once
	done     chan struct{}
}

// NewWatcher starts watching the directory containing path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, err
	}
	w := &Watcher{
		path:   abs,
		fs:     fs,
		events: make(chan Event, 4),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events returns the channel of change events. It closes when the
// watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop shuts the watcher down and closes the event channel.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fs.Close()
	})
}

func (w *Watcher) run() {
	defer close(w.events)

	var timer *time.Timer
	var timerC <-chan time.Time

	emit := func(evt Event) {
		select {
		case w.events <- evt:
		case <-w.done:
		}
	}

	for {
		select {
		case <-w.done:
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
				continue
			}
			// Collapse bursts of write events into one reload.
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceWindow)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			emit(Event{Path: w.path})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			emit(Event{Path: w.path, Err: err})
		}
	}
}
