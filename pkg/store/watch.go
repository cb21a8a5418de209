package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/eventcal/pkg/log"
)

// EventType describes a change notification for the watched events file.
type EventType int

const (
	// EventFileChanged means the events file was written, created or
	// replaced and should be reloaded.
	EventFileChanged EventType = iota

	// EventFileRemoved means the events file disappeared.
	EventFileRemoved

	// EventWatchError means the watcher reported an error; callers should
	// reload to resync.
	EventWatchError
)

// Event is emitted by Watch when the events file changes.
type Event struct {
	Type EventType
	Path string
	Err  error
}

const throttleDelay = 100 * time.Millisecond

// Watch streams change events for the file at path until ctx is cancelled.
// The file's directory is watched so editors that save via rename are seen.
// The channel is closed once ctx is done or the watcher fails.
func Watch(ctx context.Context, path string) (<-chan Event, error) {
	if path == "" {
		return nil, errors.New("store: events path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Error("store: watcher close", err)
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Dropped; the pending reload already covers this change.
			}
		}

		throttle := newEventThrottle(throttleDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventWatchError, Path: abs, Err: err}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				typ := EventFileChanged
				if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					if _, statErr := os.Stat(abs); statErr != nil {
						typ = EventFileRemoved
					}
				}
				throttle.Enqueue(Event{Type: typ, Path: abs}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces a burst of notifications into the last one seen,
// so an editor's save produces a single reload.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending *Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending = &ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends while holding the lock so that Stop, once returned,
// guarantees no further sends.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	if pending != nil && !t.stopped {
		send(*pending)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
