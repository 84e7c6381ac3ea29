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
)

// Event is emitted by Watch when the saved state changes on disk.
type Event struct {
	State State
	Err   error
}

// Watcher is implemented by persistence that can report changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch streams the saved state each time it is rewritten, until ctx is
// cancelled. Bursts of writes are coalesced into one event and events are
// dropped while the consumer is busy.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer func() { _ = watcher.Close() }()

		send := func() {
			s, ok, err := p.Load()
			if err == nil && !ok {
				return
			}
			select {
			case events <- Event{State: s, Err: err}:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case events <- Event{Err: err}:
				default:
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != stateKey {
					continue
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid writes so the state is read once per burst.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil || t.stopped {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.timer = nil
		if !t.stopped {
			fn()
		}
	})
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
