package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventKeyChanged indicates the record under Key was written or erased.
	EventKeyChanged EventType = iota

	// EventInvalidated signals a change that could not be tied to a key;
	// callers should re-read everything.
	EventInvalidated
)

// Event is emitted by Watch when the underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watcher is implemented by stores that can report external changes.
// Failures of the underlying watcher are logged as warnings on log.
type Watcher interface {
	Watch(ctx context.Context, log *zap.Logger) (<-chan Event, error)
}

// Watch reports changes to the underlying store, when it supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.kv.(Watcher)
	if !ok {
		return nil, errors.New("store: backend cannot be watched")
	}
	return w.Watch(ctx, s.log)
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel; events are dropped while the consumer is busy. The channel
// is closed once ctx is done or the watcher fails.
func (k *DiskKV) Watch(ctx context.Context, log *zap.Logger) (<-chan Event, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if k.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(k.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn("closing store watcher", zap.Error(err))
			}
		})
	}

	dirs, err := collectDirs(k.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)
	loop := &watchLoop{
		kv:      k,
		log:     log,
		add:     watcher.Add,
		watched: make(map[string]struct{}, len(dirs)),
		events:  events,
	}
	for _, dir := range dirs {
		loop.watched[dir] = struct{}{}
	}

	go func() {
		defer close(events)
		defer closeWatcher()
		loop.run(ctx, watcher.Events, watcher.Errors)
	}()

	return events, nil
}

// watchLoop turns fsnotify notifications into store events.
type watchLoop struct {
	kv      *DiskKV
	log     *zap.Logger
	add     func(dir string) error
	watched map[string]struct{}
	events  chan<- Event
}

func (l *watchLoop) send(ev Event) {
	select {
	case l.events <- ev:
	default:
	}
}

// run returns once ctx is done or either source is closed.
func (l *watchLoop) run(ctx context.Context, fsEvents <-chan fsnotify.Event, fsErrors <-chan error) {
	throttle := newEventThrottle(100 * time.Millisecond)
	defer throttle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-fsErrors:
			if !ok {
				return
			}
			l.log.Warn("store watcher error", zap.Error(err))
			throttle.Enqueue(Event{Type: EventInvalidated}, l.send)
		case evt, ok := <-fsEvents:
			if !ok {
				return
			}

			if evt.Op&fsnotify.Create == fsnotify.Create {
				// New key prefixes show up as directories first.
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					dir := filepath.Clean(evt.Name)
					if _, found := l.watched[dir]; !found {
						if err := l.add(dir); err != nil {
							l.log.Warn("watching new store directory", zap.String("dir", dir), zap.Error(err))
						} else {
							l.watched[dir] = struct{}{}
						}
					}
					throttle.Enqueue(Event{Type: EventInvalidated}, l.send)
					continue
				}
			}

			key := l.kv.keyForPath(evt.Name)
			if key == "" {
				throttle.Enqueue(Event{Type: EventInvalidated}, l.send)
				continue
			}
			throttle.Enqueue(Event{Type: EventKeyChanged, Key: key}, l.send)
		}
	}
}

func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// keyForPath maps a file under the base path back to its key. diskv's temp
// files and anything outside the base map to "".
func (k *DiskKV) keyForPath(path string) string {
	rel, err := filepath.Rel(k.basePath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) < 2 {
		return ""
	}
	file := parts[len(parts)-1]
	if strings.HasPrefix(file, ".") || strings.Contains(file, "diskv-") {
		return ""
	}
	return strings.Join(parts, "-")
}

// eventThrottle coalesces bursts of writes into one event per key.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	t.mu.Unlock()

	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
