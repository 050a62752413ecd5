package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) LogLevel() string  { return "debug" }
func (t testConfig) LogFormat() string { return "console" }

func TestWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	s, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	if err := s.CommitAutoSave(ctx, false); err != nil {
		t.Fatalf("commit: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Key != KeyAutoSave {
				t.Fatalf("expected key %q, got %q", KeyAutoSave, evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}

func TestWatchNeedsDisk(t *testing.T) {
	s := New(newMemKV())
	if _, err := s.Watch(context.Background()); err == nil {
		t.Fatal("expected error watching an in-memory store")
	}
}

func TestWatchLoopLogsWatcherErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	events := make(chan Event, 4)
	loop := &watchLoop{
		kv:      NewDiskKV(t.TempDir()),
		log:     zap.New(core),
		add:     func(string) error { return nil },
		watched: map[string]struct{}{},
		events:  events,
	}

	fsEvents := make(chan fsnotify.Event)
	fsErrors := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.run(context.Background(), fsEvents, fsErrors)
	}()

	fsErrors <- errors.New("queue overflow")

	select {
	case evt := <-events:
		if evt.Type != EventInvalidated {
			t.Fatalf("expected invalidation, got %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for invalidation")
	}

	close(fsErrors)
	<-done

	warned := logs.FilterMessage("store watcher error").All()
	if len(warned) != 1 {
		t.Fatalf("expected one watcher warning, got %d", len(warned))
	}
	if got := warned[0].ContextMap()["error"]; got != "queue overflow" {
		t.Fatalf("unexpected logged error %v", got)
	}
}
