package app

import (
	"tableflip.dev/weekend/pkg/plan"
)

// EventKind tells subscribers what happened.
type EventKind int

const (
	// EventHydrated follows a completed Hydrate.
	EventHydrated EventKind = iota
	// EventCommitted follows every dispatched change.
	EventCommitted
	// EventThemeChanged follows a change of theme id; styling subscribes to it.
	EventThemeChanged
)

func (k EventKind) String() string {
	switch k {
	case EventHydrated:
		return "hydrated"
	case EventCommitted:
		return "committed"
	case EventThemeChanged:
		return "theme-changed"
	}
	return "unknown"
}

// Event is delivered to subscribers after the state changed.
type Event struct {
	Kind     EventKind
	State    plan.State
	Commands []plan.Command
}

// Subscribe registers fn for every event and returns a function that
// unregisters it. fn runs synchronously on the dispatching goroutine, after
// the planner lock is released, so it may call back into the planner.
func (p *Planner) Subscribe(fn func(Event)) (unsubscribe func()) {
	p.subMu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subs[id] = fn
	p.subMu.Unlock()

	return func() {
		p.subMu.Lock()
		delete(p.subs, id)
		p.subMu.Unlock()
	}
}

func (p *Planner) publish(ev Event) {
	p.subMu.Lock()
	fns := make([]func(Event), 0, len(p.subs))
	for i := 0; i < p.nextSubID; i++ {
		if fn, ok := p.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	p.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
