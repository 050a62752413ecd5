package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/store"
	"tableflip.dev/weekend/pkg/theme"
)

// ErrNotHydrated is the panic value for using a Planner before Hydrate.
var ErrNotHydrated = errors.New("app: planner used before hydration")

var (
	ErrUnknownActivity = errors.New("app: unknown activity")
	ErrNotSelected     = errors.New("app: activity not selected")
	ErrPlanName        = errors.New("app: plan name required")
	ErrEmptyPlan       = errors.New("app: nothing to save")
	ErrPlanNotFound    = errors.New("app: saved plan not found")
)

// Planner owns the live planning state. It is built explicitly and shared by
// reference; every change goes through Dispatch and the plan reducer. After
// each change the state is committed to Persistence while auto-save is on.
// A Planner is safe for concurrent use.
type Planner struct {
	persistence store.Persistence
	catalog     *activity.Catalog
	log         *zap.Logger
	now         func() time.Time

	mu       sync.Mutex
	state    plan.State
	hydrated bool

	subMu     sync.Mutex
	nextSubID int
	subs      map[int]func(Event)
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger; commit failures are reported there.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithCatalog replaces the built-in activity catalog.
func WithCatalog(c *activity.Catalog) Option {
	return func(p *Planner) {
		if c != nil {
			p.catalog = c
		}
	}
}

// WithClock replaces time.Now, which mints custom activity and plan ids.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// New returns an unhydrated Planner over persistence.
func New(persistence store.Persistence, opts ...Option) *Planner {
	p := &Planner{
		persistence: persistence,
		catalog:     activity.Default(),
		log:         zap.NewNop(),
		now:         time.Now,
		state:       plan.Initial(),
		subs:        make(map[int]func(Event)),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Hydrate seeds the planner from persistence. Nothing is written back while
// hydrating. Calling it again re-reads the store.
func (p *Planner) Hydrate(ctx context.Context) error {
	if p.persistence == nil {
		return errors.New("app: no persistence configured")
	}
	snap, err := p.persistence.Hydrate(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	prev := p.state
	p.state = plan.ReduceAll(plan.Initial(), snap.Commands()...)
	p.hydrated = true
	next := p.state
	p.mu.Unlock()

	p.publish(Event{Kind: EventHydrated, State: next})
	if prev.Theme != next.Theme {
		p.publish(Event{Kind: EventThemeChanged, State: next})
	}
	return nil
}

// Hydrated reports whether Hydrate has completed.
func (p *Planner) Hydrated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hydrated
}

// Catalog is the catalog activities are drawn from.
func (p *Planner) Catalog() *activity.Catalog {
	return p.catalog
}

// State returns the current snapshot.
func (p *Planner) State() plan.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hydrated {
		panic(ErrNotHydrated)
	}
	return p.state
}

// Theme returns the preset for the current theme id.
func (p *Planner) Theme() theme.Theme {
	return theme.Get(p.State().Theme)
}

// Dispatch applies cmds as one change and commits the result.
func (p *Planner) Dispatch(ctx context.Context, cmds ...plan.Command) plan.State {
	return p.apply(ctx, commitAuto, cmds...)
}

type commitMode int

const (
	commitAuto commitMode = iota
	// commitPlans also writes the saved plan archive when auto-save is off.
	commitPlans
)

func (p *Planner) apply(ctx context.Context, mode commitMode, cmds ...plan.Command) plan.State {
	_, next, _ := p.applyWith(ctx, mode, func(plan.State) ([]plan.Command, error) {
		return cmds, nil
	})
	return next
}

// applyWith builds the commands from the current state and applies them in
// the same hold of p.mu. When build fails nothing is applied or published.
func (p *Planner) applyWith(ctx context.Context, mode commitMode, build func(prev plan.State) ([]plan.Command, error)) (prev, next plan.State, err error) {
	p.mu.Lock()
	if !p.hydrated {
		p.mu.Unlock()
		panic(ErrNotHydrated)
	}
	prev = p.state
	cmds, err := build(prev)
	if err != nil {
		p.mu.Unlock()
		return prev, prev, err
	}
	next = plan.ReduceAll(prev, cmds...)
	p.state = next
	p.commit(ctx, mode, prev, next)
	p.mu.Unlock()

	p.publish(Event{Kind: EventCommitted, State: next, Commands: cmds})
	if prev.Theme != next.Theme {
		p.publish(Event{Kind: EventThemeChanged, State: next})
	}
	return prev, next, nil
}

// commit runs with p.mu held so writes land in command order.
func (p *Planner) commit(ctx context.Context, mode commitMode, prev, next plan.State) {
	if next.AutoSave {
		if err := p.persistence.Commit(ctx, next); err != nil {
			p.log.Error("saving state", zap.Error(err))
		}
		return
	}
	if prev.AutoSave {
		if err := p.persistence.CommitAutoSave(ctx, false); err != nil {
			p.log.Error("saving auto-save flag", zap.Error(err))
		}
	}
	if mode == commitPlans {
		if err := p.persistence.CommitPlans(ctx, next.SavedPlans); err != nil {
			p.log.Error("saving plans", zap.Error(err))
		}
	}
}
