package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
)

// Keys of the persisted records.
const (
	KeyTheme       = "weekend-theme"
	KeyUserName    = "weekend-username"
	KeySelected    = "weekend-selected-activity-ids"
	KeyScheduled   = "weekend-scheduled-activities"
	KeyLongWeekend = "weekend-long-weekend"
	KeyAutoSave    = "weekend-auto-save"
	KeySavedPlans  = "weekend-saved-plans"
	KeyVibes       = "weekend-activity-vibes"
	KeyMigrated    = "weekend-migrated"
)

// Persistence mirrors the planner into durable storage.
type Persistence interface {
	// Hydrate reads and reconstructs everything that was stored.
	Hydrate(ctx context.Context) (Snapshot, error)
	// Commit writes the whole state.
	Commit(ctx context.Context, s plan.State) error
	// CommitPlans writes only the saved plan archive.
	CommitPlans(ctx context.Context, plans []plan.SavedPlan) error
	// CommitAutoSave writes only the auto-save flag.
	CommitAutoSave(ctx context.Context, enabled bool) error
}

// Snapshot is the reconstructed content of the store.
type Snapshot struct {
	Theme       theme.ID
	UserName    string
	Selected    []activity.Activity
	Scheduled   []plan.ScheduledActivity
	LongWeekend plan.LongWeekend
	AutoSave    bool
	Plans       []plan.SavedPlan
	Vibes       map[int]plan.Vibe
}

// Commands returns the bulk replacements that seed a planner with s.
func (s Snapshot) Commands() []plan.Command {
	return []plan.Command{
		plan.SetTheme{Theme: s.Theme},
		plan.SetUserName{Name: s.UserName},
		plan.SetSelectedActivities{Activities: s.Selected},
		plan.SetScheduledActivities{Scheduled: s.Scheduled},
		plan.SetLongWeekend{Option: s.LongWeekend},
		plan.SetAutoSave{Enabled: s.AutoSave},
		plan.SetSavedPlans{Plans: s.Plans},
		plan.SetActivityVibes{Vibes: s.Vibes},
	}
}

// Store is the Persistence over a KV.
type Store struct {
	kv      KV
	catalog *activity.Catalog
	log     *zap.Logger
}

var _ Persistence = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for reconstruction warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCatalog resolves references against c instead of the built-in catalog.
func WithCatalog(c *activity.Catalog) Option {
	return func(s *Store) {
		if c != nil {
			s.catalog = c
		}
	}
}

// New wraps kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, catalog: activity.Default(), log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load opens the diskv-backed store described by cfg, reading the config
// from disk and env when cfg is nil.
func Load(cfg Config, opts ...Option) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if cfg.BasePath() == "" {
		return nil, errors.New("store: base path unknown")
	}
	return New(NewDiskKV(cfg.BasePath()), opts...), nil
}

// KV exposes the underlying key-value store.
func (s *Store) KV() KV {
	return s.kv
}

// Catalog is the catalog references are resolved against.
func (s *Store) Catalog() *activity.Catalog {
	return s.catalog
}

// Hydrate reconstructs the stored state. Missing or malformed records fall
// back to their defaults. On the first hydration of a store the saved plans
// are rewritten in compact form and the migration marker is set.
func (s *Store) Hydrate(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{
		Theme:       theme.Default,
		LongWeekend: plan.LongWeekendNone,
		AutoSave:    true,
		Selected:    []activity.Activity{},
		Scheduled:   []plan.ScheduledActivity{},
		Plans:       []plan.SavedPlan{},
		Vibes:       map[int]plan.Vibe{},
	}

	var themeID string
	if s.readJSON(KeyTheme, &themeID) {
		if id, err := theme.Parse(themeID); err == nil {
			snap.Theme = id
		} else {
			s.log.Warn("ignoring stored theme", zap.String("theme", themeID))
		}
	}
	s.readJSON(KeyUserName, &snap.UserName)

	var selected []json.RawMessage
	if s.readJSON(KeySelected, &selected) {
		snap.Selected = s.resolveRefs(selected, "selection")
	}

	var scheduled []json.RawMessage
	if s.readJSON(KeyScheduled, &scheduled) {
		snap.Scheduled = s.resolveScheduled(scheduled, "schedule")
	}

	var lw json.RawMessage
	if s.readJSON(KeyLongWeekend, &lw) {
		if opt, ok := decodeLongWeekend(lw); ok {
			snap.LongWeekend = opt
		}
	}

	var autoSave bool
	if s.readJSON(KeyAutoSave, &autoSave) {
		snap.AutoSave = autoSave
	}

	var plans []json.RawMessage
	if s.readJSON(KeySavedPlans, &plans) {
		snap.Plans = s.resolvePlans(plans)
	}

	var vibes json.RawMessage
	if s.readJSON(KeyVibes, &vibes) {
		snap.Vibes = s.resolveVibes(vibes)
	}

	if err := s.migrate(ctx, len(plans) > 0, snap.Plans); err != nil {
		return snap, err
	}
	return snap, nil
}

// Migrated reports whether the one-time migration marker is set.
func (s *Store) Migrated() bool {
	var done bool
	return s.readJSON(KeyMigrated, &done) && done
}

func (s *Store) migrate(ctx context.Context, hadPlans bool, plans []plan.SavedPlan) error {
	if s.Migrated() {
		return nil
	}
	if hadPlans {
		if err := s.CommitPlans(ctx, plans); err != nil {
			return fmt.Errorf("store: migrate saved plans: %w", err)
		}
		s.log.Info("migrated saved plans to compact references", zap.Int("plans", len(plans)))
	}
	return s.writeJSON(KeyMigrated, true)
}

// Commit writes every record of s.
func (s *Store) Commit(ctx context.Context, st plan.State) error {
	var errs []error
	write := func(key string, v interface{}) {
		if err := s.writeJSON(key, v); err != nil {
			errs = append(errs, err)
		}
	}
	write(KeyTheme, string(st.Theme))
	write(KeyUserName, st.UserName)
	write(KeySelected, encodeRefs(s.catalog, st.Selected))
	write(KeyScheduled, encodeScheduled(s.catalog, st.Scheduled))
	write(KeyLongWeekend, string(st.LongWeekend))
	write(KeyAutoSave, st.AutoSave)
	write(KeyVibes, encodeVibes(st.Vibes))
	if err := s.CommitPlans(ctx, st.SavedPlans); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CommitPlans writes the saved plan archive.
func (s *Store) CommitPlans(_ context.Context, plans []plan.SavedPlan) error {
	recs, err := encodePlans(s.catalog, plans)
	if err != nil {
		return fmt.Errorf("store: encode saved plans: %w", err)
	}
	return s.writeJSON(KeySavedPlans, recs)
}

// CommitAutoSave writes the auto-save flag.
func (s *Store) CommitAutoSave(_ context.Context, enabled bool) error {
	return s.writeJSON(KeyAutoSave, enabled)
}

// readJSON decodes key into v. It reports false, leaving v untouched, when
// the record is missing or malformed.
func (s *Store) readJSON(key string, v interface{}) bool {
	data, err := s.kv.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("reading stored record", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("ignoring malformed record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) writeJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.kv.Write(key, data)
}

func (s *Store) resolveRef(raw json.RawMessage, where string) (activity.Activity, bool) {
	var w wireRef
	if err := json.Unmarshal(raw, &w); err != nil {
		s.log.Warn("dropping malformed activity reference", zap.String("in", where), zap.Error(err))
		return activity.Activity{}, false
	}
	a, degraded, ok := w.Resolve(s.catalog)
	if !ok {
		s.log.Warn("dropping unknown activity", zap.String("in", where), zap.Int("id", w.ID))
		return activity.Activity{}, false
	}
	if degraded {
		s.log.Warn("activity missing from catalog, using stored fields", zap.String("in", where), zap.Int("id", a.ID))
	}
	return a, true
}

func (s *Store) resolveRefs(raws []json.RawMessage, where string) []activity.Activity {
	out := make([]activity.Activity, 0, len(raws))
	seen := make(map[int]int, len(raws))
	for _, raw := range raws {
		a, ok := s.resolveRef(raw, where)
		if !ok {
			continue
		}
		if i, dup := seen[a.ID]; dup {
			s.log.Warn("merging duplicate activity", zap.String("in", where), zap.Int("id", a.ID))
			out[i] = out[i].Merge(a)
			continue
		}
		seen[a.ID] = len(out)
		out = append(out, a)
	}
	return out
}

func (s *Store) resolveScheduled(raws []json.RawMessage, where string) []plan.ScheduledActivity {
	out := make([]plan.ScheduledActivity, 0, len(raws))
	for _, raw := range raws {
		var rec struct {
			Activity json.RawMessage `json:"activity"`
			Day      string          `json:"day"`
			TimeSlot string          `json:"timeSlot"`
		}
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.log.Warn("dropping malformed scheduled entry", zap.String("in", where), zap.Error(err))
			continue
		}
		slot := plan.Slot{Day: plan.Day(rec.Day), Time: plan.TimeSlot(rec.TimeSlot)}
		if !slot.Valid() {
			s.log.Warn("dropping scheduled entry with unknown slot", zap.String("in", where),
				zap.String("day", rec.Day), zap.String("timeSlot", rec.TimeSlot))
			continue
		}
		if isNull(rec.Activity) {
			s.log.Warn("dropping scheduled entry without activity", zap.String("in", where))
			continue
		}
		a, ok := s.resolveRef(rec.Activity, where)
		if !ok {
			continue
		}
		out = append(out, plan.ScheduledActivity{Activity: a, Day: slot.Day, TimeSlot: slot.Time})
	}
	kept, dropped := plan.DedupeSchedule(out)
	for _, sa := range dropped {
		s.log.Warn("dropping conflicting scheduled entry", zap.String("in", where),
			zap.Int("id", sa.Activity.ID), zap.Stringer("slot", sa.Slot()))
	}
	return kept
}

func (s *Store) resolveVibes(raw json.RawMessage) map[int]plan.Vibe {
	out := map[int]plan.Vibe{}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		s.log.Warn("ignoring malformed vibes", zap.Error(err))
		return out
	}
	for k, v := range m {
		id, err := strconv.Atoi(k)
		vibe := plan.Vibe(v)
		if err != nil || id == 0 || !vibe.Valid() {
			s.log.Warn("dropping vibe", zap.String("id", k), zap.String("vibe", v))
			continue
		}
		out[id] = vibe
	}
	return out
}

func (s *Store) resolvePlans(raws []json.RawMessage) []plan.SavedPlan {
	out := make([]plan.SavedPlan, 0, len(raws))
	seen := make(map[string]int, len(raws))
	for _, raw := range raws {
		var rec planRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.log.Warn("dropping malformed saved plan", zap.Error(err))
			continue
		}
		if rec.ID == "" {
			s.log.Warn("dropping saved plan without id", zap.String("name", rec.Name))
			continue
		}
		where := "plan " + string(rec.ID)
		p := plan.SavedPlan{
			ID:        string(rec.ID),
			Name:      rec.Name,
			Theme:     theme.Default,
			Selected:  s.resolveRefs(rec.Selected, where),
			Scheduled: s.resolveScheduled(rec.Scheduled, where),
		}
		if !isNull(rec.Date) {
			if err := json.Unmarshal(rec.Date, &p.Date); err != nil {
				s.log.Warn("ignoring saved plan date", zap.String("plan", p.ID), zap.Error(err))
			}
		}
		if id, err := theme.Parse(rec.Theme); err == nil {
			p.Theme = id
		}
		p.LongWeekend, _ = decodeLongWeekend(rec.LongWeekend)
		if !isNull(rec.Vibes) {
			p.Vibes = s.resolveVibes(rec.Vibes)
		}
		if i, dup := seen[p.ID]; dup {
			s.log.Warn("replacing saved plan with duplicate id", zap.String("plan", p.ID))
			out[i] = p
			continue
		}
		seen[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
