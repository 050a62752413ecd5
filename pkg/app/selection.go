package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
)

// Browse filters the catalog and marks the activities the current theme
// recommends.
func (p *Planner) Browse(query string, category activity.Category) []Listing {
	st := p.State()
	t := theme.Get(st.Theme)
	items := p.catalog.Filter(query, category)
	out := make([]Listing, 0, len(items))
	for _, a := range items {
		out = append(out, Listing{
			Activity:    a,
			Recommended: t.Recommended(a),
			Selected:    st.IsSelected(a.ID),
		})
	}
	return out
}

// Listing is a catalog entry as the browse surface shows it.
type Listing struct {
	Activity    activity.Activity `json:"activity"`
	Recommended bool              `json:"recommended"`
	Selected    bool              `json:"selected"`
}

// Lookup finds an activity by id, preferring the selected copy over the
// catalog entry.
func (p *Planner) Lookup(id int) (activity.Activity, error) {
	if a, ok := p.State().Selection(id); ok {
		return a, nil
	}
	if a, ok := p.catalog.Lookup(id); ok {
		return a, nil
	}
	return activity.Activity{}, fmt.Errorf("%w: #%d", ErrUnknownActivity, id)
}

// Add selects the catalog activity id.
func (p *Planner) Add(ctx context.Context, id int) (activity.Activity, error) {
	a, ok := p.catalog.Lookup(id)
	if !ok {
		return activity.Activity{}, fmt.Errorf("%w: #%d", ErrUnknownActivity, id)
	}
	st := p.Dispatch(ctx, plan.AddActivity{Activity: a})
	got, _ := st.Selection(id)
	return got, nil
}

// AttachPlace binds activity id to a real-world place, replacing any place
// attached before. The activity is selected if it was not already.
func (p *Planner) AttachPlace(ctx context.Context, id int, place, address, link string) (activity.Activity, error) {
	base, err := p.Lookup(id)
	if err != nil {
		return activity.Activity{}, err
	}
	if a, ok := p.catalog.Lookup(id); ok {
		base = a
	}
	placed := base.WithPlace(place, address, link)
	st := p.Dispatch(ctx, plan.SetOverrides{Base: base, Overrides: activity.Diff(base, placed)})
	got, _ := st.Selection(id)
	return got, nil
}

// CustomActivity describes a user-created activity.
type CustomActivity struct {
	Name     string
	Category activity.Category
	Duration string
	Location string
	Mood     string
}

// AddCustom mints and selects a custom activity.
func (p *Planner) AddCustom(ctx context.Context, in CustomActivity) (activity.Activity, error) {
	if strings.TrimSpace(in.Name) == "" {
		return activity.Activity{}, errors.New("app: custom activity name required")
	}
	category := in.Category
	if category == "" || category == activity.CategoryAll {
		category = activity.CategoryOutdoor
	}
	now := p.now()
	a := activity.NewCustom(now, in.Name, category, in.Duration, in.Location, in.Mood)
	for p.catalog.Contains(a.ID) || p.State().IsSelected(a.ID) {
		a.ID++
	}
	p.Dispatch(ctx, plan.AddActivity{Activity: a})
	return a, nil
}

// AddRecommended selects every catalog activity the current theme suggests
// that is not selected yet, and returns how many were added.
func (p *Planner) AddRecommended(ctx context.Context) int {
	st := p.State()
	t := theme.Get(st.Theme)
	cmds := make([]plan.Command, 0)
	for _, a := range p.catalog.Matching(t.SuggestedMoods) {
		if !st.IsSelected(a.ID) {
			cmds = append(cmds, plan.AddActivity{Activity: a})
		}
	}
	if len(cmds) > 0 {
		p.Dispatch(ctx, cmds...)
	}
	return len(cmds)
}

// Remove drops activity id with its slot and vibe.
func (p *Planner) Remove(ctx context.Context, id int) error {
	if !p.State().IsSelected(id) {
		return fmt.Errorf("%w: #%d", ErrNotSelected, id)
	}
	p.Dispatch(ctx, plan.RemoveActivity{ID: id})
	return nil
}

// ClearAll removes every selected activity.
func (p *Planner) ClearAll(ctx context.Context) {
	p.Dispatch(ctx, plan.ClearSelection{})
}

// SetVibe annotates a selected activity. VibeNone clears it.
func (p *Planner) SetVibe(ctx context.Context, id int, v plan.Vibe) error {
	if !p.State().IsSelected(id) {
		return fmt.Errorf("%w: #%d", ErrNotSelected, id)
	}
	p.Dispatch(ctx, plan.SetActivityVibe{ID: id, Vibe: v})
	return nil
}

// SetTheme selects a theme preset.
func (p *Planner) SetTheme(ctx context.Context, id theme.ID) error {
	if _, ok := theme.Lookup(id); !ok {
		return fmt.Errorf("app: unknown theme %q", id)
	}
	p.Dispatch(ctx, plan.SetTheme{Theme: id})
	return nil
}

// Settings are the personalisation values.
type Settings struct {
	UserName    *string
	LongWeekend *plan.LongWeekend
	AutoSave    *bool
}

// UpdateSettings applies the non-nil settings as one change.
func (p *Planner) UpdateSettings(ctx context.Context, s Settings) plan.State {
	cmds := make([]plan.Command, 0, 3)
	if s.UserName != nil {
		cmds = append(cmds, plan.SetUserName{Name: strings.TrimSpace(*s.UserName)})
	}
	if s.LongWeekend != nil {
		cmds = append(cmds, plan.SetLongWeekend{Option: *s.LongWeekend})
	}
	if s.AutoSave != nil {
		cmds = append(cmds, plan.SetAutoSave{Enabled: *s.AutoSave})
	}
	if len(cmds) == 0 {
		return p.State()
	}
	return p.Dispatch(ctx, cmds...)
}
