// Package mcp provides the Model Context Protocol server integration for weekend.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
)

// Service adapts the planner to the shapes exchanged over MCP.
type Service struct {
	Planner *app.Planner
}

var errNoPlanner = errors.New("planner is not configured")

// SlotDTO is one occupied cell of the grid.
type SlotDTO struct {
	Day        plan.Day      `json:"day"`
	TimeSlot   plan.TimeSlot `json:"timeSlot"`
	ActivityID int           `json:"activityId"`
	Name       string        `json:"name"`
	Location   string        `json:"location,omitempty"`
	Link       string        `json:"externalLinkUrl,omitempty"`
	Vibe       plan.Vibe     `json:"vibe,omitempty"`
}

// WeekendDTO is the live plan as a client sees it.
type WeekendDTO struct {
	Theme       theme.Theme         `json:"theme"`
	UserName    string              `json:"userName,omitempty"`
	LongWeekend plan.LongWeekend    `json:"longWeekend"`
	Days        []plan.Day          `json:"days"`
	AutoSave    bool                `json:"autoSave"`
	Grid        []SlotDTO           `json:"grid"`
	Unscheduled []activity.Activity `json:"unscheduled"`
	Vibes       map[string]string   `json:"vibes"`
}

// PlanSummary describes a saved plan without its contents.
type PlanSummary struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Date        string           `json:"date"`
	Theme       theme.ID         `json:"theme"`
	LongWeekend plan.LongWeekend `json:"longWeekend"`
	Selected    int              `json:"selectedCount"`
	Scheduled   int              `json:"scheduledCount"`
}

// NewService wraps p.
func NewService(p *app.Planner) *Service {
	return &Service{Planner: p}
}

// Catalog filters the catalog by a name query and category name.
func (s *Service) Catalog(query, category string) ([]app.Listing, error) {
	if s.Planner == nil {
		return nil, errNoPlanner
	}
	c, err := activity.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.Planner.Browse(query, c), nil
}

// Weekend projects the live state.
func (s *Service) Weekend() (*WeekendDTO, error) {
	if s.Planner == nil {
		return nil, errNoPlanner
	}
	st := s.Planner.State()

	grid := make([]SlotDTO, 0, len(st.Scheduled))
	for _, d := range plan.AllDays() {
		for _, ts := range plan.TimeSlots() {
			occ, ok := st.Occupant(plan.Slot{Day: d, Time: ts})
			if !ok {
				continue
			}
			grid = append(grid, SlotDTO{
				Day:        d,
				TimeSlot:   ts,
				ActivityID: occ.Activity.ID,
				Name:       occ.Activity.Name,
				Location:   occ.Activity.Location,
				Link:       occ.Activity.LinkURL,
				Vibe:       st.Vibe(occ.Activity.ID),
			})
		}
	}

	vibes := make(map[string]string, len(st.Vibes))
	for id, v := range st.Vibes {
		vibes[strconv.Itoa(id)] = string(v)
	}

	return &WeekendDTO{
		Theme:       theme.Get(st.Theme),
		UserName:    st.UserName,
		LongWeekend: st.LongWeekend,
		Days:        st.LongWeekend.Days(),
		AutoSave:    st.AutoSave,
		Grid:        grid,
		Unscheduled: st.Unscheduled(),
		Vibes:       vibes,
	}, nil
}

// SelectOptions describes an activity to add to the selection.
type SelectOptions struct {
	ID      int
	Place   string
	Address string
	Link    string
}

// Select adds a catalog activity, bound to a place when one is given.
func (s *Service) Select(ctx context.Context, opts SelectOptions) (activity.Activity, error) {
	if s.Planner == nil {
		return activity.Activity{}, errNoPlanner
	}
	if opts.Place != "" || opts.Address != "" || opts.Link != "" {
		return s.Planner.AttachPlace(ctx, opts.ID, opts.Place, opts.Address, opts.Link)
	}
	return s.Planner.Add(ctx, opts.ID)
}

// AddCustom creates and selects a custom activity.
func (s *Service) AddCustom(ctx context.Context, name, category, duration, location, mood string) (activity.Activity, error) {
	if s.Planner == nil {
		return activity.Activity{}, errNoPlanner
	}
	c, err := activity.ParseCategory(category)
	if err != nil {
		return activity.Activity{}, err
	}
	return s.Planner.AddCustom(ctx, app.CustomActivity{
		Name:     name,
		Category: c,
		Duration: duration,
		Location: location,
		Mood:     mood,
	})
}

// Deselect removes an activity and everything attached to it.
func (s *Service) Deselect(ctx context.Context, id int) error {
	if s.Planner == nil {
		return errNoPlanner
	}
	return s.Planner.Remove(ctx, id)
}

// Schedule parses day and time and places activity id there.
func (s *Service) Schedule(ctx context.Context, id int, day, timeSlot string) (app.Placement, error) {
	if s.Planner == nil {
		return app.Placement{}, errNoPlanner
	}
	slot, err := plan.ParseSlot(day, timeSlot)
	if err != nil {
		return app.Placement{}, err
	}
	return s.Planner.Schedule(ctx, id, slot)
}

// Unschedule takes activity id off the grid.
func (s *Service) Unschedule(ctx context.Context, id int) error {
	if s.Planner == nil {
		return errNoPlanner
	}
	return s.Planner.Unschedule(ctx, id)
}

// SetVibe annotates activity id; "none" clears the vibe.
func (s *Service) SetVibe(ctx context.Context, id int, vibe string) error {
	if s.Planner == nil {
		return errNoPlanner
	}
	v, err := plan.ParseVibe(vibe)
	if err != nil {
		return err
	}
	return s.Planner.SetVibe(ctx, id, v)
}

// SetTheme switches the theme preset.
func (s *Service) SetTheme(ctx context.Context, id string) (theme.Theme, error) {
	if s.Planner == nil {
		return theme.Theme{}, errNoPlanner
	}
	tid, err := theme.Parse(id)
	if err != nil {
		return theme.Theme{}, err
	}
	if err := s.Planner.SetTheme(ctx, tid); err != nil {
		return theme.Theme{}, err
	}
	return s.Planner.Theme(), nil
}

// AddRecommended selects the current theme's picks.
func (s *Service) AddRecommended(ctx context.Context) (int, error) {
	if s.Planner == nil {
		return 0, errNoPlanner
	}
	return s.Planner.AddRecommended(ctx), nil
}

// ListPlans summarises the archive, newest first.
func (s *Service) ListPlans() ([]PlanSummary, error) {
	if s.Planner == nil {
		return nil, errNoPlanner
	}
	plans := s.Planner.Plans()
	out := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		out = append(out, summarise(p))
	}
	return out, nil
}

// Plan returns saved plan id in full.
func (s *Service) Plan(id string) (plan.SavedPlan, error) {
	if s.Planner == nil {
		return plan.SavedPlan{}, errNoPlanner
	}
	p, ok := s.Planner.State().SavedPlan(id)
	if !ok {
		return plan.SavedPlan{}, fmt.Errorf("%w: %s", app.ErrPlanNotFound, id)
	}
	return p, nil
}

// SavePlan archives the live plan.
func (s *Service) SavePlan(ctx context.Context, name string) (PlanSummary, error) {
	if s.Planner == nil {
		return PlanSummary{}, errNoPlanner
	}
	p, err := s.Planner.SavePlan(ctx, name)
	if err != nil {
		return PlanSummary{}, err
	}
	return summarise(p), nil
}

// LoadPlan replaces the live plan with saved plan id.
func (s *Service) LoadPlan(ctx context.Context, id string) (*WeekendDTO, error) {
	if s.Planner == nil {
		return nil, errNoPlanner
	}
	if _, err := s.Planner.LoadPlan(ctx, id); err != nil {
		return nil, err
	}
	return s.Weekend()
}

// DeletePlan removes saved plan id.
func (s *Service) DeletePlan(ctx context.Context, id string) error {
	if s.Planner == nil {
		return errNoPlanner
	}
	return s.Planner.DeletePlan(ctx, id)
}

func summarise(p plan.SavedPlan) PlanSummary {
	return PlanSummary{
		ID:          p.ID,
		Name:        p.Name,
		Date:        p.Date.String(),
		Theme:       p.Theme,
		LongWeekend: p.LongWeekend,
		Selected:    len(p.Selected),
		Scheduled:   len(p.Scheduled),
	}
}
