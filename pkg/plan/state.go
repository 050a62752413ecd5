package plan

import (
	"errors"
	"fmt"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/theme"
)

// ScheduledActivity places an activity into a slot of the grid.
type ScheduledActivity struct {
	Activity activity.Activity `json:"activity"`
	Day      Day               `json:"day"`
	TimeSlot TimeSlot          `json:"timeSlot"`
}

// Slot is the cell the activity occupies.
func (s ScheduledActivity) Slot() Slot {
	return Slot{Day: s.Day, Time: s.TimeSlot}
}

// SavedPlan is a frozen, named snapshot of the planning state.
type SavedPlan struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Date        Timestamp           `json:"date"`
	Theme       theme.ID            `json:"theme"`
	LongWeekend LongWeekend         `json:"longWeekend"`
	Scheduled   []ScheduledActivity `json:"scheduledActivities"`
	Selected    []activity.Activity `json:"selectedActivities"`
	Vibes       map[int]Vibe        `json:"activityVibes,omitempty"`
}

// State is one immutable snapshot of the planner. Reduce never mutates a
// State it is given; slices and maps are copied before they change.
type State struct {
	Selected    []activity.Activity `json:"selectedActivities"`
	Scheduled   []ScheduledActivity `json:"scheduledActivities"`
	Vibes       map[int]Vibe        `json:"activityVibes"`
	Theme       theme.ID            `json:"theme"`
	UserName    string              `json:"userName"`
	LongWeekend LongWeekend         `json:"longWeekend"`
	AutoSave    bool                `json:"autoSave"`
	SavedPlans  []SavedPlan         `json:"savedPlans"`
}

// Initial is the state of a fresh session before hydration.
func Initial() State {
	return State{
		Selected:    []activity.Activity{},
		Scheduled:   []ScheduledActivity{},
		Vibes:       map[int]Vibe{},
		Theme:       theme.Default,
		LongWeekend: LongWeekendNone,
		AutoSave:    true,
		SavedPlans:  []SavedPlan{},
	}
}

// Selection returns the selected activity with id.
func (s State) Selection(id int) (activity.Activity, bool) {
	for _, a := range s.Selected {
		if a.ID == id {
			return a, true
		}
	}
	return activity.Activity{}, false
}

// IsSelected reports whether id is in the selection set.
func (s State) IsSelected(id int) bool {
	_, ok := s.Selection(id)
	return ok
}

// Occupant returns the scheduled activity in slot.
func (s State) Occupant(slot Slot) (ScheduledActivity, bool) {
	for _, sa := range s.Scheduled {
		if sa.Slot() == slot {
			return sa, true
		}
	}
	return ScheduledActivity{}, false
}

// SlotOf returns the slot activity id is scheduled in.
func (s State) SlotOf(id int) (Slot, bool) {
	for _, sa := range s.Scheduled {
		if sa.Activity.ID == id {
			return sa.Slot(), true
		}
	}
	return Slot{}, false
}

// CountOn is the number of activities scheduled on day.
func (s State) CountOn(day Day) int {
	n := 0
	for _, sa := range s.Scheduled {
		if sa.Day == day {
			n++
		}
	}
	return n
}

// Unscheduled returns the selected activities that have no slot.
func (s State) Unscheduled() []activity.Activity {
	out := make([]activity.Activity, 0, len(s.Selected))
	for _, a := range s.Selected {
		if _, ok := s.SlotOf(a.ID); !ok {
			out = append(out, a)
		}
	}
	return out
}

// Vibe returns the annotation for id, or VibeNone.
func (s State) Vibe(id int) Vibe {
	return s.Vibes[id]
}

// SavedPlan finds an archived plan by id.
func (s State) SavedPlan(id string) (SavedPlan, bool) {
	for _, p := range s.SavedPlans {
		if p.ID == id {
			return p, true
		}
	}
	return SavedPlan{}, false
}

var (
	ErrDuplicateActivity = errors.New("plan: activity scheduled more than once")
	ErrDuplicateSlot     = errors.New("plan: slot occupied more than once")
)

// Validate checks the grid invariants: every activity id and every slot
// appears in at most one scheduled entry.
func (s State) Validate() error {
	return validateSchedule(s.Scheduled)
}

func validateSchedule(scheduled []ScheduledActivity) error {
	ids := make(map[int]struct{}, len(scheduled))
	slots := make(map[Slot]struct{}, len(scheduled))
	for _, sa := range scheduled {
		if _, dup := ids[sa.Activity.ID]; dup {
			return fmt.Errorf("%w: #%d", ErrDuplicateActivity, sa.Activity.ID)
		}
		ids[sa.Activity.ID] = struct{}{}
		if _, dup := slots[sa.Slot()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateSlot, sa.Slot())
		}
		slots[sa.Slot()] = struct{}{}
	}
	return nil
}
