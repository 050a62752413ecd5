package plan

import (
	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/theme"
)

// Command is a discrete change request. The set is closed: only the types in
// this package implement it.
type Command interface {
	apply(State) State
}

// AddActivity appends an activity to the selection, or field-merges it onto
// the entry that already has its id.
type AddActivity struct {
	Activity activity.Activity
}

// SetOverrides replaces the name, location and link of activity Base.ID
// with Overrides laid over Base. Fields left empty in Overrides reset to
// Base rather than keeping the previous value. The activity is selected if it
// was not already, and a scheduled copy is refreshed in place.
type SetOverrides struct {
	Base      activity.Activity
	Overrides activity.Overrides
}

// RemoveActivity drops an activity from the selection together with its
// scheduled entry and vibe.
type RemoveActivity struct {
	ID int
}

// ClearSelection removes every selected activity, cascading like RemoveActivity.
type ClearSelection struct{}

// ScheduleActivity replaces any existing entry for the activity with one at
// Slot. It does not look at who else occupies Slot.
type ScheduleActivity struct {
	Activity activity.Activity
	Slot     Slot
}

// MoveActivity places an activity into Slot in one transition. An occupant
// other than the activity takes over the activity's previous slot, or is
// unscheduled when there was none.
type MoveActivity struct {
	Activity activity.Activity
	Slot     Slot
}

// RemoveFromSchedule unschedules an activity. Idempotent.
type RemoveFromSchedule struct {
	ID int
}

// ClearSchedule empties the grid and leaves the selection alone.
type ClearSchedule struct{}

// SetActivityVibe sets the vibe for ID; VibeNone deletes it.
type SetActivityVibe struct {
	ID   int
	Vibe Vibe
}

// SetSelectedActivities replaces the selection set.
type SetSelectedActivities struct {
	Activities []activity.Activity
}

// SetScheduledActivities replaces the grid.
type SetScheduledActivities struct {
	Scheduled []ScheduledActivity
}

// SetActivityVibes replaces every vibe annotation.
type SetActivityVibes struct {
	Vibes map[int]Vibe
}

// SetTheme selects a theme preset.
type SetTheme struct {
	Theme theme.ID
}

// SetUserName sets the display name.
type SetUserName struct {
	Name string
}

// SetLongWeekend selects which extra days the grid shows.
type SetLongWeekend struct {
	Option LongWeekend
}

// SetAutoSave toggles write-back after each command.
type SetAutoSave struct {
	Enabled bool
}

// AddSavedPlan archives a snapshot.
type AddSavedPlan struct {
	Plan SavedPlan
}

// RemoveSavedPlan deletes an archived snapshot.
type RemoveSavedPlan struct {
	ID string
}

// SetSavedPlans replaces the archive.
type SetSavedPlans struct {
	Plans []SavedPlan
}

// LoadSavedPlan replaces the selection, grid, theme and long weekend option
// with the plan's. Vibes are replaced only when the plan carries some.
type LoadSavedPlan struct {
	Plan SavedPlan
}
