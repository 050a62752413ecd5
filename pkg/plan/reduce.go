package plan

import (
	"tableflip.dev/weekend/pkg/activity"
)

// Reduce applies c to s and returns the next state. It is total: commands
// that refer to unknown ids leave the state unchanged. A nil command is a
// no-op.
func Reduce(s State, c Command) State {
	if c == nil {
		return s
	}
	return c.apply(s)
}

// ReduceAll folds cmds over s in order.
func ReduceAll(s State, cmds ...Command) State {
	for _, c := range cmds {
		s = Reduce(s, c)
	}
	return s
}

func (c AddActivity) apply(s State) State {
	for i, a := range s.Selected {
		if a.ID != c.Activity.ID {
			continue
		}
		sel := cloneActivities(s.Selected)
		sel[i] = a.Merge(c.Activity)
		s.Selected = sel
		return s
	}
	s.Selected = append(cloneActivities(s.Selected), c.Activity)
	return s
}

func (c SetOverrides) apply(s State) State {
	next := c.Overrides.Apply(c.Base)
	sel := cloneActivities(s.Selected)
	found := false
	for i, a := range sel {
		if a.ID == next.ID {
			sel[i] = next
			found = true
			break
		}
	}
	if !found {
		sel = append(sel, next)
	}
	s.Selected = sel

	for i, sa := range s.Scheduled {
		if sa.Activity.ID != next.ID {
			continue
		}
		sched := cloneScheduled(s.Scheduled)
		sched[i].Activity = next
		s.Scheduled = sched
		break
	}
	return s
}

func (c RemoveActivity) apply(s State) State {
	s.Selected = filterActivities(s.Selected, func(a activity.Activity) bool { return a.ID != c.ID })
	s.Scheduled = withoutActivity(s.Scheduled, c.ID)
	if _, ok := s.Vibes[c.ID]; ok {
		v := cloneVibes(s.Vibes)
		delete(v, c.ID)
		s.Vibes = v
	}
	return s
}

func (ClearSelection) apply(s State) State {
	s.Selected = []activity.Activity{}
	s.Scheduled = []ScheduledActivity{}
	s.Vibes = map[int]Vibe{}
	return s
}

func (c ScheduleActivity) apply(s State) State {
	next := withoutActivity(s.Scheduled, c.Activity.ID)
	s.Scheduled = append(next, ScheduledActivity{Activity: c.Activity, Day: c.Slot.Day, TimeSlot: c.Slot.Time})
	return s
}

func (c MoveActivity) apply(s State) State {
	var from *Slot
	if old, ok := s.SlotOf(c.Activity.ID); ok {
		from = &old
	}
	occupant, occupied := s.Occupant(c.Slot)
	if occupied && occupant.Activity.ID == c.Activity.ID {
		occupied = false
	}

	next := withoutActivity(s.Scheduled, c.Activity.ID)
	if occupied {
		next = withoutActivity(next, occupant.Activity.ID)
		if from != nil {
			next = append(next, ScheduledActivity{Activity: occupant.Activity, Day: from.Day, TimeSlot: from.Time})
		}
	}
	s.Scheduled = append(next, ScheduledActivity{Activity: c.Activity, Day: c.Slot.Day, TimeSlot: c.Slot.Time})
	return s
}

func (c RemoveFromSchedule) apply(s State) State {
	s.Scheduled = withoutActivity(s.Scheduled, c.ID)
	return s
}

func (ClearSchedule) apply(s State) State {
	s.Scheduled = []ScheduledActivity{}
	return s
}

func (c SetActivityVibe) apply(s State) State {
	v := cloneVibes(s.Vibes)
	if c.Vibe == VibeNone {
		delete(v, c.ID)
	} else {
		v[c.ID] = c.Vibe
	}
	s.Vibes = v
	return s
}

func (c SetSelectedActivities) apply(s State) State {
	s.Selected = cloneActivities(c.Activities)
	return s
}

func (c SetScheduledActivities) apply(s State) State {
	s.Scheduled = cloneScheduled(c.Scheduled)
	return s
}

func (c SetActivityVibes) apply(s State) State {
	s.Vibes = cloneVibes(c.Vibes)
	return s
}

func (c SetTheme) apply(s State) State {
	s.Theme = c.Theme
	return s
}

func (c SetUserName) apply(s State) State {
	s.UserName = c.Name
	return s
}

func (c SetLongWeekend) apply(s State) State {
	s.LongWeekend = c.Option
	return s
}

func (c SetAutoSave) apply(s State) State {
	s.AutoSave = c.Enabled
	return s
}

func (c AddSavedPlan) apply(s State) State {
	plans := make([]SavedPlan, 0, len(s.SavedPlans)+1)
	for _, p := range s.SavedPlans {
		if p.ID != c.Plan.ID {
			plans = append(plans, p)
		}
	}
	s.SavedPlans = append(plans, c.Plan.clone())
	return s
}

func (c RemoveSavedPlan) apply(s State) State {
	plans := make([]SavedPlan, 0, len(s.SavedPlans))
	for _, p := range s.SavedPlans {
		if p.ID != c.ID {
			plans = append(plans, p)
		}
	}
	s.SavedPlans = plans
	return s
}

func (c SetSavedPlans) apply(s State) State {
	plans := make([]SavedPlan, 0, len(c.Plans))
	for _, p := range c.Plans {
		plans = append(plans, p.clone())
	}
	s.SavedPlans = plans
	return s
}

func (c LoadSavedPlan) apply(s State) State {
	s.Selected = cloneActivities(c.Plan.Selected)
	s.Scheduled = cloneScheduled(c.Plan.Scheduled)
	if c.Plan.Theme != "" {
		s.Theme = c.Plan.Theme
	}
	if c.Plan.LongWeekend != "" {
		s.LongWeekend = c.Plan.LongWeekend
	}
	if c.Plan.Vibes != nil {
		s.Vibes = cloneVibes(c.Plan.Vibes)
	}
	return s
}

// DedupeSchedule keeps, for every activity id and every slot, the last entry
// that claims it. Dropped entries are returned in their original order.
func DedupeSchedule(in []ScheduledActivity) (kept, dropped []ScheduledActivity) {
	ids := make(map[int]struct{}, len(in))
	slots := make(map[Slot]struct{}, len(in))
	keep := make([]bool, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		sa := in[i]
		_, dupID := ids[sa.Activity.ID]
		_, dupSlot := slots[sa.Slot()]
		if dupID || dupSlot {
			continue
		}
		ids[sa.Activity.ID] = struct{}{}
		slots[sa.Slot()] = struct{}{}
		keep[i] = true
	}
	kept = make([]ScheduledActivity, 0, len(in))
	for i, sa := range in {
		if keep[i] {
			kept = append(kept, sa)
		} else {
			dropped = append(dropped, sa)
		}
	}
	return kept, dropped
}

func (p SavedPlan) clone() SavedPlan {
	out := p
	out.Selected = cloneActivities(p.Selected)
	out.Scheduled = cloneScheduled(p.Scheduled)
	if p.Vibes != nil {
		out.Vibes = cloneVibes(p.Vibes)
	}
	return out
}

func cloneActivities(in []activity.Activity) []activity.Activity {
	return append(make([]activity.Activity, 0, len(in)+1), in...)
}

func cloneScheduled(in []ScheduledActivity) []ScheduledActivity {
	return append(make([]ScheduledActivity, 0, len(in)+1), in...)
}

func cloneVibes(in map[int]Vibe) map[int]Vibe {
	out := make(map[int]Vibe, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func filterActivities(in []activity.Activity, keep func(activity.Activity) bool) []activity.Activity {
	out := make([]activity.Activity, 0, len(in))
	for _, a := range in {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func withoutActivity(in []ScheduledActivity, id int) []ScheduledActivity {
	out := make([]ScheduledActivity, 0, len(in)+1)
	for _, sa := range in {
		if sa.Activity.ID != id {
			out = append(out, sa)
		}
	}
	return out
}
