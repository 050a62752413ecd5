package plan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/theme"
)

var catalog = activity.Default()

func act(t *testing.T, id int) activity.Activity {
	t.Helper()
	a, ok := catalog.Lookup(id)
	require.True(t, ok, "catalog id %d", id)
	return a
}

func slot(d Day, ts TimeSlot) Slot {
	return Slot{Day: d, Time: ts}
}

func TestAddActivityMergesOverrides(t *testing.T) {
	s := Reduce(Initial(), AddActivity{Activity: act(t, 2)})
	s = Reduce(s, AddActivity{Activity: activity.Activity{ID: 2, Location: "Riverside"}})

	require.Len(t, s.Selected, 1)
	assert.Equal(t, "Picnic in the Park", s.Selected[0].Name)
	assert.Equal(t, "Riverside", s.Selected[0].Location)
	assert.Equal(t, "2-4 hours", s.Selected[0].Duration)
}

func TestSetOverridesResetsEmptyFields(t *testing.T) {
	base := act(t, 6)
	s := ReduceAll(Initial(),
		SetOverrides{Base: base, Overrides: activity.Overrides{
			Name:     base.Name + " @ Cafe Luna",
			Location: "12 Main St",
			LinkURL:  "https://maps.example/luna",
		}},
		ScheduleActivity{Activity: base, Slot: slot(Saturday, "9:00 AM")},
	)
	s = Reduce(s, SetOverrides{Base: base, Overrides: activity.Overrides{Name: base.Name + " @ Sunny Side"}})

	require.Len(t, s.Selected, 1)
	got := s.Selected[0]
	assert.Equal(t, base.Name+" @ Sunny Side", got.Name)
	assert.Equal(t, base.Location, got.Location)
	assert.Equal(t, base.LinkURL, got.LinkURL)

	require.Len(t, s.Scheduled, 1)
	assert.Equal(t, got, s.Scheduled[0].Activity)
	assert.Equal(t, slot(Saturday, "9:00 AM"), s.Scheduled[0].Slot())
}

func TestRemoveActivityCascades(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	s := ReduceAll(Initial(),
		AddActivity{Activity: a},
		AddActivity{Activity: b},
		ScheduleActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		ScheduleActivity{Activity: b, Slot: slot(Sunday, "9:00 AM")},
		SetActivityVibe{ID: a.ID, Vibe: VibeHappy},
		SetActivityVibe{ID: b.ID, Vibe: VibeRelaxed},
		RemoveActivity{ID: a.ID},
	)

	assert.False(t, s.IsSelected(a.ID))
	_, scheduled := s.SlotOf(a.ID)
	assert.False(t, scheduled)
	assert.Equal(t, VibeNone, s.Vibe(a.ID))

	assert.True(t, s.IsSelected(b.ID))
	assert.Equal(t, VibeRelaxed, s.Vibe(b.ID))
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	s := Reduce(Initial(), AddActivity{Activity: act(t, 1)})
	after := ReduceAll(s, RemoveActivity{ID: 99}, RemoveFromSchedule{ID: 99}, RemoveSavedPlan{ID: "nope"})
	assert.Equal(t, s, after)
}

func TestScheduleIdempotent(t *testing.T) {
	a := act(t, 1)
	s := ReduceAll(Initial(),
		ScheduleActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		ScheduleActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
	)
	require.Len(t, s.Scheduled, 1)
	assert.Equal(t, slot(Saturday, "9:00 AM"), s.Scheduled[0].Slot())
}

func TestScheduleDoesNotResolveConflicts(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	s := ReduceAll(Initial(),
		ScheduleActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		ScheduleActivity{Activity: b, Slot: slot(Saturday, "9:00 AM")},
	)
	assert.ErrorIs(t, s.Validate(), ErrDuplicateSlot)
}

func TestMoveIntoOccupiedSlotWithoutPriorSlot(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	s := ReduceAll(Initial(),
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		MoveActivity{Activity: b, Slot: slot(Saturday, "9:00 AM")},
	)

	_, ok := s.SlotOf(a.ID)
	assert.False(t, ok, "displaced activity had nowhere to go")
	got, ok := s.SlotOf(b.ID)
	require.True(t, ok)
	assert.Equal(t, slot(Saturday, "9:00 AM"), got)
	assert.NoError(t, s.Validate())
}

func TestMoveSwaps(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	s := ReduceAll(Initial(),
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		MoveActivity{Activity: b, Slot: slot(Sunday, "10:00 AM")},
		MoveActivity{Activity: a, Slot: slot(Sunday, "10:00 AM")},
	)

	got, ok := s.SlotOf(b.ID)
	require.True(t, ok)
	assert.Equal(t, slot(Saturday, "9:00 AM"), got)
	got, ok = s.SlotOf(a.ID)
	require.True(t, ok)
	assert.Equal(t, slot(Sunday, "10:00 AM"), got)

	require.Len(t, s.Scheduled, 2)
	assert.Equal(t, b.ID, s.Scheduled[0].Activity.ID)
	assert.Equal(t, a.ID, s.Scheduled[1].Activity.ID)
}

func TestMoveOntoOwnSlot(t *testing.T) {
	a := act(t, 1)
	s := ReduceAll(Initial(),
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
	)
	require.Len(t, s.Scheduled, 1)
}

func TestMoveToEmptySlot(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	s := ReduceAll(Initial(),
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		MoveActivity{Activity: b, Slot: slot(Saturday, "10:00 AM")},
		MoveActivity{Activity: a, Slot: slot(Monday, "8:00 PM")},
	)
	_, ok := s.Occupant(slot(Saturday, "9:00 AM"))
	assert.False(t, ok)
	got, _ := s.SlotOf(b.ID)
	assert.Equal(t, slot(Saturday, "10:00 AM"), got)
	assert.Equal(t, 1, s.CountOn(Monday))
}

// Any sequence of moves keeps both grid invariants.
func TestMovePreservesInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	all := catalog.All()
	slots := TimeSlots()
	days := AllDays()

	s := Initial()
	for i := 0; i < 2000; i++ {
		a := all[rng.Intn(6)]
		target := slot(days[rng.Intn(2)], slots[rng.Intn(3)])
		switch rng.Intn(5) {
		case 0:
			s = Reduce(s, RemoveFromSchedule{ID: a.ID})
		case 1:
			s = Reduce(s, RemoveActivity{ID: a.ID})
		default:
			s = Reduce(s, MoveActivity{Activity: a, Slot: target})
		}
		require.NoError(t, s.Validate(), "step %d", i)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	before := ReduceAll(Initial(),
		AddActivity{Activity: a},
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		SetActivityVibe{ID: a.ID, Vibe: VibeEnergetic},
	)
	snapshot := ReduceAll(Initial(),
		AddActivity{Activity: a},
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		SetActivityVibe{ID: a.ID, Vibe: VibeEnergetic},
	)

	ReduceAll(before,
		AddActivity{Activity: b},
		AddActivity{Activity: activity.Activity{ID: a.ID, Name: "renamed"}},
		MoveActivity{Activity: b, Slot: slot(Saturday, "9:00 AM")},
		SetActivityVibe{ID: a.ID, Vibe: VibeNone},
		ClearSelection{},
	)
	assert.Equal(t, snapshot, before)
}

func TestClearScheduleKeepsSelection(t *testing.T) {
	a := act(t, 1)
	s := ReduceAll(Initial(),
		AddActivity{Activity: a},
		ScheduleActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		ClearSchedule{},
	)
	assert.Empty(t, s.Scheduled)
	assert.True(t, s.IsSelected(a.ID))
	assert.Equal(t, []activity.Activity{a}, s.Unscheduled())
}

func TestClearSelection(t *testing.T) {
	a := act(t, 1)
	s := ReduceAll(Initial(),
		AddActivity{Activity: a},
		ScheduleActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
		SetActivityVibe{ID: a.ID, Vibe: VibeHappy},
		ClearSelection{},
	)
	assert.Empty(t, s.Selected)
	assert.Empty(t, s.Scheduled)
	assert.Empty(t, s.Vibes)
}

func TestSettings(t *testing.T) {
	s := ReduceAll(Initial(),
		SetTheme{Theme: theme.Lazy},
		SetUserName{Name: "Sam"},
		SetLongWeekend{Option: LongWeekendFriday},
		SetAutoSave{Enabled: false},
	)
	assert.Equal(t, theme.Lazy, s.Theme)
	assert.Equal(t, "Sam", s.UserName)
	assert.Equal(t, LongWeekendFriday, s.LongWeekend)
	assert.False(t, s.AutoSave)
}

func TestSavedPlansAreFrozen(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	live := ReduceAll(Initial(),
		AddActivity{Activity: a},
		MoveActivity{Activity: a, Slot: slot(Saturday, "9:00 AM")},
	)
	p := SavedPlan{ID: "1", Name: "First", Selected: live.Selected, Scheduled: live.Scheduled, Vibes: map[int]Vibe{}}
	live = Reduce(live, AddSavedPlan{Plan: p})

	live = ReduceAll(live,
		AddActivity{Activity: b},
		MoveActivity{Activity: b, Slot: slot(Saturday, "9:00 AM")},
	)

	saved, ok := live.SavedPlan("1")
	require.True(t, ok)
	require.Len(t, saved.Scheduled, 1)
	assert.Equal(t, a.ID, saved.Scheduled[0].Activity.ID)
	assert.Len(t, saved.Selected, 1)
}

func TestAddSavedPlanReplacesSameID(t *testing.T) {
	s := ReduceAll(Initial(),
		AddSavedPlan{Plan: SavedPlan{ID: "1", Name: "a"}},
		AddSavedPlan{Plan: SavedPlan{ID: "2", Name: "b"}},
		AddSavedPlan{Plan: SavedPlan{ID: "1", Name: "c"}},
	)
	require.Len(t, s.SavedPlans, 2)
	p, _ := s.SavedPlan("1")
	assert.Equal(t, "c", p.Name)

	s = Reduce(s, RemoveSavedPlan{ID: "2"})
	assert.Len(t, s.SavedPlans, 1)
}

func TestLoadSavedPlan(t *testing.T) {
	a, b := act(t, 1), act(t, 2)
	base := ReduceAll(Initial(),
		AddActivity{Activity: b},
		SetActivityVibe{ID: b.ID, Vibe: VibeHappy},
	)

	t.Run("without vibes keeps live vibes", func(t *testing.T) {
		s := Reduce(base, LoadSavedPlan{Plan: SavedPlan{
			Theme:       theme.Family,
			LongWeekend: LongWeekendBoth,
			Selected:    []activity.Activity{a},
			Scheduled:   []ScheduledActivity{{Activity: a, Day: Friday, TimeSlot: "8:00 AM"}},
		}})
		assert.Equal(t, []activity.Activity{a}, s.Selected)
		assert.Equal(t, theme.Family, s.Theme)
		assert.Equal(t, LongWeekendBoth, s.LongWeekend)
		assert.Equal(t, VibeHappy, s.Vibe(b.ID))
	})

	t.Run("with vibes replaces them", func(t *testing.T) {
		s := Reduce(base, LoadSavedPlan{Plan: SavedPlan{
			Selected: []activity.Activity{a},
			Vibes:    map[int]Vibe{a.ID: VibeEnergetic},
		}})
		assert.Equal(t, map[int]Vibe{a.ID: VibeEnergetic}, s.Vibes)
		assert.Equal(t, theme.Default, s.Theme)
	})
}

func TestDedupeSchedule(t *testing.T) {
	a, b, c := act(t, 1), act(t, 2), act(t, 3)
	in := []ScheduledActivity{
		{Activity: a, Day: Saturday, TimeSlot: "9:00 AM"},
		{Activity: b, Day: Saturday, TimeSlot: "9:00 AM"},
		{Activity: c, Day: Sunday, TimeSlot: "9:00 AM"},
		{Activity: c, Day: Sunday, TimeSlot: "10:00 AM"},
	}
	kept, dropped := DedupeSchedule(in)

	require.Len(t, kept, 2)
	assert.Equal(t, b.ID, kept[0].Activity.ID)
	assert.Equal(t, TimeSlot("10:00 AM"), kept[1].TimeSlot)
	assert.Len(t, dropped, 2)
	assert.NoError(t, State{Scheduled: kept}.Validate())
}
