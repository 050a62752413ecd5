package placement

import (
	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

// Tap follows select-then-place: pick an activity, then tap a slot.
// The zero value is idle.
type Tap struct {
	selected *activity.Activity
}

// Selected returns the pending activity.
func (t *Tap) Selected() (activity.Activity, bool) {
	if t.selected == nil {
		return activity.Activity{}, false
	}
	return *t.selected, true
}

// Select makes a the pending activity, replacing any earlier one.
func (t *Tap) Select(a activity.Activity) {
	t.selected = &a
}

// Tap places the pending activity into target and returns to idle. With
// nothing pending, or an invalid target, no command is produced and any
// pending selection is kept.
func (t *Tap) Tap(target plan.Slot) (plan.Command, bool) {
	if t.selected == nil || !target.Valid() {
		return nil, false
	}
	a := *t.selected
	t.selected = nil
	return plan.MoveActivity{Activity: a, Slot: target}, true
}

// Cancel drops the pending selection.
func (t *Tap) Cancel() {
	t.selected = nil
}
