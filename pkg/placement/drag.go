// Package placement turns pointer and keyboard gestures on the schedule grid
// into plan commands. It never changes the grid itself; the commands it
// returns go through the reducer like any other.
package placement

import (
	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

// DragState is the phase of a drag gesture.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragHovering
)

func (s DragState) String() string {
	switch s {
	case DragDragging:
		return "dragging"
	case DragHovering:
		return "hovering"
	default:
		return "idle"
	}
}

// Drag follows a continuous drag: pick up, hover over slots, drop.
// The zero value is idle.
type Drag struct {
	state    DragState
	activity activity.Activity
	hover    plan.Slot
}

// State returns the current phase.
func (d *Drag) State() DragState {
	return d.state
}

// Dragged returns the activity being carried.
func (d *Drag) Dragged() (activity.Activity, bool) {
	if d.state == DragIdle {
		return activity.Activity{}, false
	}
	return d.activity, true
}

// Hover returns the slot under the pointer.
func (d *Drag) Hover() (plan.Slot, bool) {
	if d.state != DragHovering {
		return plan.Slot{}, false
	}
	return d.hover, true
}

// Start picks up a. Starting again replaces the carried activity.
func (d *Drag) Start(a activity.Activity) {
	d.state = DragDragging
	d.activity = a
	d.hover = plan.Slot{}
}

// Over records the slot under the pointer. Ignored while idle.
func (d *Drag) Over(s plan.Slot) {
	if d.state == DragIdle {
		return
	}
	if !s.Valid() {
		d.Leave()
		return
	}
	d.state = DragHovering
	d.hover = s
}

// Leave clears the hovered slot; the activity stays picked up.
func (d *Drag) Leave() {
	if d.state == DragHovering {
		d.state = DragDragging
		d.hover = plan.Slot{}
	}
}

// Drop releases over target and returns the move to apply. Dropping while
// idle or outside the grid yields no command. The machine is idle afterwards.
func (d *Drag) Drop(target plan.Slot) (plan.Command, bool) {
	defer d.End()
	if d.state == DragIdle || !target.Valid() {
		return nil, false
	}
	return plan.MoveActivity{Activity: d.activity, Slot: target}, true
}

// End abandons the gesture without a command.
func (d *Drag) End() {
	*d = Drag{}
}
