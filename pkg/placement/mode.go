package placement

import (
	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

// Mode is the input modality used for placement.
type Mode int

const (
	ModeDrag Mode = iota
	ModeTap
)

func (m Mode) String() string {
	if m == ModeTap {
		return "tap"
	}
	return "drag"
}

// DefaultBreakpoint is the width below which the tap mode is used.
const DefaultBreakpoint = 768

// Viewport describes the surface the grid is shown on.
type Viewport struct {
	Width int
	// Breakpoint overrides DefaultBreakpoint when non-zero.
	Breakpoint int
	// CoarsePointer is set for touch input.
	CoarsePointer bool
}

// ModeFor picks the modality for v: narrow or touch surfaces tap, others drag.
func ModeFor(v Viewport) Mode {
	bp := v.Breakpoint
	if bp == 0 {
		bp = DefaultBreakpoint
	}
	if v.CoarsePointer || v.Width < bp {
		return ModeTap
	}
	return ModeDrag
}

// Controller routes gestures to the machine for the active mode. Switching
// mode abandons any gesture in progress.
type Controller struct {
	mode Mode
	drag Drag
	tap  Tap
}

// NewController starts in the mode chosen for v.
func NewController(v Viewport) *Controller {
	return &Controller{mode: ModeFor(v)}
}

// Mode returns the active modality.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Resize re-evaluates the modality for v.
func (c *Controller) Resize(v Viewport) {
	if m := ModeFor(v); m != c.mode {
		c.Cancel()
		c.mode = m
	}
}

// Pick starts carrying or selects a.
func (c *Controller) Pick(a activity.Activity) {
	if c.mode == ModeTap {
		c.tap.Select(a)
		return
	}
	c.drag.Start(a)
}

// Hover moves the drag pointer over s. Tap mode has no hover.
func (c *Controller) Hover(s plan.Slot) {
	if c.mode == ModeDrag {
		c.drag.Over(s)
	}
}

// Place finishes the gesture on target.
func (c *Controller) Place(target plan.Slot) (plan.Command, bool) {
	if c.mode == ModeTap {
		return c.tap.Tap(target)
	}
	return c.drag.Drop(target)
}

// Cancel abandons the gesture without a command.
func (c *Controller) Cancel() {
	c.drag.End()
	c.tap.Cancel()
}

// Pending returns the activity waiting to be placed.
func (c *Controller) Pending() (activity.Activity, bool) {
	if c.mode == ModeTap {
		return c.tap.Selected()
	}
	return c.drag.Dragged()
}

// Hovered returns the highlighted slot in drag mode.
func (c *Controller) Hovered() (plan.Slot, bool) {
	if c.mode != ModeDrag {
		return plan.Slot{}, false
	}
	return c.drag.Hover()
}
