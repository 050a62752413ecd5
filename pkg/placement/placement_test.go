package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

var (
	hike   = activity.Activity{ID: 1, Name: "Morning Hike"}
	picnic = activity.Activity{ID: 2, Name: "Picnic in the Park"}
	sat9   = plan.Slot{Day: plan.Saturday, Time: "9:00 AM"}
	sun10  = plan.Slot{Day: plan.Sunday, Time: "10:00 AM"}
)

func TestDragDrop(t *testing.T) {
	var d Drag
	assert.Equal(t, DragIdle, d.State())

	d.Start(hike)
	assert.Equal(t, DragDragging, d.State())
	d.Over(sat9)
	assert.Equal(t, DragHovering, d.State())
	h, ok := d.Hover()
	require.True(t, ok)
	assert.Equal(t, sat9, h)

	cmd, ok := d.Drop(sat9)
	require.True(t, ok)
	assert.Equal(t, plan.MoveActivity{Activity: hike, Slot: sat9}, cmd)
	assert.Equal(t, DragIdle, d.State())
	_, ok = d.Dragged()
	assert.False(t, ok)
}

func TestDragLeaveKeepsActivity(t *testing.T) {
	var d Drag
	d.Start(hike)
	d.Over(sat9)
	d.Leave()

	assert.Equal(t, DragDragging, d.State())
	_, ok := d.Hover()
	assert.False(t, ok)
	a, ok := d.Dragged()
	require.True(t, ok)
	assert.Equal(t, hike, a)
}

func TestDragDropOutside(t *testing.T) {
	var d Drag
	d.Start(hike)
	d.Over(sat9)

	_, ok := d.Drop(plan.Slot{})
	assert.False(t, ok)
	assert.Equal(t, DragIdle, d.State())
}

func TestDragIdleIgnoresGestures(t *testing.T) {
	var d Drag
	d.Over(sat9)
	assert.Equal(t, DragIdle, d.State())
	_, ok := d.Drop(sat9)
	assert.False(t, ok)
}

func TestDragEnd(t *testing.T) {
	var d Drag
	d.Start(hike)
	d.Over(sun10)
	d.End()
	assert.Equal(t, DragIdle, d.State())
}

func TestTapSelectReplaces(t *testing.T) {
	var tp Tap
	tp.Select(hike)
	tp.Select(picnic)

	got, ok := tp.Selected()
	require.True(t, ok)
	assert.Equal(t, picnic, got)

	cmd, ok := tp.Tap(sun10)
	require.True(t, ok)
	assert.Equal(t, plan.MoveActivity{Activity: picnic, Slot: sun10}, cmd)
	_, ok = tp.Selected()
	assert.False(t, ok)
}

func TestTapWithoutSelection(t *testing.T) {
	var tp Tap
	_, ok := tp.Tap(sat9)
	assert.False(t, ok)
}

func TestTapCancel(t *testing.T) {
	var tp Tap
	tp.Select(hike)
	tp.Cancel()
	_, ok := tp.Tap(sat9)
	assert.False(t, ok)
}

func TestTapInvalidTargetKeepsSelection(t *testing.T) {
	var tp Tap
	tp.Select(hike)
	_, ok := tp.Tap(plan.Slot{Day: plan.Saturday, Time: "7:00 AM"})
	assert.False(t, ok)
	_, ok = tp.Selected()
	assert.True(t, ok)
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, ModeDrag, ModeFor(Viewport{Width: 1280}))
	assert.Equal(t, ModeTap, ModeFor(Viewport{Width: 390}))
	assert.Equal(t, ModeTap, ModeFor(Viewport{Width: 1280, CoarsePointer: true}))
	assert.Equal(t, ModeDrag, ModeFor(Viewport{Width: 120, Breakpoint: 100}))
	assert.Equal(t, ModeTap, ModeFor(Viewport{Width: 80, Breakpoint: 100}))
}

// Both modalities end in the same command for the same gesture.
func TestControllerModesAgree(t *testing.T) {
	for _, v := range []Viewport{{Width: 1280}, {Width: 320}} {
		c := NewController(v)
		c.Pick(hike)
		c.Hover(sat9)
		p, ok := c.Pending()
		require.True(t, ok)
		assert.Equal(t, hike, p)

		cmd, ok := c.Place(sat9)
		require.True(t, ok, c.Mode().String())
		assert.Equal(t, plan.MoveActivity{Activity: hike, Slot: sat9}, cmd)
		_, ok = c.Pending()
		assert.False(t, ok)
	}
}

func TestControllerResizeCancels(t *testing.T) {
	c := NewController(Viewport{Width: 1280})
	c.Pick(hike)
	c.Hover(sat9)
	_, ok := c.Hovered()
	assert.True(t, ok)

	c.Resize(Viewport{Width: 300})
	assert.Equal(t, ModeTap, c.Mode())
	_, ok = c.Pending()
	assert.False(t, ok)
}
