// Package schedule runs the commands that change the weekend grid.
package schedule

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/printers"
)

var errNoPlanner = errors.New("schedule: planner required")

// Schedule places an activity into a slot.
type Schedule struct {
	ID   int
	Slot plan.Slot

	JSON    bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Schedule) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	placed, err := n.Planner.Schedule(ctx, n.ID, n.Slot)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(placed)
	}
	pp.Placement(placed)
	pp.Grid(n.Planner.State())
	return nil
}

// Unschedule takes an activity off the grid, or clears it with All.
type Unschedule struct {
	ID  int
	All bool

	JSON    bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Unschedule) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if n.All {
		n.Planner.ClearSchedule(ctx)
	} else if err := n.Planner.Unschedule(ctx, n.ID); err != nil {
		return err
	}
	st := n.Planner.State()
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(st.Scheduled)
	}
	pp.Grid(st)
	pp.Unscheduled(st)
	return nil
}
