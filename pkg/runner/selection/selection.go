// Package selection runs the commands that change which activities are picked.
package selection

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/printers"
)

var errNoPlanner = errors.New("selection: planner required")

// Add selects a catalog activity, optionally bound to a place, or mints a
// custom one when Custom is set.
type Add struct {
	ID      int
	Place   string
	Address string
	Link    string

	Custom  *app.CustomActivity
	JSON    bool
	ShowID  bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	var (
		a   activity.Activity
		err error
	)
	switch {
	case n.Custom != nil:
		a, err = n.Planner.AddCustom(ctx, *n.Custom)
	case n.Place != "" || n.Address != "" || n.Link != "":
		a, err = n.Planner.AttachPlace(ctx, n.ID, n.Place, n.Address, n.Link)
	default:
		a, err = n.Planner.Add(ctx, n.ID)
	}
	if err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out, n.JSON, n.ShowID, a)
}

// Remove drops one activity, or every activity with All.
type Remove struct {
	ID      int
	All     bool
	JSON    bool
	ShowID  bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if n.All {
		n.Planner.ClearAll(ctx)
	} else if err := n.Planner.Remove(ctx, n.ID); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out, n.JSON, n.ShowID, nil)
}

// Recommend adds the current theme's picks.
type Recommend struct {
	JSON    bool
	ShowID  bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Recommend) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	added := n.Planner.AddRecommended(ctx)
	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	if n.JSON {
		return pp.JSON(map[string]interface{}{"added": added, "selected": n.Planner.State().Selected})
	}
	_, _ = fmt.Fprintf(pp.Writer(), "Added %d %s picks.\n", added, n.Planner.Theme().Name)
	pp.Selection(n.Planner.State())
	return nil
}

// Vibe annotates a selected activity.
type Vibe struct {
	ID      int
	Vibe    plan.Vibe
	JSON    bool
	ShowID  bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Vibe) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if err := n.Planner.SetVibe(ctx, n.ID, n.Vibe); err != nil {
		return err
	}
	return show(ctx, n.Planner, n.Out, n.JSON, n.ShowID, nil)
}

func show(_ context.Context, p *app.Planner, out io.Writer, asJSON, showID bool, changed interface{}) error {
	pp := printers.PrettyPrint{Out: out, ShowID: showID}
	st := p.State()
	if asJSON {
		if changed != nil {
			return pp.JSON(changed)
		}
		return pp.JSON(st.Selected)
	}
	pp.Selection(st)
	return nil
}
