// Package plans runs the saved plan archive commands.
package plans

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/printers"
)

var errNoPlanner = errors.New("plans: planner required")

// Action selects what Plans does.
type Action string

const (
	List   Action = "list"
	Save   Action = "save"
	Load   Action = "load"
	Delete Action = "delete"
)

type Plans struct {
	Action Action

	// Name is the plan name for Save.
	Name string

	// ID names the plan for Load and Delete.
	ID string

	JSON    bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Plans) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	pp := printers.PrettyPrint{Out: n.Out}

	switch n.Action {
	case "", List:
		if n.JSON {
			return pp.JSON(n.Planner.Plans())
		}
		pp.Plans(n.Planner.Plans())
		return nil

	case Save:
		saved, err := n.Planner.SavePlan(ctx, n.Name)
		if err != nil {
			return err
		}
		if n.JSON {
			return pp.JSON(saved)
		}
		_, _ = fmt.Fprintf(pp.Writer(), "Saved %q as %s.\n", saved.Name, saved.ID)
		return nil

	case Load:
		saved, err := n.Planner.LoadPlan(ctx, n.ID)
		if err != nil {
			return err
		}
		if n.JSON {
			return pp.JSON(n.Planner.State().Scheduled)
		}
		_, _ = fmt.Fprintf(pp.Writer(), "Loaded %q.\n", saved.Name)
		pp.Grid(n.Planner.State())
		pp.Unscheduled(n.Planner.State())
		return nil

	case Delete:
		if err := n.Planner.DeletePlan(ctx, n.ID); err != nil {
			return err
		}
		if n.JSON {
			return pp.JSON(n.Planner.Plans())
		}
		pp.Plans(n.Planner.Plans())
		return nil
	}
	return fmt.Errorf("plans: unknown action %q", n.Action)
}
