package app

import (
	"context"
	"fmt"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/plan"
)

// Placement reports what a Schedule call did to the grid.
type Placement struct {
	Activity activity.Activity `json:"activity"`
	Slot     plan.Slot         `json:"slot"`
	// Displaced is the previous occupant of Slot, if any.
	Displaced *activity.Activity `json:"displaced,omitempty"`
	// DisplacedTo is where Displaced went; nil means it is now unscheduled.
	DisplacedTo *plan.Slot `json:"displacedTo,omitempty"`
}

// Schedule places selected activity id into slot, resolving a conflict with
// the current occupant in the same change.
func (p *Planner) Schedule(ctx context.Context, id int, slot plan.Slot) (Placement, error) {
	if !slot.Valid() {
		return Placement{}, fmt.Errorf("app: invalid slot %s", slot)
	}
	return p.Place(ctx, plan.MoveActivity{Activity: activity.Activity{ID: id}, Slot: slot})
}

// Place applies a move produced by the placement machines. The selection
// check, the move and the reported Placement all see the same state; the
// moved activity is taken from the selection rather than from move.
func (p *Planner) Place(ctx context.Context, move plan.MoveActivity) (Placement, error) {
	var out Placement
	_, after, err := p.applyWith(ctx, commitAuto, func(before plan.State) ([]plan.Command, error) {
		a, ok := before.Selection(move.Activity.ID)
		if !ok {
			return nil, fmt.Errorf("%w: #%d", ErrNotSelected, move.Activity.ID)
		}
		move.Activity = a
		out = Placement{Activity: a, Slot: move.Slot}
		if occ, ok := before.Occupant(move.Slot); ok && occ.Activity.ID != a.ID {
			displaced := occ.Activity
			out.Displaced = &displaced
		}
		return []plan.Command{move}, nil
	})
	if err != nil {
		return Placement{}, err
	}
	if out.Displaced != nil {
		if to, ok := after.SlotOf(out.Displaced.ID); ok {
			out.DisplacedTo = &to
		}
	}
	return out, nil
}

// Unschedule takes activity id off the grid; it stays selected.
func (p *Planner) Unschedule(ctx context.Context, id int) error {
	if _, ok := p.State().SlotOf(id); !ok {
		return fmt.Errorf("app: activity #%d is not scheduled", id)
	}
	p.Dispatch(ctx, plan.RemoveFromSchedule{ID: id})
	return nil
}

// ClearSchedule empties the grid.
func (p *Planner) ClearSchedule(ctx context.Context) {
	p.Dispatch(ctx, plan.ClearSchedule{})
}
