package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/weekend/pkg/plan"
)

// SavePlan archives the live selection, schedule, theme, long weekend option
// and vibes under name. The archive is written even with auto-save off.
func (p *Planner) SavePlan(ctx context.Context, name string) (plan.SavedPlan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return plan.SavedPlan{}, ErrPlanName
	}
	st := p.State()
	if len(st.Selected) == 0 && len(st.Scheduled) == 0 {
		return plan.SavedPlan{}, ErrEmptyPlan
	}

	now := p.now()
	ms := now.UnixMilli()
	for {
		if _, taken := st.SavedPlan(strconv.FormatInt(ms, 10)); !taken {
			break
		}
		ms++
	}

	saved := plan.SavedPlan{
		ID:          strconv.FormatInt(ms, 10),
		Name:        name,
		Date:        plan.Stamp(now),
		Theme:       st.Theme,
		LongWeekend: st.LongWeekend,
		Scheduled:   st.Scheduled,
		Selected:    st.Selected,
		Vibes:       st.Vibes,
	}
	p.apply(ctx, commitPlans, plan.AddSavedPlan{Plan: saved})
	return saved, nil
}

// LoadPlan replaces the live state with saved plan id.
func (p *Planner) LoadPlan(ctx context.Context, id string) (plan.SavedPlan, error) {
	saved, ok := p.State().SavedPlan(id)
	if !ok {
		return plan.SavedPlan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	p.Dispatch(ctx, plan.LoadSavedPlan{Plan: saved})
	return saved, nil
}

// DeletePlan removes saved plan id. The archive is written even with
// auto-save off.
func (p *Planner) DeletePlan(ctx context.Context, id string) error {
	if _, ok := p.State().SavedPlan(id); !ok {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	p.apply(ctx, commitPlans, plan.RemoveSavedPlan{ID: id})
	return nil
}

// Plans lists the archive, newest first.
func (p *Planner) Plans() []plan.SavedPlan {
	plans := p.State().SavedPlans
	out := make([]plan.SavedPlan, 0, len(plans))
	for i := len(plans) - 1; i >= 0; i-- {
		out = append(out, plans[i])
	}
	return out
}
