// Package settings runs the theme and personalisation commands.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/printers"
	"tableflip.dev/weekend/pkg/theme"
)

var errNoPlanner = errors.New("settings: planner required")

// Theme lists the presets, switching to ID first when it is set.
type Theme struct {
	ID theme.ID

	JSON    bool
	Out     io.Writer
	Planner *app.Planner
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	if n.ID != "" {
		if err := n.Planner.SetTheme(ctx, n.ID); err != nil {
			return err
		}
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(n.Planner.Theme())
	}
	pp.Themes(n.Planner.State().Theme)
	return nil
}

// Settings applies any set personalisation values, then prints them all.
type Settings struct {
	Changes app.Settings

	JSON    bool
	Out     io.Writer
	Planner *app.Planner
}

// View is the printed form of the settings.
type View struct {
	UserName    string           `json:"userName"`
	Theme       theme.ID         `json:"theme"`
	LongWeekend plan.LongWeekend `json:"longWeekend"`
	Days        []plan.Day       `json:"days"`
	AutoSave    bool             `json:"autoSave"`
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errNoPlanner
	}
	st := n.Planner.UpdateSettings(ctx, n.Changes)
	v := View{
		UserName:    st.UserName,
		Theme:       st.Theme,
		LongWeekend: st.LongWeekend,
		Days:        st.LongWeekend.Days(),
		AutoSave:    st.AutoSave,
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(v)
	}
	w := pp.Writer()
	_, _ = fmt.Fprintf(w, "name:          %s\n", v.UserName)
	_, _ = fmt.Fprintf(w, "theme:         %s\n", theme.Get(v.Theme).Name)
	_, _ = fmt.Fprintf(w, "long weekend:  %s %v\n", v.LongWeekend, v.Days)
	_, _ = fmt.Fprintf(w, "auto-save:     %t\n", v.AutoSave)
	return nil
}
