// Package show prints the whole weekend: header, grid and loose selections.
package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/printers"
)

type Show struct {
	ShowID bool
	JSON   bool
	Width  int
	Out    io.Writer

	Planner *app.Planner
}

// Summary is the JSON form of Show.
type Summary struct {
	Theme       string                   `json:"theme"`
	UserName    string                   `json:"userName,omitempty"`
	LongWeekend plan.LongWeekend         `json:"longWeekend"`
	Days        []plan.Day               `json:"days"`
	AutoSave    bool                     `json:"autoSave"`
	Scheduled   []plan.ScheduledActivity `json:"scheduled"`
	Unscheduled []activity.Activity      `json:"unscheduled"`
	Vibes       map[int]plan.Vibe        `json:"vibes"`
	PlannedTime map[plan.Day]string      `json:"plannedTime,omitempty"`
}

func (n *Show) Do(_ context.Context) error {
	if n.Planner == nil {
		return errors.New("show: planner required")
	}
	st := n.Planner.State()
	pp := printers.PrettyPrint{ShowID: n.ShowID, Width: n.Width, Out: n.Out}
	if n.JSON {
		planned := map[plan.Day]string{}
		for _, d := range st.LongWeekend.Days() {
			if span := printers.PlannedTime(st, d); !span.IsZero() {
				planned[d] = span.String()
			}
		}
		return pp.JSON(Summary{
			Theme:       string(st.Theme),
			UserName:    st.UserName,
			LongWeekend: st.LongWeekend,
			Days:        st.LongWeekend.Days(),
			AutoSave:    st.AutoSave,
			Scheduled:   st.Scheduled,
			Unscheduled: st.Unscheduled(),
			Vibes:       st.Vibes,
			PlannedTime: planned,
		})
	}
	pp.Header(st)
	pp.Grid(st)
	pp.DayCounts(st)
	pp.NewLine()
	pp.Unscheduled(st)
	return nil
}
