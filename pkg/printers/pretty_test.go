package printers

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
)

func init() {
	color.NoColor = true
}

var sat9 = plan.Slot{Day: plan.Saturday, Time: "9:00 AM"}

func sampleState() plan.State {
	hike, _ := activity.Default().Lookup(1)
	picnic, _ := activity.Default().Lookup(2)
	return plan.ReduceAll(plan.Initial(),
		plan.AddActivity{Activity: hike},
		plan.AddActivity{Activity: picnic},
		plan.ScheduleActivity{Activity: hike, Slot: sat9},
		plan.SetActivityVibe{ID: 1, Vibe: plan.VibeHappy},
	)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Morning Hike", Label(activity.Activity{ID: 1, Name: "Morning Hike"}))
	assert.Equal(t, "unknown activity #77", Label(activity.Activity{ID: 77}))
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	hike, _ := activity.Default().Lookup(1)
	pp.Catalog([]app.Listing{{Activity: hike, Recommended: true, Selected: true}})
	assert.Contains(t, buf.String(), "Morning Hike")
	assert.Contains(t, buf.String(), "★✓")

	buf.Reset()
	pp.Catalog(nil)
	assert.Contains(t, buf.String(), "none")
}

func TestSelection(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	st := plan.ReduceAll(sampleState(), plan.AddActivity{Activity: activity.Activity{ID: 99}})
	pp.Selection(st)

	out := buf.String()
	assert.Contains(t, out, "Selected - 3 activities")
	assert.Contains(t, out, "Saturday 9:00 AM")
	assert.Contains(t, out, "unscheduled")
	assert.Contains(t, out, "unknown activity #99 (not in catalog)")
}

func TestPlacement(t *testing.T) {
	hike, _ := activity.Default().Lookup(1)
	picnic, _ := activity.Default().Lookup(2)
	sun10 := plan.Slot{Day: plan.Sunday, Time: "10:00 AM"}

	tests := map[string]struct {
		in   app.Placement
		want string
	}{
		"empty slot": {
			in:   app.Placement{Activity: hike, Slot: sat9},
			want: "Placed Morning Hike on Saturday 9:00 AM.\n",
		},
		"swap": {
			in:   app.Placement{Activity: hike, Slot: sat9, Displaced: &picnic, DisplacedTo: &sun10},
			want: "Placed Morning Hike on Saturday 9:00 AM. Picnic in the Park moved to Sunday 10:00 AM.\n",
		},
		"bumped": {
			in:   app.Placement{Activity: hike, Slot: sat9, Displaced: &picnic},
			want: "Placed Morning Hike on Saturday 9:00 AM. Picnic in the Park is now unscheduled.\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			pp := PrettyPrint{Out: &buf, Width: 200}
			pp.Placement(tc.in)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRenderGrid(t *testing.T) {
	pp := PrettyPrint{}
	st := sampleState()

	out := pp.RenderGrid(st)
	assert.Contains(t, out, "Saturday (1)")
	assert.Contains(t, out, "Sunday (0)")
	assert.NotContains(t, out, "Friday")
	assert.Contains(t, out, "Morning Hike")
	assert.Contains(t, out, "10:00 PM")

	st = plan.Reduce(st, plan.SetLongWeekend{Option: plan.LongWeekendBoth})
	out = pp.RenderGrid(st)
	assert.Contains(t, out, "Friday (0)")
	assert.Contains(t, out, "Monday (0)")
}

func TestCellText(t *testing.T) {
	st := sampleState()
	occ, ok := st.Occupant(sat9)
	assert.True(t, ok)
	assert.Equal(t, plan.VibeHappy.Emoji()+" Morning Hike", CellText(st, occ, 40))
	assert.LessOrEqual(t, lipgloss.Width(CellText(st, occ, 8)), 7)
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 43, ColumnWidth(100, 2))
	assert.Equal(t, 12, ColumnWidth(20, 4))
	assert.Equal(t, 0, ColumnWidth(100, 0))
}

func TestPaletteAndSwatch(t *testing.T) {
	for _, th := range theme.All() {
		assert.Equal(t, 3, lipgloss.Width(Swatch(th)), th.ID)
	}
	assert.Equal(t, "   ", Swatch(theme.Theme{}))
	pal := PaletteFor(theme.Theme{})
	assert.Contains(t, pal.Header.Render("x"), "x")
}

func TestDayCounts(t *testing.T) {
	st := sampleState()
	assert.Equal(t, "2h-3h", PlannedTime(st, plan.Saturday).String())
	assert.True(t, PlannedTime(st, plan.Sunday).IsZero())

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.DayCounts(st)
	assert.Contains(t, buf.String(), "Saturday  ■ 1 · ~2h-3h")
	assert.Contains(t, buf.String(), "Sunday    -")
}
