package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
)

type PrettyPrint struct {
	ShowID bool

	// Width bounds wrapped text and the grid; zero means DefaultWidth.
	Width int

	// Out defaults to color.Output.
	Out io.Writer
}

const DefaultWidth = 100

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Writer is where the printer writes.
func (pp *PrettyPrint) Writer() io.Writer {
	return pp.out()
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " activity")
	default:
		_, _ = c.Fprintln(pp.out(), " activities")
	}
}

// Label is the display name of a, with a placeholder for stand-ins that lost
// their name.
func Label(a activity.Activity) string {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Sprintf("unknown activity #%d", a.ID)
	}
	return a.Name
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Catalog lists browse results. ★ marks theme picks, ✓ marks selections.
func (pp *PrettyPrint) Catalog(listings []app.Listing) {
	if len(listings) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	star := color.New(color.FgHiYellow)
	check := color.New(color.FgGreen)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 32
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Activity"), bold.Sprint("Category"), bold.Sprint("Duration"), bold.Sprint("Where"), bold.Sprint("Mood"))
	for _, l := range listings {
		marks := " "
		if l.Recommended {
			marks = star.Sprint("★")
		}
		if l.Selected {
			marks += check.Sprint("✓")
		} else {
			marks += " "
		}
		a := l.Activity
		tbl.AddRow(marks, a.ID, Label(a), a.Category, a.Duration, a.Location, a.Mood)
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Selection lists the selected activities with their slot and vibe.
func (pp *PrettyPrint) Selection(st plan.State) {
	pp.TitleWithCount("Selected", len(st.Selected))
	if len(st.Selected) == 0 {
		pp.none()
		return
	}

	faint := color.New(color.Faint)
	warn := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	for _, a := range st.Selected {
		where := faint.Sprint("unscheduled")
		if slot, ok := st.SlotOf(a.ID); ok {
			where = slot.String()
		}
		name := Label(a)
		if a.Category == "" {
			name += warn.Sprint(" (not in catalog)")
		}
		row := []interface{}{name, where, st.Vibe(a.ID).Emoji()}
		if pp.ShowID {
			row = append([]interface{}{faint.Sprint(a.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Plans lists the saved plan archive.
func (pp *PrettyPrint) Plans(plans []plan.SavedPlan) {
	pp.Title("Saved plans")
	if len(plans) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Saved"), bold.Sprint("Theme"), bold.Sprint("Days"), bold.Sprint("Scheduled"))
	for _, p := range plans {
		tbl.AddRow(faint.Sprint(p.ID), p.Name, p.Date.Display(), theme.Get(p.Theme).Name, p.LongWeekend, strconv.Itoa(len(p.Scheduled))+"/"+strconv.Itoa(len(p.Selected)))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Placement describes a schedule change, including any displaced activity.
func (pp *PrettyPrint) Placement(p app.Placement) {
	msg := fmt.Sprintf("Placed %s on %s.", Label(p.Activity), p.Slot)
	if p.Displaced != nil {
		if p.DisplacedTo != nil {
			msg += fmt.Sprintf(" %s moved to %s.", Label(*p.Displaced), *p.DisplacedTo)
		} else {
			msg += fmt.Sprintf(" %s is now unscheduled.", Label(*p.Displaced))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(msg, pp.width()))
}

// Themes lists the presets with a colour swatch, marking current.
func (pp *PrettyPrint) Themes(current theme.ID) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.Wrap = true
	for _, t := range theme.All() {
		mark := " "
		if t.ID == current {
			mark = "●"
		}
		tbl.AddRow(mark, Swatch(t), string(t.ID), t.Name, t.Description)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Header prints the greeting line and the theme description.
func (pp *PrettyPrint) Header(st plan.State) {
	t := theme.Get(st.Theme)
	title := t.Name
	if st.UserName != "" {
		title = fmt.Sprintf("%s's %s", st.UserName, t.Name)
	}
	pp.Title(title)
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), wordwrap.String(t.Description, pp.width()))
	pp.NewLine()
}
