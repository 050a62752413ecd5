package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/theme"
	"tableflip.dev/weekend/pkg/timeutil"
)

const timeColumn = len("10:00 PM ")

// Palette is the lipgloss rendering of a theme's colour triad.
type Palette struct {
	Header lipgloss.Style
	Filled lipgloss.Style
	Empty  lipgloss.Style
	Border lipgloss.Style
}

// PaletteFor builds the grid styles for t. Unparseable colours fall back to
// plain terminal colours.
func PaletteFor(t theme.Theme) Palette {
	primary, secondary, accent, err := t.Colors.Hex()
	if err != nil {
		primary, secondary, accent = "6", "4", "14"
	}
	return Palette{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(primary)),
		Filled: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(secondary)).
			Padding(0, 1),
	}
}

// Swatch renders the theme triad as three coloured blocks.
func Swatch(t theme.Theme) string {
	primary, secondary, accent, err := t.Colors.Hex()
	if err != nil {
		return "   "
	}
	block := func(hex string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█")
	}
	return block(primary) + block(secondary) + block(accent)
}

// ColumnWidth is the width of one day column for days columns in total
// width.
func ColumnWidth(total, days int) int {
	if days <= 0 {
		return 0
	}
	w := (total - timeColumn - 4) / days
	if w < 12 {
		w = 12
	}
	return w
}

// CellText is the grid text for an occupied slot: the activity label,
// followed by its vibe emoji when it has one, cut to width.
func CellText(st plan.State, sa plan.ScheduledActivity, width int) string {
	text := Label(sa.Activity)
	if v := st.Vibe(sa.Activity.ID); v != plan.VibeNone {
		text = v.Emoji() + " " + text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}

// Grid renders the visible days as columns and the time slots as rows.
func (pp *PrettyPrint) Grid(st plan.State) {
	_, _ = fmt.Fprintln(pp.out(), pp.RenderGrid(st))
}

// RenderGrid is Grid as a string.
func (pp *PrettyPrint) RenderGrid(st plan.State) string {
	days := st.LongWeekend.Days()
	pal := PaletteFor(theme.Get(st.Theme))
	colW := ColumnWidth(pp.width(), len(days))
	cell := lipgloss.NewStyle().Width(colW)
	label := lipgloss.NewStyle().Width(timeColumn)

	rows := make([]string, 0, len(plan.TimeSlots())+1)

	header := []string{label.Render("")}
	for _, d := range days {
		title := fmt.Sprintf("%s (%d)", d.Title(), st.CountOn(d))
		header = append(header, cell.Inherit(pal.Header).Render(title))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, ts := range plan.TimeSlots() {
		row := []string{label.Inherit(pal.Empty).Render(string(ts))}
		for _, d := range days {
			occ, ok := st.Occupant(plan.Slot{Day: d, Time: ts})
			if !ok {
				row = append(row, cell.Inherit(pal.Empty).Render("·"))
				continue
			}
			row = append(row, cell.Inherit(pal.Filled).Render(CellText(st, occ, colW)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return pal.Border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// DayCounts prints one line per visible day with the number of scheduled
// activities, bold when the day has any.
func (pp *PrettyPrint) DayCounts(st plan.State) {
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for _, d := range st.LongWeekend.Days() {
		n := st.CountOn(d)
		line := fmt.Sprintf("%-9s %s", d.Title(), strings.Repeat("■", n))
		if n == 0 {
			_, _ = l1.Fprintln(pp.out(), line+"-")
			continue
		}
		if span := PlannedTime(st, d); !span.IsZero() {
			_, _ = l2.Fprintf(pp.out(), "%s %d · ~%s\n", line, n, span)
		} else {
			_, _ = l2.Fprintf(pp.out(), "%s %d\n", line, n)
		}
	}
}

// PlannedTime sums the estimated durations of the activities on d. Durations
// that cannot be read are skipped.
func PlannedTime(st plan.State, d plan.Day) timeutil.Span {
	var total timeutil.Span
	for _, sa := range st.Scheduled {
		if sa.Day != d {
			continue
		}
		if span, err := timeutil.ParseSpan(sa.Activity.Duration); err == nil {
			total = total.Add(span)
		}
	}
	return total
}

// Unscheduled lists the selected activities that have no slot.
func (pp *PrettyPrint) Unscheduled(st plan.State) {
	items := st.Unscheduled()
	if len(items) == 0 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintln(pp.out(), "Not yet scheduled:")
	for _, a := range items {
		if pp.ShowID {
			_, _ = fmt.Fprintf(pp.out(), "  %-14d %s\n", a.ID, Label(a))
			continue
		}
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", Label(a))
	}
	pp.NewLine()
}
