package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/weekend/pkg/activity"
	"tableflip.dev/weekend/pkg/app"
	"tableflip.dev/weekend/pkg/placement"
	"tableflip.dev/weekend/pkg/plan"
	"tableflip.dev/weekend/pkg/printers"
	"tableflip.dev/weekend/pkg/theme"
)

// Breakpoint is the terminal width, in columns, below which the board uses
// select-then-tap placement.
const Breakpoint = 100

const poolWidth = 30

type mode int

const (
	modeNormal mode = iota
	modeSaveName
	modeHelp
)

type focus int

const (
	focusPool focus = iota
	focusGrid
)

// poolItem is a selected activity in the left list.
type poolItem struct {
	a         activity.Activity
	scheduled bool
	vibe      plan.Vibe
}

func (it poolItem) Title() string {
	mark := "  "
	if it.scheduled {
		mark = "▪ "
	}
	if e := it.vibe.Emoji(); e != "" {
		return mark + printers.Label(it.a) + " " + e
	}
	return mark + printers.Label(it.a)
}
func (it poolItem) Description() string { return "" }
func (it poolItem) FilterValue() string { return it.a.Name }

// Model is the interactive weekend board.
type Model struct {
	planner *app.Planner
	ctx     context.Context
	ctrl    *placement.Controller

	mode  mode
	focus focus

	pool  list.Model
	input textinput.Model

	day  int
	slot int

	palette printers.Palette
	status  string

	termWidth  int
	termHeight int

	unsubscribe func()
}

// New builds a board over a hydrated planner.
func New(p *app.Planner) *Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, poolWidth, 20)
	l.Title = "Picks"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "plan name"
	ti.CharLimit = 64
	ti.Prompt = ""

	m := &Model{
		planner: p,
		ctx:     context.Background(),
		ctrl:    placement.NewController(placement.Viewport{Breakpoint: Breakpoint}),
		focus:   focusPool,
		pool:    l,
		input:   ti,
		status:  "space pick, arrows move, enter place, ? help",
	}
	m.palette = printers.PaletteFor(p.Theme())
	m.unsubscribe = p.Subscribe(func(ev app.Event) {
		switch ev.Kind {
		case app.EventThemeChanged:
			m.palette = printers.PaletteFor(theme.Get(ev.State.Theme))
		case app.EventCommitted, app.EventHydrated:
			m.refresh()
		}
	})
	m.refresh()
	return m
}

// Close detaches the board from the planner.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the pick list from the planner.
func (m *Model) refresh() {
	st := m.planner.State()
	items := make([]list.Item, 0, len(st.Selected))
	for _, a := range st.Selected {
		_, scheduled := st.SlotOf(a.ID)
		items = append(items, poolItem{a: a, scheduled: scheduled, vibe: st.Vibe(a.ID)})
	}
	idx := m.pool.Index()
	m.pool.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.pool.Select(idx)
	}
	if days := st.LongWeekend.Days(); m.day >= len(days) {
		m.day = len(days) - 1
	}
}

func (m *Model) days() []plan.Day {
	return m.planner.State().LongWeekend.Days()
}

// cursor is the grid cell under the keyboard cursor.
func (m *Model) cursor() plan.Slot {
	days := m.days()
	return plan.Slot{Day: days[m.day], Time: plan.TimeSlots()[m.slot]}
}

func (m *Model) highlighted() (activity.Activity, bool) {
	it, ok := m.pool.SelectedItem().(poolItem)
	if !ok {
		return activity.Activity{}, false
	}
	return it.a, true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		before := m.ctrl.Mode()
		m.ctrl.Resize(placement.Viewport{Width: msg.Width, Breakpoint: Breakpoint})
		if m.ctrl.Mode() != before {
			m.status = fmt.Sprintf("%s mode", m.ctrl.Mode())
		}
		m.applySizes()
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch m.mode {
	case modeHelp:
		if key == "q" || key == "esc" || key == "?" {
			m.mode = modeNormal
		}
		return nil
	case modeSaveName:
		return m.handleSaveKey(msg)
	}

	switch key {
	case "ctrl+c", "q":
		m.Close()
		return tea.Quit
	case "?":
		m.mode = modeHelp
	case "tab":
		if m.focus == focusPool {
			m.focus = focusGrid
		} else {
			m.focus = focusPool
		}
	case "esc":
		m.ctrl.Cancel()
		m.status = "cancelled"
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "space", " ":
		m.pick()
	case "enter":
		if m.focus == focusPool {
			m.pick()
		} else {
			m.place()
		}
	case "u":
		m.unschedule()
	case "x":
		m.remove()
	case "v":
		m.cycleVibe()
	case "t":
		m.cycleTheme()
	case "r":
		n := m.planner.AddRecommended(m.ctx)
		m.status = fmt.Sprintf("added %d %s picks", n, m.planner.Theme().Name)
	case "s":
		m.mode = modeSaveName
		m.input.Reset()
		return m.input.Focus()
	}
	return nil
}

func (m *Model) handleSaveKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return nil
	case "enter":
		saved, err := m.planner.SavePlan(m.ctx, m.input.Value())
		if err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.status = fmt.Sprintf("saved %q", saved.Name)
		}
		m.mode = modeNormal
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// move steps the cursor of the focused pane. In drag mode the carried
// activity hovers over the new grid cell.
func (m *Model) move(dx, dy int) {
	if m.focus == focusPool {
		if dx > 0 {
			m.focus = focusGrid
			return
		}
		if dy < 0 {
			m.pool.CursorUp()
		} else if dy > 0 {
			m.pool.CursorDown()
		}
		return
	}

	days := m.days()
	m.day += dx
	if m.day < 0 {
		m.focus = focusPool
		m.day = 0
		return
	}
	if m.day >= len(days) {
		m.day = len(days) - 1
	}
	m.slot += dy
	if m.slot < 0 {
		m.slot = 0
	}
	if last := len(plan.TimeSlots()) - 1; m.slot > last {
		m.slot = last
	}
	m.ctrl.Hover(m.cursor())
}

// pick starts carrying the highlighted activity, or selects it for a tap.
func (m *Model) pick() {
	a, ok := m.highlighted()
	if !ok {
		m.status = "nothing to pick"
		return
	}
	m.ctrl.Pick(a)
	m.focus = focusGrid
	if m.ctrl.Mode() == placement.ModeDrag {
		m.ctrl.Hover(m.cursor())
		m.status = fmt.Sprintf("dragging %s", printers.Label(a))
	} else {
		m.status = fmt.Sprintf("%s selected, tap a slot", printers.Label(a))
	}
}

// place finishes the gesture on the cursor cell.
func (m *Model) place() {
	cmd, ok := m.ctrl.Place(m.cursor())
	if !ok {
		m.status = "pick an activity first"
		return
	}
	move, ok := cmd.(plan.MoveActivity)
	if !ok {
		return
	}
	placed, err := m.planner.Place(m.ctx, move)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = describe(placed)
}

func (m *Model) unschedule() {
	st := m.planner.State()
	if m.focus == focusGrid {
		if occ, ok := st.Occupant(m.cursor()); ok {
			_ = m.planner.Unschedule(m.ctx, occ.Activity.ID)
			m.status = fmt.Sprintf("%s unscheduled", printers.Label(occ.Activity))
		}
	} else if a, ok := m.highlighted(); ok {
		if err := m.planner.Unschedule(m.ctx, a.ID); err != nil {
			m.status = "ERR: " + err.Error()
		}
	}
}

func (m *Model) remove() {
	a, ok := m.highlighted()
	if m.focus == focusGrid {
		occ, found := m.planner.State().Occupant(m.cursor())
		a, ok = occ.Activity, found
	}
	if !ok {
		return
	}
	if err := m.planner.Remove(m.ctx, a.ID); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("removed %s", printers.Label(a))
}

func (m *Model) cycleVibe() {
	a, ok := m.highlighted()
	if m.focus == focusGrid {
		occ, found := m.planner.State().Occupant(m.cursor())
		a, ok = occ.Activity, found
	}
	if !ok {
		return
	}
	next := plan.VibeHappy
	vibes := plan.AllVibes()
	cur := m.planner.State().Vibe(a.ID)
	for i, v := range vibes {
		if v == cur {
			if i+1 < len(vibes) {
				next = vibes[i+1]
			} else {
				next = plan.VibeNone
			}
		}
	}
	_ = m.planner.SetVibe(m.ctx, a.ID, next)
}

func (m *Model) cycleTheme() {
	ids := theme.IDs()
	cur := m.planner.State().Theme
	next := ids[0]
	for i, id := range ids {
		if id == cur {
			next = ids[(i+1)%len(ids)]
		}
	}
	_ = m.planner.SetTheme(m.ctx, next)
	m.status = theme.Get(next).Name
}

func describe(p app.Placement) string {
	msg := fmt.Sprintf("%s → %s", printers.Label(p.Activity), p.Slot)
	if p.Displaced != nil {
		if p.DisplacedTo != nil {
			msg += fmt.Sprintf(", %s → %s", printers.Label(*p.Displaced), *p.DisplacedTo)
		} else {
			msg += fmt.Sprintf(", %s unscheduled", printers.Label(*p.Displaced))
		}
	}
	return msg
}

// applySizes recalculates the pick list size for the terminal.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.pool.SetSize(poolWidth, height)
}

func (m *Model) View() string {
	st := m.planner.State()
	gap := lipgloss.NewStyle().Padding(0, 1).Render

	pane := m.pool.View()
	if m.focus == focusPool {
		pane = m.palette.Header.Render("» ") + "\n" + pane
	} else {
		pane = "\n" + pane
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, pane, gap(" "), m.renderGrid(st))

	switch m.mode {
	case modeSaveName:
		body += "\n\nSave as: " + m.input.View()
	case modeHelp:
		help := "Keys: tab switch panes, arrows/hjkl move, space pick, enter place, esc cancel, u unschedule, x remove, v vibe, t theme, r add theme picks, s save plan, q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("[%s] %s · %s", strings.ToUpper(m.ctrl.Mode().String()), theme.Get(st.Theme).Name, m.status))
	return body + "\n\n" + status
}

func (m *Model) renderGrid(st plan.State) string {
	days := st.LongWeekend.Days()
	width := m.termWidth - poolWidth - 4
	if width <= 0 {
		width = printers.DefaultWidth - poolWidth
	}
	colW := printers.ColumnWidth(width, len(days))
	cell := lipgloss.NewStyle().Width(colW)
	label := lipgloss.NewStyle().Width(9).Inherit(m.palette.Empty)

	hover, hovering := m.ctrl.Hovered()
	pending, carrying := m.ctrl.Pending()

	header := []string{label.Render("")}
	for _, d := range days {
		header = append(header, cell.Inherit(m.palette.Header).Render(d.Title()))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for si, ts := range plan.TimeSlots() {
		row := []string{label.Render(string(ts))}
		for di, d := range days {
			slot := plan.Slot{Day: d, Time: ts}
			text := "·"
			style := cell.Inherit(m.palette.Empty)
			if occ, ok := st.Occupant(slot); ok {
				text = printers.CellText(st, occ, colW)
				style = cell.Inherit(m.palette.Filled)
			}
			if hovering && hover == slot && carrying {
				text = truncate.StringWithTail("» "+printers.Label(pending), uint(colW-1), "…")
				style = style.Underline(true)
			}
			if m.focus == focusGrid && di == m.day && si == m.slot {
				style = style.Reverse(true)
			}
			row = append(row, style.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return m.palette.Border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
