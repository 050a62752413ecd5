package teaui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/weekend/pkg/app"
)

// ErrNoTerminal is returned when the board is launched without a terminal.
var ErrNoTerminal = errors.New("the weekend board needs an interactive terminal")

// Run launches the interactive board.
func Run(p *app.Planner) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNoTerminal
	}
	m := New(p)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
