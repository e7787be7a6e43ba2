// Package components holds interactive terminal prompts.
package components

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/sleuth-io/fmcat/internal/ui"
	"github.com/sleuth-io/fmcat/internal/ui/theme"
)

var (
	// ErrNotInteractive is returned when input or output is not a terminal
	ErrNotInteractive = errors.New("not an interactive terminal")
	// ErrCancelled is returned when the prompt is dismissed
	ErrCancelled = errors.New("cancelled")
)

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "toggle")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

type confirmModel struct {
	message   string
	yes       bool
	done      bool
	cancelled bool
	styles    theme.Styles
	width     int
}

func newConfirmModel(message string, defaultYes bool, width int) confirmModel {
	return confirmModel{
		message: message,
		yes:     defaultYes,
		styles:  theme.Current().Styles(),
		width:   width,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Quit):
		m.yes, m.cancelled, m.done = false, true, true
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.yes, m.done = true, true
	case key.Matches(keyMsg, confirmKeys.No):
		m.yes, m.done = false, true
	case key.Matches(keyMsg, confirmKeys.Submit):
		m.done = true
	case key.Matches(keyMsg, confirmKeys.Toggle):
		m.yes = !m.yes
	}

	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := m.styles.Muted.Render(" Yes "), m.styles.Bold.Render("[No]")
	if m.yes {
		yes, no = m.styles.Bold.Render("[Yes]"), m.styles.Muted.Render(" No ")
	}

	// leave room for the buttons
	msgWidth := max(m.width-13, 20)
	return fmt.Sprintf("%s %s %s", wordwrap.String(m.message, msgWidth), yes, no)
}

// Confirm asks a yes/no question on the terminal.
// Returns ErrNotInteractive when in or out is not a terminal so callers can fall back to flags.
func Confirm(in io.Reader, out io.Writer, message string, defaultYes bool) (bool, error) {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) || !ui.IsTTY(out) {
		return false, ErrNotInteractive
	}

	width := 80
	if w, _, err := term.GetSize(int(inFile.Fd())); err == nil && w > 0 {
		width = w
	}

	p := tea.NewProgram(newConfirmModel(message, defaultYes, width), tea.WithInput(in), tea.WithOutput(out))
	result, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm failed: %w", err)
	}

	final := result.(confirmModel)
	if final.cancelled {
		return false, ErrCancelled
	}
	return final.yes, nil
}
