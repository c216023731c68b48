package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/theme"
)

// Command is a palette action understood by the application.
type Command int

const (
	Unknown Command = iota
	Add
	Reminders
	Refresh
	Help
	Settings
	Quit
)

// aliases maps palette input to commands.
var aliases = map[string]Command{
	"add":       Add,
	"new":       Add,
	"reminders": Reminders,
	"remind":    Reminders,
	"check":     Reminders,
	"refresh":   Refresh,
	"reload":    Refresh,
	"help":      Help,
	"settings":  Settings,
	"config":    Settings,
	"quit":      Quit,
	"q":         Quit,
}

// Parse maps palette input to a Command. Matching is case-insensitive and
// ignores surrounding whitespace.
func Parse(input string) Command {
	if c, ok := aliases[strings.ToLower(strings.TrimSpace(input))]; ok {
		return c
	}
	return Unknown
}

// ExecuteMsg is emitted when the user runs a command.
type ExecuteMsg struct {
	Command Command
	Input   string
}

// CloseMsg is emitted when the palette is dismissed without a command.
type CloseMsg struct{}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	cancel key.Binding
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "add, reminders, refresh, settings, help, quit"
	ti.Prompt = ": "
	ti.CharLimit = 32
	ti.Width = width - 6

	return Model{
		input:  ti,
		cancel: key.NewBinding(key.WithKeys("esc")),
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.cancel):
			m.input.Reset()
			return m, func() tea.Msg { return CloseMsg{} }

		case msg.Type == tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, func() tea.Msg { return CloseMsg{} }
			}
			return m, func() tea.Msg {
				return ExecuteMsg{Command: Parse(input), Input: input}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Command Palette"),
		m.input.View(),
	)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus from the text input.
func (m *Model) Blur() {
	m.input.Blur()
}
