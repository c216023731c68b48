package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/theme"
)

// Kind selects the look of a dialog.
type Kind int

const (
	Info Kind = iota
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// DismissedMsg is sent after the user closes a dialog. Remaining reports
// how many dialogs are still queued.
type DismissedMsg struct {
	Remaining int
}

type entry struct {
	kind  Kind
	title string
	body  string
}

// Model is a queue of modal dialogs. While any dialog is open it owns all
// key input; dismissing one reveals the next.
type Model struct {
	queue  []entry
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates an empty dialog queue.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// Open queues a dialog behind any that are already open.
func (m *Model) Open(kind Kind, title, body string) {
	m.queue = append(m.queue, entry{kind: kind, title: title, body: body})
}

// IsOpen reports whether a dialog is showing.
func (m Model) IsOpen() bool {
	return len(m.queue) > 0
}

// Current returns the kind, title and body of the visible dialog.
func (m Model) Current() (Kind, string, string, bool) {
	if len(m.queue) == 0 {
		return Info, "", "", false
	}
	e := m.queue[0]
	return e.kind, e.title, e.body, true
}

// Update closes the visible dialog on a dismiss key.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.queue) == 0 {
		return m, nil
	}
	if !key.Matches(keyMsg, m.keys.Dismiss) {
		return m, nil
	}

	m.queue = m.queue[1:]
	remaining := len(m.queue)
	return m, func() tea.Msg { return DismissedMsg{Remaining: remaining} }
}

// View renders the visible dialog centered in the content area.
func (m Model) View() string {
	if len(m.queue) == 0 {
		return ""
	}
	e := m.queue[0]

	boxWidth := m.width - 8
	if boxWidth > 70 {
		boxWidth = 70
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.DialogTitleStyle(e.kind.String()).Render(e.title),
		lipgloss.NewStyle().Width(boxWidth-6).Render(e.body),
		"",
		theme.HelpStyle.Render("enter ok"),
	)
	box := theme.DialogStyle(e.kind.String()).Width(boxWidth).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize updates the area dialogs are centered in.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
