package contracttable

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/theme"
)

// EditRequestMsg asks the parent to load a row into the entry form.
type EditRequestMsg struct {
	Contract model.Contract
}

// DeleteRequestMsg asks the parent to delete a row.
type DeleteRequestMsg struct {
	ID int64
}

// ViewRequestMsg asks the parent to open the detail panel for a row.
type ViewRequestMsg struct {
	ID int64
}

// upcomingWindow is how far ahead a contract is flagged as ending soon.
const upcomingWindow = 7 * 24 * time.Hour

// Status labels shown in the table.
const (
	StatusDue  = "DUE"
	StatusSoon = "soon"
)

// Model is the contract table with per-row edit and delete actions.
type Model struct {
	table     table.Model
	keys      *keys.KeyMap
	contracts []model.Contract
	today     time.Time
	width     int
	height    int
}

// New creates an empty contract table.
func New(k *keys.KeyMap, width, height int) Model {
	t := table.New(
		table.WithColumns(columns(width)),
		table.WithHeight(height-1),
	)

	styles := table.DefaultStyles()
	styles.Header = theme.TableHeaderStyle
	styles.Selected = theme.TableSelectedStyle
	t.SetStyles(styles)

	return Model{
		table:  t,
		keys:   k,
		width:  width,
		height: height,
	}
}

// columns sizes the table columns to fit width. Name and description share
// whatever the fixed columns leave over.
func columns(width int) []table.Column {
	const (
		idW      = 5
		endW     = 10
		statusW  = 6
		actionsW = 15
		padding  = 12 // two cells of padding per column
	)

	flex := width - idW - endW - statusW - actionsW - padding
	if flex < 20 {
		flex = 20
	}
	nameW := flex * 2 / 5
	descW := flex - nameW

	return []table.Column{
		{Title: "ID", Width: idW},
		{Title: "Name", Width: nameW},
		{Title: "Description", Width: descW},
		{Title: "End Date", Width: endW},
		{Title: "Status", Width: statusW},
		{Title: "Actions", Width: actionsW},
	}
}

// SetContracts replaces every row of the table with contracts. today is
// used for the status column.
func (m *Model) SetContracts(contracts []model.Contract, today time.Time) {
	m.contracts = contracts
	m.today = model.Today(today)

	rows := make([]table.Row, len(contracts))
	for i, c := range contracts {
		rows[i] = table.Row{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			summarize(c.Description),
			c.EndDateString(),
			status(c, m.today),
			"[e]dit [d]elete",
		}
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
	if m.table.Cursor() < 0 && len(rows) > 0 {
		m.table.SetCursor(0)
	}
}

// Contracts returns the contracts currently shown.
func (m Model) Contracts() []model.Contract {
	return m.contracts
}

// DueCount returns how many of the shown contracts are due.
func (m Model) DueCount() int {
	n := 0
	for _, c := range m.contracts {
		if c.IsDue(m.today) {
			n++
		}
	}
	return n
}

// Selected returns the contract under the cursor.
func (m Model) Selected() (model.Contract, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.contracts) {
		return model.Contract{}, false
	}
	return m.contracts[i], true
}

// Focus gives the table key focus.
func (m *Model) Focus() {
	m.table.Focus()
}

// Blur removes key focus from the table.
func (m *Model) Blur() {
	m.table.Blur()
}

// Focused reports whether the table has key focus.
func (m Model) Focused() bool {
	return m.table.Focused()
}

// Update handles row actions and delegates navigation to the table.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.table.Focused() {
		switch {
		case key.Matches(msg, m.keys.Edit):
			if c, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditRequestMsg{Contract: c} }
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if c, ok := m.Selected(); ok {
				id := c.ID
				return m, func() tea.Msg { return DeleteRequestMsg{ID: id} }
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if c, ok := m.Selected(); ok {
				id := c.ID
				return m, func() tea.Msg { return ViewRequestMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, or a hint when there are no contracts.
func (m Model) View() string {
	if len(m.contracts) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.DimmedStyle.Render("No contracts yet. Press 'n' to add one."))
	}
	return m.table.View()
}

// SetSize updates the table dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(columns(width))
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-1, 1))
}

// summarize reduces a multi-line description to its first line.
func summarize(desc string) string {
	desc = strings.TrimSpace(desc)
	first, _, more := strings.Cut(desc, "\n")
	first = strings.TrimSpace(first)
	if more {
		return first + " …"
	}
	return first
}

func status(c model.Contract, today time.Time) string {
	if c.IsDue(today) {
		return StatusDue
	}
	if c.EndDate.Sub(today) <= upcomingWindow {
		return StatusSoon
	}
	return ""
}
