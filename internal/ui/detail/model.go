package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/theme"
)

// upcomingWindow is how far ahead an end date counts as upcoming.
const upcomingWindow = 7 * 24 * time.Hour

// BackMsg signals the parent to navigate back to the main view.
type BackMsg struct{}

// EditMsg signals the parent to load the shown contract into the form.
type EditMsg struct {
	Contract model.Contract
}

// LoadedMsg carries the contract to display. A nil Contract means the
// record no longer exists.
type LoadedMsg struct {
	Contract *model.Contract
	Err      error
}

// Model is the read-only contract detail view.
type Model struct {
	contract *model.Contract
	err      error
	today    time.Time
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
	loading  bool
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     keys,
		width:    width,
		height:   height,
	}
}

// SetLoading marks the view as waiting for a contract.
func (m *Model) SetLoading(today time.Time) {
	m.loading = true
	m.contract = nil
	m.err = nil
	m.today = model.Today(today)
}

// Contract returns the contract being shown, if any.
func (m Model) Contract() *model.Contract {
	return m.contract
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.contract = msg.Contract
		m.err = msg.Err
		m.loading = false
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Edit):
			if m.contract != nil {
				c := *m.contract
				return m, func() tea.Msg { return EditMsg{Contract: c} }
			}
			return m, nil
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	placeholder := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.loading {
		return placeholder.Render("Loading contract...")
	}
	if m.err != nil {
		return placeholder.Foreground(theme.ColorRed).Render(m.err.Error())
	}
	if m.contract == nil {
		return placeholder.Render("Contract no longer exists")
	}

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(m.viewport.View())
}

func (m Model) renderContent() string {
	if m.contract == nil {
		return ""
	}
	c := m.contract

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)

	end := c.EndDateString() + "  (due)"
	if !c.IsDue(m.today) {
		days := int(c.EndDate.Sub(m.today).Hours() / 24)
		end = fmt.Sprintf("%s  (in %d days)", c.EndDateString(), days)
	}
	end = endDateStyle(*c, m.today).Render(end)

	sections := []string{
		titleStyle.Render(c.Name),
		"",
		fmt.Sprintf("%s        %s", metaStyle.Render("ID:"), valStyle.Render(fmt.Sprint(c.ID))),
		fmt.Sprintf("%s  %s", metaStyle.Render("End Date:"), end),
		"",
		lipgloss.NewStyle().Foreground(theme.ColorSubtle).
			Render(strings.Repeat("─", max(min(m.width-8, 80), 0))),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render("Description"),
	}

	if strings.TrimSpace(c.Description) == "" {
		sections = append(sections, theme.DimmedStyle.Render("No description."))
	} else {
		sections = append(sections, c.Description)
	}

	return strings.Join(sections, "\n")
}

// endDateStyle highlights contracts that are due or end within a week.
func endDateStyle(c model.Contract, today time.Time) lipgloss.Style {
	switch {
	case c.IsDue(today):
		return theme.DueStyle
	case c.EndDate.Sub(today) <= upcomingWindow:
		return theme.UpcomingStyle
	default:
		return lipgloss.NewStyle().Foreground(theme.ColorWhite)
	}
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 8
	m.viewport.Height = height - 4
	m.viewport.SetContent(m.renderContent())
}
