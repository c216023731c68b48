package contractform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/theme"
	"github.com/nhle/contract-tracker/internal/tracker"
)

// SubmittedMsg is dispatched when the user confirms the form. Mode is the
// form's mode at the time of the submit.
type SubmittedMsg struct {
	Mode  tracker.Mode
	Draft model.Draft
}

// CancelledMsg is dispatched when the user declines the submit button.
type CancelledMsg struct {
	Mode tracker.Mode
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name        string
	description string
	endDate     string
	submit      bool
}

// Model is the Bubble Tea model for the contract entry form.
type Model struct {
	form    *huh.Form
	fb      *formBindings
	mode    tracker.Mode
	today   func() time.Time
	focused bool
	// done is set once the form has produced its result, so that later
	// messages cannot emit it twice.
	done    bool
	width   int
	height  int
}

// New creates a contract form in create mode. today supplies the default
// end date.
func New(today func() time.Time, width, height int) Model {
	m := Model{
		fb:     &formBindings{},
		mode:   tracker.Creating(),
		today:  today,
		width:  width,
		height: height,
	}
	m.Reset()
	return m
}

// Init returns the form's initial command.
func (m Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Mode returns the current submit target.
func (m Model) Mode() tracker.Mode {
	return m.mode
}

// Values returns the raw field contents.
func (m Model) Values() (name, description, endDate string) {
	return m.fb.name, m.fb.description, m.fb.endDate
}

// Reset clears all fields, sets the end date to today and returns to
// create mode.
func (m *Model) Reset() tea.Cmd {
	m.mode = tracker.Creating()
	m.fb.name = ""
	m.fb.description = ""
	m.fb.endDate = model.FormatDate(m.today())
	return m.rebuild()
}

// StartEdit pre-fills the form with c and targets it for the next submit.
func (m *Model) StartEdit(c model.Contract) tea.Cmd {
	m.mode = tracker.Editing(c.ID)
	m.fb.name = c.Name
	m.fb.description = c.Description
	m.fb.endDate = c.EndDateString()
	return m.rebuild()
}

// Reopen rebuilds the form with its current values and mode, for instance
// after a submit that failed.
func (m *Model) Reopen() tea.Cmd {
	return m.rebuild()
}

// Focus gives the form key focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes key focus from the form.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the form has key focus.
func (m Model) Focused() bool {
	return m.focused
}

// Update handles messages for the contract form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil || m.done {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		mode := m.mode
		if !m.fb.submit {
			return m, func() tea.Msg { return CancelledMsg{Mode: mode} }
		}
		draft, err := m.draft()
		if err != nil {
			// The field validators make this unreachable; keep the form open.
			return m, m.Reopen()
		}
		return m, func() tea.Msg { return SubmittedMsg{Mode: mode, Draft: draft} }
	case huh.StateAborted:
		m.done = true
		mode := m.mode
		return m, func() tea.Msg { return CancelledMsg{Mode: mode} }
	}

	return m, cmd
}

// View renders the form with a title reflecting the mode.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Contract"
	if m.mode.IsEditing() {
		titleText = fmt.Sprintf("Edit Contract #%d", m.mode.ContractID())
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite)
	if m.focused {
		titleStyle = titleStyle.Foreground(theme.ColorBlue)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(titleText),
		m.form.View(),
	)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth()).WithHeight(m.formHeight())
	}
}

func (m *Model) rebuild() tea.Cmd {
	m.done = false
	m.fb.submit = true
	label := m.mode.SubmitLabel()
	negative := "Clear"
	if m.mode.IsEditing() {
		negative = "Cancel"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Contract Name").
				Placeholder("e.g. Office lease").
				Value(&m.fb.name).
				Validate(validateRequired("Contract name")),
			huh.NewText().
				Title("Contract Description").
				Placeholder("Optional details...").
				Lines(3).
				Value(&m.fb.description),
			huh.NewInput().
				Title("End Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.fb.endDate).
				Validate(validateDate),
			huh.NewConfirm().
				Title(label).
				Affirmative(label).
				Negative(negative).
				Value(&m.fb.submit),
		),
	).WithShowHelp(false).WithWidth(m.formWidth()).WithHeight(m.formHeight())

	return m.form.Init()
}

func (m Model) draft() (model.Draft, error) {
	end, err := model.ParseDate(m.fb.endDate)
	if err != nil {
		return model.Draft{}, err
	}
	return model.Draft{
		Name:        m.fb.name,
		Description: m.fb.description,
		EndDate:     end,
	}, nil
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 2
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// validateDate accepts only real calendar dates in YYYY-MM-DD form.
func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("end date is required")
	}
	if _, err := model.ParseDate(s); err != nil {
		return err
	}
	return nil
}
