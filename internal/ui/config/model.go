package config

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/theme"
)

// ConfigDoneMsg signals the settings view should close without saving.
type ConfigDoneMsg struct{}

// ConfigSavedMsg is sent after the settings have been written. Config is
// the configuration as saved.
type ConfigSavedMsg struct {
	Config model.AppConfig
	Err    error
}

// settingsBindings holds form field values on the heap so huh's Value()
// pointers stay valid across Bubble Tea model copies.
type settingsBindings struct {
	remindOnStartup bool
	theme           string
	logLevel        string
	save            bool
}

// Model edits the user-adjustable part of the application configuration.
// The database and log file locations are shown but not editable while
// the program runs.
type Model struct {
	form    *huh.Form
	fb      *settingsBindings
	cfg     model.AppConfig
	path    string
	saving  bool
	spinner spinner.Model
	keys    *keys.KeyMap

	width, height int
}

// New creates a settings view for cfg, saving to the file at path.
func New(k *keys.KeyMap, cfg model.AppConfig, path string, width, height int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		fb:      &settingsBindings{},
		cfg:     cfg,
		path:    path,
		spinner: sp,
		keys:    k,
		width:   width,
		height:  height,
	}
}

// Config returns the configuration the view was last given or saved.
func (m Model) Config() model.AppConfig {
	return m.cfg
}

// Start rebuilds the form from the current configuration.
func (m *Model) Start() tea.Cmd {
	m.saving = false
	m.fb.remindOnStartup = m.cfg.Reminders.OnStartup
	m.fb.theme = m.cfg.Display.Theme
	if m.fb.theme == "" {
		m.fb.theme = theme.Default
	}
	m.fb.logLevel = m.cfg.Log.Level
	m.fb.save = true

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Check reminders on startup").
				Value(&m.fb.remindOnStartup),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Default colors", theme.Default),
					huh.NewOption("Monochrome", theme.Monochrome),
				).
				Value(&m.fb.theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&m.fb.logLevel),
			huh.NewConfirm().
				Title("Save settings?").
				Affirmative("Save").
				Negative("Discard").
				Value(&m.fb.save),
		),
	).WithShowHelp(false).WithWidth(min(max(m.width-8, 40), 80))

	return m.form.Init()
}

// Update handles messages for the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfigSavedMsg:
		m.saving = false
		if msg.Err == nil {
			m.cfg = msg.Config
		}
		return m, nil

	case spinner.TickMsg:
		if m.saving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return ConfigDoneMsg{} }
		}
	}

	if m.form == nil || m.saving {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if !m.fb.save {
			return m, func() tea.Msg { return ConfigDoneMsg{} }
		}
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.saveConfig(m.edited()))
	case huh.StateAborted:
		return m, func() tea.Msg { return ConfigDoneMsg{} }
	}

	return m, cmd
}

// edited returns the configuration with the form values applied.
func (m Model) edited() model.AppConfig {
	cfg := m.cfg
	cfg.Reminders.OnStartup = m.fb.remindOnStartup
	cfg.Display.Theme = m.fb.theme
	cfg.Log.Level = m.fb.logLevel
	return cfg
}

// saveConfig returns a command that writes cfg to the settings file.
func (m Model) saveConfig(cfg model.AppConfig) tea.Cmd {
	path := m.path
	return func() tea.Msg {
		err := model.SaveConfig(path, &cfg)
		return ConfigSavedMsg{Config: cfg, Err: err}
	}
}

// View renders the settings form.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)
	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	body := ""
	switch {
	case m.saving:
		body = m.spinner.View() + " Saving settings..."
	case m.form != nil:
		body = m.form.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Settings"),
		metaStyle.Render(fmt.Sprintf("Database: %s", m.cfg.Database.Path)),
		metaStyle.Render(fmt.Sprintf("Log file: %s", m.cfg.Log.File)),
		metaStyle.Render(fmt.Sprintf("Saved to: %s", m.path)),
		"",
		body,
	)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the settings view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(min(max(width-8, 40), 80))
	}
}
