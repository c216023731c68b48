package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/store"
	"github.com/nhle/contract-tracker/internal/theme"
	"github.com/nhle/contract-tracker/internal/tracker"
	"github.com/nhle/contract-tracker/internal/ui"
	"github.com/nhle/contract-tracker/internal/ui/command"
	configview "github.com/nhle/contract-tracker/internal/ui/config"
	"github.com/nhle/contract-tracker/internal/ui/contractform"
	"github.com/nhle/contract-tracker/internal/ui/contracttable"
	"github.com/nhle/contract-tracker/internal/ui/detail"
	"github.com/nhle/contract-tracker/internal/ui/dialog"
	helpview "github.com/nhle/contract-tracker/internal/ui/help"
)

// Height limits for the form and table panels on the main view.
const (
	formPanelMax  = 18
	tablePanelMin = 8
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewMain ViewState = iota
	ViewDetail
	ViewHelp
	ViewCommand
	ViewSettings
)

// Options configures the root model.
type Options struct {
	// RemindOnStartup runs a reminder check as soon as the program starts.
	RemindOnStartup bool
	// Source names the database file, shown in the help overlay.
	Source string
	// Config is the configuration in effect, edited by the settings view
	// and written back to ConfigPath.
	Config     model.AppConfig
	ConfigPath string
	Logger     zerolog.Logger
}

// Model is the root Bubble Tea model. It routes input between the entry
// form and the contract table and turns tracker results into dialogs.
type Model struct {
	currentView     ViewState
	layout          ui.Layout
	tracker         *tracker.Tracker
	log             zerolog.Logger
	keys            *keys.KeyMap
	form            contractform.Model
	table           contracttable.Model
	detail          detail.Model
	helpView        helpview.Model
	commandView     command.Model
	settingsView    configview.Model
	dialog          dialog.Model
	remindOnStartup bool
	// pendingReload defers the table reload until the confirmation dialog
	// has been dismissed.
	pendingReload bool
	ready         bool
}

// New creates the root application model on top of t.
func New(t *tracker.Tracker, opts Options) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		currentView:     ViewMain,
		tracker:         t,
		log:             opts.Logger.With().Str("component", "app").Logger(),
		keys:            k,
		form:            contractform.New(t.Today, 80, formPanelMax),
		table:           contracttable.New(k, 80, 24-formPanelMax),
		detail:          detail.New(k, 80, 24),
		helpView:        helpview.New(k, opts.Source, 80, 24),
		commandView:     command.New(80, 24),
		settingsView:    configview.New(k, opts.Config, opts.ConfigPath, 80, 24),
		dialog:          dialog.New(k, 80, 24),
		remindOnStartup: opts.RemindOnStartup,
	}
	m.focusForm()
	return m
}

// Init loads the table, starts the form and, if configured, checks for
// due contracts.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadContracts(), m.form.Init()}
	if m.remindOnStartup {
		cmds = append(cmds, m.checkReminders(true))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		// Forward to the form so huh can calculate its layout.
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case contractsLoadedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("loading contracts")
			m.dialog.Open(dialog.Error, "Storage Error", msg.err.Error())
			return m, nil
		}
		m.table.SetContracts(msg.contracts, msg.today)
		return m, nil

	case contractform.SubmittedMsg:
		return m, m.submit(msg.Mode, msg.Draft)

	case contractform.CancelledMsg:
		cmd := m.form.Reset()
		if msg.Mode.IsEditing() {
			m.focusTable()
		}
		return m, cmd

	case submitResultMsg:
		m.pendingReload = true
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("mode", msg.mode.String()).Msg("submit failed")
			m.openError(msg.err)
			return m, m.form.Reopen()
		}
		m.dialog.Open(dialog.Info, "Success", msg.outcome.Notice)
		return m, m.form.Reset()

	case deleteResultMsg:
		m.pendingReload = true
		if msg.err != nil {
			m.log.Error().Err(msg.err).Int64("id", msg.id).Msg("delete failed")
			m.openError(msg.err)
			return m, nil
		}
		m.dialog.Open(dialog.Info, "Success", msg.notice)
		if mode := m.form.Mode(); mode.IsEditing() && mode.ContractID() == msg.id {
			return m, m.form.Reset()
		}
		return m, nil

	case remindersCheckedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Bool("startup", msg.startup).Msg("reminder check failed")
			m.openError(msg.err)
			return m, nil
		}
		kind := dialog.Info
		if msg.reminders.Any() {
			kind = dialog.Warning
		}
		m.dialog.Open(kind, msg.reminders.Title(), msg.reminders.Message())
		return m, nil

	case dialog.DismissedMsg:
		if msg.Remaining == 0 && m.pendingReload {
			m.pendingReload = false
			return m, m.loadContracts()
		}
		return m, nil

	case contracttable.EditRequestMsg:
		return m, m.startEdit(msg.Contract)

	case contracttable.DeleteRequestMsg:
		return m, m.deleteContract(msg.ID)

	case contracttable.ViewRequestMsg:
		m.currentView = ViewDetail
		m.detail.SetLoading(m.tracker.Today())
		return m, m.loadDetail(msg.ID)

	case detail.LoadedMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case detail.BackMsg:
		m.currentView = ViewMain
		return m, nil

	case detail.EditMsg:
		m.currentView = ViewMain
		return m, m.startEdit(msg.Contract)

	case helpview.CloseMsg:
		m.currentView = ViewMain
		return m, nil

	case configview.ConfigDoneMsg:
		m.currentView = ViewMain
		return m, nil

	case configview.ConfigSavedMsg:
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		m.currentView = ViewMain
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("saving settings")
			m.dialog.Open(dialog.Error, "Settings Not Saved", msg.Err.Error())
			return m, cmd
		}
		m.remindOnStartup = msg.Config.Reminders.OnStartup
		if err := theme.Apply(msg.Config.Display.Theme); err != nil {
			m.log.Warn().Err(err).Msg("applying theme")
		}
		m.dialog.Open(dialog.Info, "Settings Saved", "Log level changes take effect on the next start.")
		return m, cmd

	case command.CloseMsg:
		m.commandView.Blur()
		m.currentView = ViewMain
		return m, nil

	case command.ExecuteMsg:
		m.commandView.Blur()
		m.currentView = ViewMain
		return m.executeCommand(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages (cursor blink, spinner ticks, huh internals)
	// belong to whichever form is on screen.
	var cmd tea.Cmd
	switch m.currentView {
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	default:
		m.form, cmd = m.form.Update(msg)
	}
	return m, cmd
}

// handleKey routes a key press. An open dialog owns every key except
// ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.dialog.IsOpen() {
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	switch m.currentView {
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	}

	if m.form.Focused() {
		if key.Matches(msg, m.keys.Cancel) {
			if m.form.Mode().IsEditing() {
				m.log.Debug().Str("mode", m.form.Mode().String()).Msg("edit cancelled")
				cmd = m.form.Reset()
			}
			m.focusTable()
			return m, cmd
		}
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.currentView = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.currentView = ViewCommand
		return m, m.commandView.Focus()

	case key.Matches(msg, m.keys.New):
		cmd = m.form.Reset()
		m.focusForm()
		return m, cmd

	case key.Matches(msg, m.keys.Focus):
		m.focusForm()
		return m, nil

	case key.Matches(msg, m.keys.Reminders):
		return m, m.checkReminders(false)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadContracts()

	case key.Matches(msg, m.keys.Settings):
		return m.openSettings()
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// executeCommand runs a command palette action.
func (m Model) executeCommand(msg command.ExecuteMsg) (tea.Model, tea.Cmd) {
	switch msg.Command {
	case command.Add:
		cmd := m.form.Reset()
		m.focusForm()
		return m, cmd
	case command.Reminders:
		return m, m.checkReminders(false)
	case command.Refresh:
		return m, m.loadContracts()
	case command.Help:
		m.currentView = ViewHelp
		return m, nil
	case command.Settings:
		return m.openSettings()
	case command.Quit:
		return m, tea.Quit
	default:
		m.dialog.Open(dialog.Warning, "Unknown Command", fmt.Sprintf("Unknown command %q.", msg.Input))
		return m, nil
	}
}

// openSettings switches to the settings view with a fresh form.
func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.currentView = ViewSettings
	return m, m.settingsView.Start()
}

// startEdit loads c into the form and moves focus there.
func (m *Model) startEdit(c model.Contract) tea.Cmd {
	m.log.Debug().Int64("id", c.ID).Msg("editing contract")
	cmd := m.form.StartEdit(c)
	m.focusForm()
	return cmd
}

// openError shows err in a dialog. Validation problems are warnings,
// everything else is a storage error.
func (m *Model) openError(err error) {
	if store.IsValidation(err) {
		m.dialog.Open(dialog.Warning, "Invalid Contract", err.Error())
		return
	}
	m.dialog.Open(dialog.Error, "Storage Error", err.Error())
}

func (m *Model) focusForm() {
	m.table.Blur()
	m.form.Focus()
}

func (m *Model) focusTable() {
	m.form.Blur()
	m.table.Focus()
}

// resize distributes the content area between the panels.
func (m *Model) resize() {
	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()
	formH, tableH := m.layout.SplitContent(formPanelMax, tablePanelMin)

	// Panels are framed by a one-cell border.
	m.form.SetSize(w-2, formH-2)
	m.table.SetSize(w-2, tableH-2)
	m.detail.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
	m.settingsView.SetSize(w, h)
	m.dialog.SetSize(w, h)
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	summary := fmt.Sprintf("%d contracts | %d due", len(m.table.Contracts()), m.table.DueCount())
	header := m.layout.RenderHeader("Contract Tracker", summary)
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.Frame(header, m.renderContent(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	if m.dialog.IsOpen() {
		return m.dialog.View()
	}

	switch m.currentView {
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return m.layout.RenderPanels(m.form.View(), m.table.View(), m.form.Focused(), formPanelMax, tablePanelMin)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.dialog.IsOpen() {
		return "enter ok"
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewDetail:
		return "esc back | e edit | j/k scroll"
	case ViewSettings:
		return "tab next field | enter confirm | esc back"
	}

	if m.form.Focused() {
		if m.form.Mode().IsEditing() {
			return "tab next field | enter submit | esc cancel edit"
		}
		return "tab next field | enter submit | esc to table"
	}
	return "q quit | ? help | n add | e edit | d delete | enter view | r reminders | : command"
}
