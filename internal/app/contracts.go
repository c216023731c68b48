package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/store"
	"github.com/nhle/contract-tracker/internal/tracker"
	"github.com/nhle/contract-tracker/internal/ui/detail"
)

// contractsLoadedMsg carries a full reload of the contract table.
type contractsLoadedMsg struct {
	contracts []model.Contract
	today     time.Time
	err       error
}

// submitResultMsg is sent after a create or update has been attempted.
type submitResultMsg struct {
	mode    tracker.Mode
	outcome tracker.Outcome
	err     error
}

// deleteResultMsg is sent after a delete has been attempted.
type deleteResultMsg struct {
	id     int64
	notice string
	err    error
}

// remindersCheckedMsg carries the result of a reminder check.
type remindersCheckedMsg struct {
	reminders tracker.Reminders
	startup   bool
	err       error
}

// loadContracts returns a command that reads every contract.
func (m Model) loadContracts() tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		contracts, err := t.Contracts(context.Background())
		return contractsLoadedMsg{contracts: contracts, today: t.Today(), err: err}
	}
}

// submit returns a command that persists d according to mode.
func (m Model) submit(mode tracker.Mode, d model.Draft) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		outcome, err := t.Submit(context.Background(), mode, d)
		return submitResultMsg{mode: mode, outcome: outcome, err: err}
	}
}

// deleteContract returns a command that removes the contract with id.
func (m Model) deleteContract(id int64) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		notice, err := t.Delete(context.Background(), id)
		return deleteResultMsg{id: id, notice: notice, err: err}
	}
}

// checkReminders returns a command that runs a reminder check.
func (m Model) checkReminders(startup bool) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		r, err := t.CheckReminders(context.Background())
		return remindersCheckedMsg{reminders: r, startup: startup, err: err}
	}
}

// loadDetail returns a command that loads one contract for the detail view.
// A contract deleted in the meantime is reported as a nil contract.
func (m Model) loadDetail(id int64) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		c, err := t.Contract(context.Background(), id)
		if errors.Is(err, store.ErrNotFound) {
			return detail.LoadedMsg{}
		}
		return detail.LoadedMsg{Contract: c, Err: err}
	}
}
