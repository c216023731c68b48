package contracttable

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sample() []model.Contract {
	return []model.Contract{
		{ID: 1, Name: "Acme Lease", Description: "Office lease", EndDate: day(2024, time.January, 1)},
		{ID: 2, Name: "Cleaning", Description: "Weekly\nMondays", EndDate: day(2024, time.June, 5)},
		{ID: 5, Name: "Insurance", Description: "", EndDate: day(2025, time.January, 1)},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFocused(t *testing.T) Model {
	t.Helper()
	m := New(keys.DefaultKeyMap(), 100, 12)
	m.SetContracts(sample(), day(2024, time.June, 1))
	m.Focus()
	return m
}

func TestSetContracts_BuildsRows(t *testing.T) {
	m := newFocused(t)

	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "Acme Lease", rows[0][1])
	assert.Equal(t, "2024-01-01", rows[0][3])
	assert.Equal(t, StatusDue, rows[0][4])
	assert.Equal(t, "Weekly …", rows[1][2])
	assert.Equal(t, StatusSoon, rows[1][4])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, 1, m.DueCount())
}

func TestSetContracts_FullRebuild(t *testing.T) {
	m := newFocused(t)
	m.table.SetCursor(2)

	m.SetContracts(sample()[:1], day(2024, time.June, 1))

	require.Len(t, m.table.Rows(), 1)
	c, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), c.ID)
}

func TestUpdate_EditRequestsSelectedRow(t *testing.T) {
	m := newFocused(t)
	m.table.SetCursor(1)

	_, cmd := m.Update(keyRunes("e"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(EditRequestMsg)
	require.True(t, ok)
	assert.Equal(t, int64(2), msg.Contract.ID)
	assert.Equal(t, "Weekly\nMondays", msg.Contract.Description)
}

func TestUpdate_DeleteRequestsSelectedRow(t *testing.T) {
	m := newFocused(t)
	m.table.SetCursor(2)

	_, cmd := m.Update(keyRunes("d"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(DeleteRequestMsg)
	require.True(t, ok)
	assert.Equal(t, int64(5), msg.ID)
}

func TestUpdate_EnterRequestsView(t *testing.T) {
	m := newFocused(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(ViewRequestMsg)
	require.True(t, ok)
	assert.Equal(t, int64(1), msg.ID)
}

func TestUpdate_NoActionsWhenEmptyOrBlurred(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 100, 12)
	m.Focus()
	_, cmd := m.Update(keyRunes("e"))
	assert.Nil(t, cmd)

	m = newFocused(t)
	m.Blur()
	_, cmd = m.Update(keyRunes("d"))
	assert.Nil(t, cmd)
}

func TestView_EmptyState(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 60, 6)
	assert.True(t, strings.Contains(m.View(), "No contracts yet"))
}

func TestColumns_FitWidth(t *testing.T) {
	total := 0
	for _, c := range columns(120) {
		total += c.Width + 2
	}
	assert.Equal(t, 120, total)
}

func TestSetSize_KeepsAtLeastOneRow(t *testing.T) {
	m := newFocused(t)

	m.SetSize(100, 2)
	minimum := m.table.Height()

	m.SetSize(100, 0)
	assert.Equal(t, minimum, m.table.Height())

	m.SetSize(100, 12)
	assert.Equal(t, minimum+10, m.table.Height())
}
