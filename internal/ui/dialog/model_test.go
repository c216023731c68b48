package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/contract-tracker/internal/keys"
)

func TestDialog_QueueAndDismiss(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 20)
	assert.False(t, m.IsOpen())

	m.Open(Warning, "Reminders", "Contract: Acme Lease, End Date: 2024-01-01")
	m.Open(Info, "Success", "Contract added successfully!")
	require.True(t, m.IsOpen())

	kind, title, body, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, Warning, kind)
	assert.Equal(t, "Reminders", title)
	assert.Contains(t, body, "Acme Lease")
	assert.True(t, strings.Contains(m.View(), "Reminders"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, DismissedMsg{Remaining: 1}, cmd())

	_, title, _, _ = m.Current()
	assert.Equal(t, "Success", title)

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, DismissedMsg{Remaining: 0}, cmd())
	assert.False(t, m.IsOpen())
}

func TestDialog_IgnoresOtherKeys(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 20)
	m.Open(Error, "Error", "disk I/O error")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	assert.Nil(t, cmd)
	assert.True(t, m.IsOpen())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
}
