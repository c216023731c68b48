package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"add", Add},
		{"  New ", Add},
		{"reminders", Reminders},
		{"check", Reminders},
		{"RELOAD", Refresh},
		{"help", Help},
		{"config", Settings},
		{"q", Quit},
		{"delete everything", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_EnterExecutes(t *testing.T) {
	m := New(80, 24)
	m.Focus()
	m = typeText(m, "reminders")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ExecuteMsg{Command: Reminders, Input: "reminders"}, cmd())
	assert.Empty(t, m.input.Value())
}

func TestModel_EmptyEnterAndEscClose(t *testing.T) {
	m := New(80, 24)
	m.Focus()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())

	m = typeText(m, "add")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
	assert.Empty(t, m.input.Value())
}
