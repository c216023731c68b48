package detail

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/contract-tracker/internal/keys"
	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/theme"
)

func loaded(t *testing.T, c *model.Contract) Model {
	t.Helper()
	m := New(keys.DefaultKeyMap(), 80, 20)
	m.SetLoading(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	m, _ = m.Update(LoadedMsg{Contract: c})
	return m
}

func TestDetail_RendersContract(t *testing.T) {
	m := loaded(t, &model.Contract{
		ID:          3,
		Name:        "Acme Lease",
		Description: "Office lease\nsecond floor",
		EndDate:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	})

	content := m.renderContent()
	assert.True(t, strings.Contains(content, "Acme Lease"))
	assert.True(t, strings.Contains(content, "2024-01-01"))
	assert.True(t, strings.Contains(content, "(due)"))
	assert.True(t, strings.Contains(content, "second floor"))
}

func TestDetail_UpcomingShowsDaysLeft(t *testing.T) {
	m := loaded(t, &model.Contract{
		ID:      4,
		Name:    "Insurance",
		EndDate: time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
	})

	content := m.renderContent()
	assert.True(t, strings.Contains(content, "in 10 days"))
	assert.True(t, strings.Contains(content, "No description."))
}

func TestDetail_EditAndBack(t *testing.T) {
	c := &model.Contract{ID: 7, Name: "Support", EndDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)}
	m := loaded(t, c)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)
	edit, ok := cmd().(EditMsg)
	require.True(t, ok)
	assert.Equal(t, int64(7), edit.Contract.ID)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestDetail_MissingAndError(t *testing.T) {
	m := loaded(t, nil)
	assert.True(t, strings.Contains(m.View(), "no longer exists"))

	m = New(keys.DefaultKeyMap(), 80, 20)
	m, _ = m.Update(LoadedMsg{Err: errors.New("disk I/O error")})
	assert.True(t, strings.Contains(m.View(), "disk I/O error"))
}

func TestEndDateStyle(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	at := func(y int, mo time.Month, d int) model.Contract {
		return model.Contract{EndDate: time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)}
	}

	assert.Equal(t, theme.DueStyle, endDateStyle(at(2024, time.June, 1), today))
	assert.Equal(t, theme.UpcomingStyle, endDateStyle(at(2024, time.June, 8), today))
	assert.NotEqual(t, theme.UpcomingStyle, endDateStyle(at(2024, time.June, 9), today))
}
