package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLayout_ContentHeight(t *testing.T) {
	l := NewLayout(100, 40)
	assert.Equal(t, 100, l.ContentWidth())
	assert.Equal(t, 38, l.ContentHeight())
}

func TestLayout_SplitContent(t *testing.T) {
	tests := []struct {
		name      string
		height    int
		wantForm  int
		wantTable int
	}{
		{name: "roomy", height: 50, wantForm: 20, wantTable: 28},
		{name: "tight", height: 20, wantForm: 10, wantTable: 8},
		{name: "tiny", height: 5, wantForm: 0, wantTable: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, table := NewLayout(80, tt.height).SplitContent(20, 8)
			assert.Equal(t, tt.wantForm, form)
			assert.Equal(t, tt.wantTable, table)
		})
	}
}

func TestLayout_RenderHeaderFillsWidth(t *testing.T) {
	l := NewLayout(60, 20)
	header := l.RenderHeader("Contracts", "3 contracts")

	assert.Equal(t, 60, lipgloss.Width(header))
	assert.True(t, strings.Contains(header, "Contracts"))
	assert.True(t, strings.Contains(header, "3 contracts"))
}

func TestLayout_RenderPanelsFillsContentArea(t *testing.T) {
	l := NewLayout(80, 40)
	out := l.RenderPanels("form", "table", true, 18, 8)

	assert.Equal(t, 80, lipgloss.Width(out))
	assert.Equal(t, l.ContentHeight(), lipgloss.Height(out))
	assert.Contains(t, out, "form")
	assert.Contains(t, out, "table")
}

func TestLayout_StatusBarFillsWidth(t *testing.T) {
	bar := NewLayout(60, 20).RenderStatusBar("q quit")

	assert.Equal(t, 60, lipgloss.Width(bar))
	assert.Contains(t, bar, "q quit")
}
