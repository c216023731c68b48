package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/contract-tracker/internal/theme"
)

// chromeHeight is the number of lines taken by the header and status bar.
const chromeHeight = 2

// Layout sizes the screen: a one-line header, the content area and a
// one-line status bar. On the main view the content area is split into
// the entry form above the contract table.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout for a terminal of the given size.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentWidth returns the width of the content area.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height left between header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-chromeHeight, 0)
}

// SplitContent divides the content height between the entry form on top
// and the contract table below. The form gets at most formMax lines and
// the table never drops below tableMin.
func (l Layout) SplitContent(formMax, tableMin int) (formHeight, tableHeight int) {
	h := l.ContentHeight()
	formHeight = max(min(formMax, h-tableMin), 0)
	return formHeight, max(h-formHeight, 0)
}

// RenderPanels frames form and table in the split computed by
// SplitContent, highlighting whichever panel has key focus.
func (l Layout) RenderPanels(form, table string, formFocused bool, formMax, tableMin int) string {
	formH, tableH := l.SplitContent(formMax, tableMin)

	formStyle, tableStyle := theme.BlurredPanelStyle, theme.FocusedPanelStyle
	if formFocused {
		formStyle, tableStyle = theme.FocusedPanelStyle, theme.BlurredPanelStyle
	}

	// Each panel loses two cells to its border in both directions.
	inner := max(l.Width-2, 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		formStyle.Width(inner).Height(max(formH-2, 0)).Render(form),
		tableStyle.Width(inner).Height(max(tableH-2, 0)).Render(table),
	)
}

// RenderHeader renders the title on the left and a summary on the right.
func (l Layout) RenderHeader(title, summary string) string {
	return l.bar(theme.HeaderStyle, title, summary)
}

// RenderStatusBar renders keyboard hints across the bottom line.
func (l Layout) RenderStatusBar(hints string) string {
	return l.bar(theme.StatusBarStyle, hints, "")
}

// bar renders left and right in style, padded to the full width with the
// style's background.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	parts := []string{style.Render(left)}
	if right != "" {
		parts = append(parts, style.Render(right))
	}

	used := 0
	for _, p := range parts {
		used += lipgloss.Width(p)
	}
	filler := lipgloss.NewStyle().
		Width(max(l.Width-used, 0)).
		Background(style.GetBackground()).
		Render("")

	if len(parts) == 1 {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], filler)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], filler, parts[1])
}

// Frame stacks header, content and status bar.
func (l Layout) Frame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}
