package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() {
		detected = nil
		lipgloss.SetColorProfile(prev)
	})
}

func TestApply(t *testing.T) {
	withProfile(t, termenv.ANSI256)

	assert.NoError(t, Apply(""))
	assert.NoError(t, Apply(Default))
	assert.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())
	assert.Error(t, Apply("solarized"))
}

func TestApply_DefaultRestoresColorsAfterMonochrome(t *testing.T) {
	withProfile(t, termenv.TrueColor)

	require.NoError(t, Apply(Monochrome))
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	// Applying mono twice must not remember Ascii as the terminal profile.
	require.NoError(t, Apply(Monochrome))

	require.NoError(t, Apply(Default))
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())
}
