package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by Apply.
const (
	Default    = "default"
	Monochrome = "mono"
)

// detected holds the terminal's own color profile while Monochrome is in
// effect, so Default can bring it back.
var detected *termenv.Profile

// Apply selects the color profile for the named theme. An empty name is
// treated as Default.
func Apply(name string) error {
	switch name {
	case "", Default:
		if detected != nil {
			lipgloss.SetColorProfile(*detected)
			detected = nil
		}
		return nil
	case Monochrome:
		if detected == nil {
			p := lipgloss.ColorProfile()
			detected = &p
		}
		lipgloss.SetColorProfile(termenv.Ascii)
		return nil
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
}
