// Package banner renders the coloured notices shown above the control panel.
package banner

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Severity string

const (
	Warning Severity = "warning"
	Info    Severity = "info"
	Error   Severity = "error"
)

// Scheme is the icon and colour set used for one severity.
type Scheme struct {
	Icon       string
	Foreground lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
}

var schemes = map[Severity]Scheme{
	Warning: {Icon: "⚠", Foreground: "#f9e2af", Background: "#3a3424", Border: "#fab387"},
	Info:    {Icon: "ℹ", Foreground: "#89b4fa", Background: "#242c3d", Border: "#74c7ec"},
	Error:   {Icon: "✖", Foreground: "#f38ba8", Background: "#3b2330", Border: "#eba0ac"},
}

// SchemeFor returns the scheme for s. Unknown severities render as info.
func SchemeFor(s Severity) Scheme {
	if sc, ok := schemes[s]; ok {
		return sc
	}
	return schemes[Info]
}

type Banner struct {
	Severity Severity
	Message  string
	Show     bool
}

// Render draws the banner at the given outer width. It returns an empty
// string when the banner is hidden.
func (b Banner) Render(width int) string {
	if !b.Show {
		return ""
	}
	sc := SchemeFor(b.Severity)
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sc.Border).
		Foreground(sc.Foreground).
		Background(sc.Background).
		Bold(true).
		Padding(0, 1)
	if width > 4 {
		// Width excludes the border.
		style = style.Width(width - 2)
	}
	text := sc.Icon + "  " + strings.TrimSpace(b.Message)
	return style.Render(text)
}
