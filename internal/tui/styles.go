package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorMantle).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	placeholderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorOverlay0).
				Foreground(colorOverlay1).
				Italic(true).
				Align(lipgloss.Center)

	sectionTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle        = lipgloss.NewStyle().Foreground(colorText)
	focusLabelStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(colorOverlay1)
	onStyle           = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	offStyle          = lipgloss.NewStyle().Foreground(colorOverlay1)
	emptyValueStyle   = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)
	nestStyle         = lipgloss.NewStyle().Foreground(colorBorder)

	summaryNameStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	summaryOffStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
