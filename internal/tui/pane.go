package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// pane is a rounded box with its title set into the top border.
type pane struct {
	Title   string
	Content string
	Focused bool
}

func (p pane) Render(width int) string {
	if width < 6 {
		width = 6
	}
	border := colorBorder
	if p.Focused {
		border = colorFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := " " + strings.TrimSpace(p.Title) + " "
	if ansi.StringWidth(titleText) > innerWidth-1 {
		titleText = " " + ansi.Truncate(strings.TrimSpace(p.Title), max(1, innerWidth-3), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	rows := []string{
		borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
			titleStyle.Render(titleText) +
			borderStyle.Render(strings.Repeat("─", rightDash)+"╮"),
	}
	for _, line := range strings.Split(p.Content, "\n") {
		line = ansi.Truncate(line, contentWidth, "")
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
