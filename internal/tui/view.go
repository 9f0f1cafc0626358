package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/commsbanner/internal/banner"
	"github.com/jask/commsbanner/internal/scenario"
)

const (
	appTitle         = "Communications Banner"
	appSubtitle      = "Automated banner system for identity verification, age validation, and authorization management"
	noBannerText     = "No banner to display - conditions not met"
	bannerActiveText = "Banner Active"
	noBannerShort    = "No Banner"
)

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	width := max(40, a.width)
	evals := a.Evaluations()

	header := a.renderHeader(width)
	status := a.renderStatusBar(width)
	footer := a.renderFooter(width)

	body := strings.Join([]string{
		subtitleStyle.Render(ansi.Truncate(appSubtitle, width, "…")),
		a.renderBannerArea(width, evals[a.holder.Active()-1]),
		a.renderControls(width),
		a.renderSummary(width, evals),
	}, "\n")

	available := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	body = fitHeight(body, max(0, available))

	parts := []string{header, status}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	return appStyle.Width(width).MaxWidth(width).Render(strings.Join(parts, "\n"))
}

func (a *App) renderHeader(width int) string {
	tabs := make([]string, 0, len(scenario.All))
	for _, id := range scenario.All {
		label := fmt.Sprintf("%d:%s", int(id), id.Title())
		if id == a.holder.Active() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render(appTitle)
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, width, "")
	gap := 1
	if w := ansi.StringWidth(left) + ansi.StringWidth(right); w+1 < width {
		gap = width - w
	}
	return renderBar(headerBarStyle, width, left+strings.Repeat(" ", gap)+right)
}

func (a *App) renderBannerArea(width int, ev scenario.Evaluation) string {
	if ev.Visible {
		return ev.Banner().Render(width)
	}
	return placeholderStyle.Width(width - 2).Render(noBannerText)
}

func (a *App) renderControls(width int) string {
	id := a.holder.Active()
	fields := fieldsFor(a.holder, id)
	focused, _ := a.focusedField()

	var lines []string
	title, blurb := controlsHeading(id)
	lines = append(lines, sectionTitleStyle.Render(title), hintStyle.Render(blurb), "")
	for _, f := range fields {
		lines = append(lines, a.renderField(f, f.id == focused.id))
		if f.hint != "" {
			lines = append(lines, indent(f)+"    "+hintStyle.Render(f.hint))
		}
		if f.id == fieldBirthDate {
			if hint := a.ageHint(); hint != "" {
				lines = append(lines, "    "+hintStyle.Render(hint))
			}
		}
	}
	return pane{Title: id.Title(), Content: strings.Join(lines, "\n"), Focused: a.editing}.Render(width)
}

func controlsHeading(id scenario.ID) (string, string) {
	switch id {
	case scenario.IdentityDocuments:
		return "Identity Documents", "Toggle document availability to test banner display"
	case scenario.MinorAccount:
		return "Client Age Verification", "Enter birth date to test minor account detection"
	case scenario.AuthorizedRepresentative:
		return "Authorised Representative", "Configure authorized person details"
	default:
		return id.Title(), ""
	}
}

func indent(f field) string {
	if f.nested {
		return nestStyle.Render("  │ ")
	}
	return ""
}

func (a *App) renderField(f field, focused bool) string {
	cursor := "  "
	label := labelStyle.Render(padRight(f.label, 28))
	if focused {
		cursor = focusLabelStyle.Render("▶ ")
		label = focusLabelStyle.Render(padRight(f.label, 28))
	}

	var value string
	switch f.kind {
	case toggleField:
		if a.toggleValue(f.id) {
			value = onStyle.Render("[x] on")
		} else {
			value = offStyle.Render("[ ] off")
		}
	case pickerField:
		v := a.pickerValue(f.id)
		if v == "" {
			value = "‹ " + emptyValueStyle.Render(f.placeholder) + " ›"
		} else {
			value = "‹ " + v + " ›"
		}
	case textField:
		value = a.inputs[f.id].View()
	}
	return indent(f) + cursor + label + value
}

func (a *App) ageHint() string {
	m := a.holder.Minor
	if !m.HasBirthDate() {
		return ""
	}
	if _, ok := scenario.ParseBirthDate(m.BirthDate, a.rules.DateLayout, a.now().Location()); !ok {
		return "Birth date not recognised, expected " + layoutPlaceholder(a.rules.DateLayout)
	}
	return fmt.Sprintf("Current age: %d years", a.rules.Age(m.BirthDate, a.now()))
}

func (a *App) renderSummary(width int, evals []scenario.Evaluation) string {
	cells := make([]string, 0, len(evals))
	for _, ev := range evals {
		state := summaryOffStyle.Render(noBannerShort)
		if ev.Visible {
			state = lipgloss.NewStyle().Foreground(severityColor(ev.Severity)).Bold(true).Render(bannerActiveText)
		}
		cells = append(cells, summaryNameStyle.Render(fmt.Sprintf("Scenario %d", int(ev.Scenario)))+"  "+state)
	}
	return pane{Title: "Status", Content: strings.Join(cells, "    ")}.Render(width)
}

func severityColor(s banner.Severity) lipgloss.Color {
	switch s {
	case banner.Warning:
		return colorWarning
	case banner.Error:
		return colorError
	default:
		return colorInfo
	}
}

func (a *App) renderFooter(width int) string {
	bindings := a.keys.HelpBindings(a.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	parts = append(parts, keyStyle.Render("ctrl+c")+space+descStyle.Render("exit"))
	return renderBar(footerStyle, width, strings.Join(parts, sep))
}

func (a *App) renderStatusBar(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	session := "session " + shortID(a.holder.SessionID())
	gap := max(1, width-ansi.StringWidth(msg)-ansi.StringWidth(session))
	line := msg + strings.Repeat(" ", gap) + session
	if a.statusErr {
		return renderBar(statusErrBarStyle, width, line)
	}
	return renderBar(statusBarStyle, width, line)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	return style.Width(width).MaxWidth(width).Render(padRight(line, width))
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
