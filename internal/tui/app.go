package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/commsbanner/internal/config"
	"github.com/jask/commsbanner/internal/scenario"
)

// App is the banner widget: scenario tabs, the active banner, and the
// control panel that edits the scenario state.
type App struct {
	holder *scenario.Holder
	rules  scenario.Rules
	keys   *KeyRegistry
	now    func() time.Time

	inputs  map[fieldID]textinput.Model
	focus   map[scenario.ID]int
	editing bool

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// New builds the widget with fresh scenario state. now supplies the clock
// used for age calculation.
func New(cfg config.Config, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	rules := scenario.Rules{MinorAge: cfg.Rules.MinorAge, DateLayout: cfg.UI.DateLayout}
	if rules.MinorAge <= 0 {
		rules.MinorAge = scenario.DefaultRules().MinorAge
	}
	if rules.DateLayout == "" {
		rules.DateLayout = scenario.DateLayout
	}
	return &App{
		holder: scenario.NewHolder(scenario.ID(cfg.UI.DefaultScenario)),
		rules:  rules,
		keys:   NewKeyRegistry(DefaultKeyBindings()),
		now:    now,
		inputs: newInputs(rules.DateLayout),
		focus:  make(map[scenario.ID]int, len(scenario.All)),
		status: "Ready",
		width:  100,
		height: 32,
	}
}

func (a *App) Init() tea.Cmd { return nil }

// Holder exposes the scenario state, mainly for tests and embedding.
func (a *App) Holder() *scenario.Holder { return a.holder }

// Evaluations returns the current outcome of every scenario rule.
func (a *App) Evaluations() []scenario.Evaluation {
	return a.rules.EvaluateAll(a.holder, a.now())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	if a.editing {
		return a, a.updateInput(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}
	scope := a.ActiveScope()
	if a.keys.IsAction(msg, "quit", scope) {
		a.quitting = true
		return a, tea.Quit
	}

	switch action := a.keys.ActionFor(msg, scope); action {
	case "next-scenario":
		a.stopEditing()
		a.announceScenario(a.holder.Cycle(1))
	case "prev-scenario":
		a.stopEditing()
		a.announceScenario(a.holder.Cycle(-1))
	case "switch-scenario-1", "switch-scenario-2", "switch-scenario-3":
		n, _ := strconv.Atoi(strings.TrimPrefix(action, "switch-scenario-"))
		a.selectScenario(scenario.ID(n))
	case "field-up":
		a.moveFocus(-1)
	case "field-down":
		a.moveFocus(1)
	case "toggle":
		a.toggleFocused()
	case "option-prev":
		a.cycleFocused(-1)
	case "option-next":
		a.cycleFocused(1)
	case "edit":
		return a, a.startEditing()
	case "stop-edit":
		a.stopEditing()
	case "reset":
		a.resetActive()
	case "preset":
		a.loadPreset()
	default:
		if a.editing {
			return a, a.updateInput(msg)
		}
	}
	return a, nil
}

// ActiveScope names the key scope of the focused control.
func (a *App) ActiveScope() string {
	if a.editing {
		return scopeEditing
	}
	f, ok := a.focusedField()
	if !ok {
		return scopeToggle
	}
	switch f.kind {
	case textField:
		return scopeText
	case pickerField:
		return scopePicker
	default:
		return scopeToggle
	}
}

func (a *App) focusedField() (field, bool) {
	fields := fieldsFor(a.holder, a.holder.Active())
	if len(fields) == 0 {
		return field{}, false
	}
	idx := min(max(a.focus[a.holder.Active()], 0), len(fields)-1)
	a.focus[a.holder.Active()] = idx
	return fields[idx], true
}

func (a *App) selectScenario(id scenario.ID) {
	a.stopEditing()
	if a.holder.SetActive(id) {
		a.announceScenario(id)
	}
}

func (a *App) announceScenario(id scenario.ID) {
	log.Printf("scenario selected: %s", id.Title())
	a.setStatus(id.Title())
}

func (a *App) moveFocus(delta int) {
	a.stopEditing()
	fields := fieldsFor(a.holder, a.holder.Active())
	if len(fields) == 0 {
		return
	}
	idx := a.focus[a.holder.Active()] + delta
	a.focus[a.holder.Active()] = min(max(idx, 0), len(fields)-1)
}

func (a *App) toggleFocused() {
	f, ok := a.focusedField()
	if !ok || f.kind != toggleField {
		return
	}
	v := !a.toggleValue(f.id)
	a.setToggle(f.id, v)
	a.setStatus(fmt.Sprintf("%s: %s", f.label, onOff(v)))
}

func (a *App) cycleFocused(delta int) {
	f, ok := a.focusedField()
	if !ok || f.kind != pickerField {
		return
	}
	v := scenario.CycleOption(f.options, a.pickerValue(f.id), delta)
	a.setPicker(f.id, v)
	a.setStatus(fmt.Sprintf("%s: %s", f.label, v))
}

func (a *App) startEditing() tea.Cmd {
	f, ok := a.focusedField()
	if !ok || f.kind != textField {
		return nil
	}
	in := a.inputs[f.id]
	cmd := in.Focus()
	in.CursorEnd()
	a.inputs[f.id] = in
	a.editing = true
	return cmd
}

func (a *App) stopEditing() {
	if !a.editing {
		return
	}
	a.editing = false
	f, ok := a.focusedField()
	if !ok || f.kind != textField {
		return
	}
	in := a.inputs[f.id]
	in.Blur()
	a.inputs[f.id] = in
	a.syncText(f.id)

	if f.id == fieldBirthDate && a.holder.Minor.HasBirthDate() {
		if _, ok := scenario.ParseBirthDate(a.holder.Minor.BirthDate, a.rules.DateLayout, a.now().Location()); !ok {
			a.setError(fmt.Sprintf("Birth date %q not recognised, expected %s", a.holder.Minor.BirthDate, layoutPlaceholder(a.rules.DateLayout)))
			return
		}
	}
	a.setStatus(f.label + " updated")
}

func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	f, ok := a.focusedField()
	if !ok || f.kind != textField {
		a.editing = false
		return nil
	}
	in, cmd := a.inputs[f.id].Update(msg)
	a.inputs[f.id] = in
	a.syncText(f.id)
	return cmd
}

func (a *App) resetActive() {
	a.stopEditing()
	id := a.holder.Active()
	a.holder.Reset(id)
	a.loadInputs()
	a.focus[id] = 0
	log.Printf("scenario reset: %s", id.Title())
	a.setStatus(id.Title() + " reset to defaults")
}

func (a *App) loadPreset() {
	a.stopEditing()
	id := a.holder.Active()
	a.holder.LoadPreset(id, a.now(), a.rules.DateLayout)
	a.loadInputs()
	log.Printf("scenario preset loaded: %s", id.Title())
	a.setStatus(id.Title() + " sample loaded")
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
