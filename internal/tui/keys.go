package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeToggle  = "field:toggle"
	scopeText    = "field:text"
	scopePicker  = "field:picker"
	scopeEditing = "editing"
)

// browseScopes covers every state where keys are not going into a text input.
var browseScopes = []string{scopeToggle, scopeText, scopePicker}

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions. Each binding is backed by a
// bubbles key.Binding, which does the matching and supplies the footer help.
type KeyRegistry struct {
	bindings []KeyBinding
	matchers []key.Binding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{bindings: slices.Clone(bindings)}
	r.matchers = make([]key.Binding, len(r.bindings))
	for i, b := range r.bindings {
		r.matchers[i] = newKeyBinding(b)
	}
	return r
}

func newKeyBinding(b KeyBinding) key.Binding {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		keys = append(keys, teaKey(k))
	}
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = strings.TrimSpace(b.Keys[0])
		if helpKey == "" {
			helpKey = "space"
		}
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, b.Description))
}

// HelpBindings lists the key.Bindings active in scope, in registration order.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for i, b := range r.bindings {
		if len(b.Keys) == 0 || !scopeMatch(scope, b.Scopes) {
			continue
		}
		out = append(out, r.matchers[i])
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for i, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		if key.Matches(msg, r.matchers[i]) {
			return true
		}
	}
	return false
}

// ActionFor returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	for i, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && key.Matches(msg, r.matchers[i]) {
			return b.Action
		}
	}
	return ""
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: browseScopes},
		{Keys: []string{"1"}, Action: "switch-scenario-1", Description: "identity docs", Scopes: browseScopes},
		{Keys: []string{"2"}, Action: "switch-scenario-2", Description: "minor account", Scopes: browseScopes},
		{Keys: []string{"3"}, Action: "switch-scenario-3", Description: "auth rep", Scopes: browseScopes},
		{Keys: []string{"tab"}, Action: "next-scenario", Description: "next tab", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: "prev-scenario", Description: "prev tab", Scopes: []string{"*"}},
		{Keys: []string{"up", "k"}, Action: "field-up", Description: "prev field", Scopes: browseScopes},
		{Keys: []string{"down", "j"}, Action: "field-down", Description: "next field", Scopes: browseScopes},
		{Keys: []string{"up"}, Action: "field-up", Description: "prev field", Scopes: []string{scopeEditing}},
		{Keys: []string{"down"}, Action: "field-down", Description: "next field", Scopes: []string{scopeEditing}},
		{Keys: []string{"space", "enter"}, Action: "toggle", Description: "toggle", Scopes: []string{scopeToggle}},
		{Keys: []string{"left", "h"}, Action: "option-prev", Description: "prev option", Scopes: []string{scopePicker}},
		{Keys: []string{"right", "l"}, Action: "option-next", Description: "next option", Scopes: []string{scopePicker}},
		{Keys: []string{"enter"}, Action: "edit", Description: "edit", Scopes: []string{scopeText}},
		{Keys: []string{"enter", "esc"}, Action: "stop-edit", Description: "done", Scopes: []string{scopeEditing}},
		{Keys: []string{"ctrl+r"}, Action: "reset", Description: "reset", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+l"}, Action: "preset", Description: "sample", Scopes: []string{"*"}},
	}
}

// teaKey maps a binding name to the string tea.KeyMsg reports for it.
func teaKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.ToLower(strings.TrimSpace(k))
	if k == "space" {
		return " "
	}
	return k
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
