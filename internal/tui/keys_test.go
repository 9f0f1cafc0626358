package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+r"}, Action: "reset", Scopes: []string{scopeToggle}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlR}, "reset", scopeToggle) {
		t.Fatalf("expected ctrl+r in toggle scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlR}, "reset", scopeEditing) {
		t.Fatalf("did not expect ctrl+r in editing scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", scopeEditing) {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestSpaceNormalizes(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeySpace}, scopeToggle); got != "toggle" {
		t.Fatalf("space action = %q, want toggle", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, scopeToggle); got != "toggle" {
		t.Fatalf("space rune action = %q, want toggle", got)
	}
}

func TestEditingScopeLeavesTypingAlone(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, r := range []rune{'q', '1', 'j', 'k', 'h', 'l'} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if got := reg.ActionFor(msg, scopeEditing); got != "" {
			t.Fatalf("key %q bound to %q while editing", string(r), got)
		}
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyEsc}, scopeEditing); got != "stop-edit" {
		t.Fatalf("esc action = %q, want stop-edit", got)
	}
}

func TestEnterDependsOnScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	want := map[string]string{
		scopeToggle:  "toggle",
		scopeText:    "edit",
		scopeEditing: "stop-edit",
		scopePicker:  "",
	}
	for scope, action := range want {
		if got := reg.ActionFor(enter, scope); got != action {
			t.Fatalf("enter in %s = %q, want %q", scope, got, action)
		}
	}
}

func TestHelpBindingsMatchTheirKeys(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	help := reg.HelpBindings(scopeToggle)
	var toggle, edit bool
	for _, b := range help {
		switch b.Help().Desc {
		case "toggle":
			toggle = true
			if b.Help().Key != "space" {
				t.Fatalf("toggle help key = %q, want space", b.Help().Key)
			}
			if !key.Matches(tea.KeyMsg{Type: tea.KeySpace}, b) {
				t.Fatalf("toggle binding should match the space key")
			}
			if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, b) {
				t.Fatalf("toggle binding should match enter")
			}
		case "edit":
			edit = true
		}
	}
	if !toggle {
		t.Fatalf("toggle scope should expose toggle help")
	}
	if edit {
		t.Fatalf("toggle scope should not expose edit help")
	}
}

func TestDisabledBindingDoesNotMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{{Keys: []string{"x"}, Action: "x", Description: "x"}})
	reg.matchers[0].SetEnabled(false)
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, scopeToggle); got != "" {
		t.Fatalf("disabled binding matched %q", got)
	}
}
