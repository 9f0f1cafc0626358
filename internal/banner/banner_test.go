package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHiddenIsEmpty(t *testing.T) {
	b := Banner{Severity: Warning, Message: "O/S ID document and specimen signature", Show: false}
	require.Empty(t, b.Render(80))
}

func TestRenderShowsIconAndMessage(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		icon     string
	}{
		{"warning", Warning, "⚠"},
		{"info", Info, "ℹ"},
		{"error", Error, "✖"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Banner{Severity: tt.severity, Message: "This is a Minor Account", Show: true}.Render(80)
			require.Contains(t, out, tt.icon)
			require.Contains(t, out, "This is a Minor Account")
		})
	}
}

func TestSchemeForUnknownFallsBackToInfo(t *testing.T) {
	require.Equal(t, SchemeFor(Info), SchemeFor(Severity("notice")))
	require.NotEqual(t, SchemeFor(Info), SchemeFor(Warning))
}

func TestRenderHasBorder(t *testing.T) {
	out := Banner{Severity: Info, Message: "hello", Show: true}.Render(40)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "╭"), "top border: %q", lines[0])
}
