package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPaneRendersTitleAndWidth(t *testing.T) {
	out := pane{Title: "Status", Content: "one\ntwo"}.Render(30)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Status") {
		t.Fatalf("title should sit in the top border: %q", lines[0])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 30 {
			t.Fatalf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestPaneTruncatesLongContent(t *testing.T) {
	out := pane{Title: "T", Content: strings.Repeat("x", 100)}.Render(20)
	for _, l := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(l); w > 20 {
			t.Fatalf("line too wide: %d", w)
		}
	}
}
