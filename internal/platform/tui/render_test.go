package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ndsweeper/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("default-colored screen should render unstyled:\n%q\n%q", got, s.String())
	}
}

func TestRenderScreenKeepsGeometry(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "F", core.ColorBrightYellow)
	s.DrawTextColored(2, 0, "12", core.NumberColor(1))
	s.DrawTextColored(0, 2, "·····", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d: width %d, want 10", i, w)
		}
	}
	if !strings.Contains(out, "12") || !strings.Contains(out, "·····") {
		t.Errorf("runs should stay intact:\n%s", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown colors should fall back to the default style, got %q", got)
	}
}
