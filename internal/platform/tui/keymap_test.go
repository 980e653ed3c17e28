package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ndsweeper/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey("h"), core.ActionLeft},
		{"l", runeKey("l"), core.ActionRight},
		{"k", runeKey("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"layer down", runeKey("["), core.ActionLayerDown},
		{"layer up", runeKey("]"), core.ActionLayerUp},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextAxis},
		{"rotate", runeKey("v"), core.ActionSwapView},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionReveal},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal},
		{"flag", runeKey("f"), core.ActionFlag},
		{"chord", runeKey("c"), core.ActionChord},
		{"pause", runeKey("p"), core.ActionPause},
		{"restart", runeKey("r"), core.ActionRestart},
		{"quit", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestBackDisabledByDefault(t *testing.T) {
	keys := DefaultKeyMap()
	if keys.Back.Enabled() {
		t.Error("back should be disabled outside the menu flow")
	}

	m := NewModel(&stubGame{}, nil, core.DefaultConfig()).WithMenu()
	if !m.keys.Back.Enabled() {
		t.Error("WithMenu should enable back")
	}
}

func TestHelpListsEveryAction(t *testing.T) {
	keys := DefaultKeyMap()

	seen := map[string]bool{}
	for _, column := range keys.FullHelp() {
		for _, b := range column {
			seen[b.Help().Desc] = true
		}
	}
	for _, desc := range []string{"reveal", "flag", "chord", "layer -", "layer +", "next axis", "rotate view", "new board", "quit"} {
		if !seen[desc] {
			t.Errorf("full help is missing %q", desc)
		}
	}
}
