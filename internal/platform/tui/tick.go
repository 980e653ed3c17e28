// Package tui provides the Bubble Tea front end: the board screen, the
// preset menu, the scoreboard and the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the game clock. Gen identifies the game that scheduled
// it so ticks left over from a previous board are dropped.
type TickMsg struct {
	Gen int
	At  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after 1/tickRate
// seconds.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 10
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
