// Package tui provides the Bubble Tea host for the platformer.
// It drives the fixed-rate tick loop, turns key presses into held controls,
// and presents the menu, scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Epoch is the game generation the
// tick was scheduled for; ticks from an older generation are dropped.
type TickMsg struct {
	Epoch uint64
	Time  time.Time
}

// tickCmd schedules a single tick for the given epoch.
func tickCmd(tickRate int, epoch uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}
