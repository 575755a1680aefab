// Package tui provides the Bubble Tea front end for Paint (H)it: a
// half-block colour canvas, mouse and keyboard input, the high-score table
// and remote play over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on each simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
