// Package tui provides the Bubble Tea integration for the snake
// platform. It handles the terminal UI loop, input mapping, and pacing
// of the simulation against the core tick gate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollMsg is sent when the event loop should poll the tick gate again.
type PollMsg time.Time

// wakeCmd returns a command delivering a PollMsg at the given instant.
// The gate reports the wake time on a not-due poll, so the loop sleeps
// between ticks instead of busy-polling.
func wakeCmd(at time.Time) tea.Cmd {
	d := time.Until(at)
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}
