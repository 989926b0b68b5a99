// Package tui provides the Bubble Tea front end: it draws engine
// snapshots, forwards key presses and hosts the SSH server and the
// journal browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// blinkInterval is the goal marker's blink cadence. It runs independently
// of the game clock.
const blinkInterval = time.Second

// BlinkMsg toggles the goal marker.
type BlinkMsg time.Time

// blinkCmd returns a Bubble Tea command that sends the next blink.
func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}
