// Package tui provides the Bubble Tea integration for the bounce platform.
// It handles the terminal loop, input mapping, frame pacing and drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a demo frame.
type TickMsg time.Time

// defaultInterval is used when neither the CLI nor the demo sets a pace.
const defaultInterval = time.Second / 60

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval resolves the delay between frames. An explicit tick rate
// wins over the demo's own pause.
func frameInterval(tickRate int, demoPause time.Duration) time.Duration {
	if tickRate > 0 {
		return time.Second / time.Duration(tickRate)
	}
	if demoPause > 0 {
		return demoPause
	}
	return defaultInterval
}
