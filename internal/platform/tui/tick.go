// Package tui provides the Bubble Tea front end for the runner: the game
// screens, input mapping, the rasterised track, and SSH play via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// nominalFrame is the frame length the simulation constants are tuned for.
const nominalFrame = time.Second / 60

// maxDeltaTicks caps one frame's simulated time, bounding the work a single
// tick does after a stall.
const maxDeltaTicks = 4.0

// FrameMsg is sent to drive one front-end frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends the next frame message
// after interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// deltaTicks converts the elapsed time between two frames into nominal
// frames. Both times carry monotonic readings from tea.Tick, so wall-clock
// jumps do not affect the result.
func deltaTicks(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 1
	}
	d := float64(now.Sub(prev)) / float64(nominalFrame)
	switch {
	case d <= 0:
		return 0
	case d > maxDeltaTicks:
		return maxDeltaTicks
	}
	return d
}
