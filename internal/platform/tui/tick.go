// Package tui provides the Bubble Tea integration for the runner.
// It drives rendered frames, measures wall-clock time between them and
// turns terminal key and mouse events into the jump input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg marks one rendered frame. It carries the wall-clock time the
// frame fired, which the game model turns into elapsed seconds.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Clock measures wall-clock seconds between consecutive frames.
type Clock struct {
	last time.Time
}

// NewClock creates a clock whose first measurement starts at now.
func NewClock(now time.Time) *Clock {
	return &Clock{last: now}
}

// Elapsed returns the seconds since the previous call and advances the clock.
// A frame timestamp older than the previous one yields zero.
func (c *Clock) Elapsed(now time.Time) float64 {
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Restart drops the time accumulated since the last frame, e.g. after a pause.
func (c *Clock) Restart(now time.Time) {
	c.last = now
}
