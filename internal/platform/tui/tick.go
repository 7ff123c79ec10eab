// Package tui runs 2048 boards in the terminal with Bubble Tea.
// It maps keys and mouse drags to actions, drives the animation tick,
// and hosts the hint dialog, variant menu and score table.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance animations by one frame. Loop identifies the
// model that scheduled it so a finished game's ticks do not drive the next.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick loop id.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a command that sends a TickMsg after one frame at tickRate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
