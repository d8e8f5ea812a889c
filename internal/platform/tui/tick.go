// Package tui provides the Bubble Tea integration for Star Catcher.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Key latch timing. Terminal auto-repeat usually starts after 250-500ms
// and then fires every 30-50ms.
const (
	holdInitial = 500 * time.Millisecond
	holdRepeat  = 100 * time.Millisecond
)

// TickMsg advances the game by one fixed simulation step.
type TickMsg time.Time

// tickInterval is the wall time of one step. Non-positive rates fall back
// to the default rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next step.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ticksFor converts a duration to simulation ticks, rounding up.
func ticksFor(d time.Duration, tickRate int) int {
	tick := tickInterval(tickRate)
	return int((d + tick - 1) / tick)
}
