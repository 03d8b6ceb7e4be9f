// Package tui provides the Bubble Tea integration for the chase game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame with the frame's wall-clock time.
// Loop identifies the frame loop that scheduled it; frames from a stopped
// loop are ignored.
type FrameMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh frame loop identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// frameCmd returns a Bubble Tea command that delivers the next frame of loop
// at the given rate.
func frameCmd(fps int, loop uint64) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, Loop: loop}
	})
}

// frameDelta returns the time elapsed between two frames. The first frame
// and frames from a clock that went backwards yield zero.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	return max(now.Sub(last), 0)
}
