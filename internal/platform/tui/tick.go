// Package tui provides the Bubble Tea integration for CrazySnake.
// It hosts the frame loop, maps keys and mouse swipes to game input, and
// draws the game into a core.Screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame. It carries the frame's wall-clock
// time, which drives the game's fixed-timestep loop.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
