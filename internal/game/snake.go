package game

import (
	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
)

// MoveSnake advances the snake one cell along its queued direction and
// reports whether the head wrapped across a wall.
//
// WallPhase wraps once and is then cleared. Invincibility wraps without
// expiring. With neither active the head may leave the grid; the death check
// handles that.
func MoveSnake(s *State, grid config.GridConfig, palette config.Palette) bool {
	snake := &s.Snake
	snake.Direction = snake.NextDirection
	head := snake.Head().Add(snake.Direction.Delta())

	wrapped := false
	switch {
	case IsEffectActive(s, EffectWallPhase):
		head, wrapped = wrap(head, grid)
		if wrapped {
			ClearEffect(s, palette)
		}
	case IsEffectActive(s, EffectInvincibility):
		head, wrapped = wrap(head, grid)
	}

	// Shift the body: new head in front, tail dropped.
	copy(snake.Segments[1:], snake.Segments[:len(snake.Segments)-1])
	snake.Segments[0] = head
	return wrapped
}

// wrap moves an out-of-bounds point to the opposite edge.
func wrap(p core.Point, grid config.GridConfig) (core.Point, bool) {
	wrapped := false
	switch {
	case p.X < 0:
		p.X = grid.Width - 1
		wrapped = true
	case p.X >= grid.Width:
		p.X = 0
		wrapped = true
	}
	switch {
	case p.Y < 0:
		p.Y = grid.Height - 1
		wrapped = true
	case p.Y >= grid.Height:
		p.Y = 0
		wrapped = true
	}
	return p, wrapped
}

// GrowSnake appends a copy of the tail. The copy separates on the next move.
func GrowSnake(s *State) {
	segs := s.Snake.Segments
	s.Snake.Segments = append(segs, segs[len(segs)-1])
}

// SetDirection queues a direction change from player input. A turn straight
// back onto the body is ignored; the check uses the intended direction, before
// ReverseControls inverts it. Input outside PhasePlaying is ignored.
func (g *Game) SetDirection(intended core.Direction) bool {
	s := g.state
	if !s.Playing() {
		return false
	}
	if intended == s.Snake.Direction.Opposite() {
		return false
	}

	dir := intended
	if IsEffectActive(s, EffectReverseControls) {
		dir = intended.Opposite()
	}
	s.Snake.NextDirection = dir
	return true
}
