package game

import "github.com/vovakirdan/crazysnake/internal/core"

// SwipeDirection converts a drag vector into a direction along its dominant
// axis. Drags shorter than threshold on both axes yield false.
func SwipeDirection(dx, dy, threshold int) (core.Direction, bool) {
	if dx == 0 && dy == 0 {
		return core.DirRight, false
	}
	ax, ay := core.Abs(dx), core.Abs(dy)
	if ax < threshold && ay < threshold {
		return core.DirRight, false
	}
	if ax > ay {
		if dx > 0 {
			return core.DirRight, true
		}
		return core.DirLeft, true
	}
	if dy > 0 {
		return core.DirDown, true
	}
	return core.DirUp, true
}
