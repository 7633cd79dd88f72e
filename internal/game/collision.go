package game

import "github.com/vovakirdan/crazysnake/internal/config"

// FoodCollision reports whether the head is on the food.
func FoodCollision(s *State) bool {
	if s.Food.Position == nil {
		return false
	}
	return s.Snake.Head() == *s.Food.Position
}

// WallCollision reports whether the head left the grid. Invincibility and
// WallPhase both make walls harmless.
func WallCollision(s *State, grid config.GridConfig) bool {
	if IsEffectActive(s, EffectInvincibility) || IsEffectActive(s, EffectWallPhase) {
		return false
	}
	head := s.Snake.Head()
	return !grid.Bounds().Contains(head.X, head.Y)
}

// SelfCollision reports whether the head overlaps the body. Only
// Invincibility protects against it; WallPhase does not.
func SelfCollision(s *State) bool {
	if IsEffectActive(s, EffectInvincibility) {
		return false
	}
	head := s.Snake.Head()
	for _, seg := range s.Snake.Segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
