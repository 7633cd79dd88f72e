// Package audio plays the snake's movement cues with gopxl/beep. Every
// sound category has two sounds that alternate on consecutive moves.
package audio

import (
	"fmt"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/game"
)

// Category selects the pair of movement sounds.
type Category string

const (
	CategoryDefault       Category = "default"
	CategoryGrowing       Category = "growing"
	CategoryInvincibility Category = "invincibility"
	CategoryWallPhase     Category = "wallphase"
	CategorySpeedBoost    Category = "speedboost"
	CategorySpeedDecrease Category = "speeddecrease"
	CategoryReverse       Category = "reverse"
)

// Categories lists every category in load order.
var Categories = []Category{
	CategoryDefault,
	CategoryGrowing,
	CategoryInvincibility,
	CategoryWallPhase,
	CategorySpeedBoost,
	CategorySpeedDecrease,
	CategoryReverse,
}

// SoundsPerCategory is the number of alternating sounds per category.
const SoundsPerCategory = 2

// ExpectedSounds is the number of sound files a complete asset set has.
var ExpectedSounds = len(Categories) * SoundsPerCategory

// Key identifies one sound: a category and its number, 1 or 2.
type Key struct {
	Category Category
	Number   int
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.Category, k.Number)
}

// FileName returns the asset file name, e.g. "move-growing-2.mp3".
func (k Key) FileName() string {
	return "move-" + k.String() + ".mp3"
}

// CategoryFor derives the sound category. An active effect wins; otherwise
// the snake color decides between growing and default. The second result is
// false when the color is not recognized and default was assumed.
func CategoryFor(s *game.State, palette config.Palette) (Category, bool) {
	if s.Effect != nil {
		switch s.Effect.Kind() {
		case game.EffectInvincibility:
			return CategoryInvincibility, true
		case game.EffectWallPhase:
			return CategoryWallPhase, true
		case game.EffectSpeedBoost:
			return CategorySpeedBoost, true
		case game.EffectSpeedDecrease:
			return CategorySpeedDecrease, true
		case game.EffectReverseControls:
			return CategoryReverse, true
		}
		return CategoryDefault, false
	}

	switch s.Snake.Color {
	case palette.Growing:
		return CategoryGrowing, true
	case palette.Default:
		return CategoryDefault, true
	}
	return CategoryDefault, false
}
