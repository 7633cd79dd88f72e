package config

import (
	"fmt"
	"math"
	"time"
)

// DifficultyPreset represents a named base speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a preset name, accepting "" as normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// tickScale returns the factor applied to the configured base tick.
func (p DifficultyPreset) tickScale() float64 {
	switch p {
	case DifficultyEasy:
		return 1.4
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplyPreset scales the base tick for a difficulty preset. Normal keeps
// the configured value.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	scaled := time.Duration(math.Round(float64(cfg.Speed.BaseTick) * preset.tickScale()))
	if scaled <= 0 {
		scaled = time.Millisecond
	}
	cfg.Speed.BaseTick = scaled
}
