package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/crazysnake/internal/core"
)

//go:embed defaults/crazysnake.yaml
var defaultYAML []byte

// DefaultCallers is the pool of phone-call caller names.
var DefaultCallers = []string{
	"Al Gorithm",
	"Meg A. Byte",
	"Ali Sing",
	"Anna Log",
	"Ray Tracing",
	"Pat Ch-Notes",
	"Mac Address",
	"Artie Ficial",
	"Floppy Phil",
	"Dot Matrix",
	"Gia Hertz",
	"Terry Byte",
	"Perry Pheral",
	"Cade Ridger",
	"Mona Tor",
	"Syd Ram",
	"Bessie IOS",
	"Dee Frag",
	"Buffy Ring",
	"DJ Snake",
	"GAME OVER",
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:    25,
			Height:   20,
			UnitSize: 2,
		},
		Snake: SnakeConfig{
			StartLength:    5,
			StartX:         2,
			StartY:         18,
			StartDirection: core.DirRight,
		},
		Speed: SpeedConfig{
			BaseTick: 125 * time.Millisecond, // 8 moves per second
			Boost:    Range{Min: 1.5, Max: 2.0},
			Decrease: Range{Min: 0.3, Max: 0.5},
		},
		Food: FoodWeights{
			Growing:         40,
			Invincibility:   10,
			WallPhase:       10,
			SpeedBoost:      15,
			SpeedDecrease:   15,
			ReverseControls: 10,
		},
		Phone: PhoneConfig{
			MinDelay: 5 * time.Second,
			MaxDelay: 15 * time.Second,
			Callers:  append([]string(nil), DefaultCallers...),
		},
		Colors: Palette{
			Default:         "#000000",
			Growing:         "#00FF00",
			Invincibility:   "#FFFF00",
			WallPhase:       "#800080",
			SpeedBoost:      "#FF0000",
			SpeedDecrease:   "#00CED1",
			ReverseControls: "#FFA500",
			Background:      "#E8E8E8",
			GridLine:        "#A0A0A0",
			Border:          "#9D4EDD",
			HeadBorder:      "#FFFFFF",
		},
		Input: InputConfig{
			MinSwipeDistance: 3,
		},
		Render: RenderConfig{
			StrobeInterval: 100 * time.Millisecond,
			ShowGrid:       true,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SoundsPath:  "assets/sounds",
			Volume:      1.0,
			MinInterval: 16 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
