// Package config provides YAML-based configuration loading for the snake
// game: grid, speeds, food weights, phone calls, colors, input and audio.
package config

import (
	"time"

	"github.com/vovakirdan/crazysnake/internal/core"
)

// Config contains every tunable of the game.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Speed  SpeedConfig  `yaml:"speed"`
	Food   FoodWeights  `yaml:"food_weights"`
	Phone  PhoneConfig  `yaml:"phone"`
	Colors Palette      `yaml:"colors"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig defines the playfield size.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	UnitSize int `yaml:"unit_size"` // terminal columns per grid cell
}

// Bounds returns the playfield as a rectangle anchored at the origin.
func (g GridConfig) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width, g.Height)
}

// SnakeConfig defines the starting snake.
type SnakeConfig struct {
	StartLength    int            `yaml:"start_length"`
	StartX         int            `yaml:"start_x"` // tail cell
	StartY         int            `yaml:"start_y"`
	StartDirection core.Direction `yaml:"start_direction"`
}

// Segments builds the starting body, head first. The body extends from the
// tail cell (StartX, StartY) in the starting direction.
func (s SnakeConfig) Segments() []core.Point {
	delta := s.StartDirection.Delta()
	segments := make([]core.Point, 0, s.StartLength)
	for i := s.StartLength - 1; i >= 0; i-- {
		segments = append(segments, core.Point{
			X: s.StartX + delta.X*i,
			Y: s.StartY + delta.Y*i,
		})
	}
	return segments
}

// SpeedConfig defines tick timing and effect multiplier ranges.
type SpeedConfig struct {
	BaseTick time.Duration `yaml:"base_tick"`
	Boost    Range         `yaml:"boost"`
	Decrease Range         `yaml:"decrease"`
}

// Range is an inclusive float interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FoodWeights are integer percentages per food kind. Fields are listed in
// the order the spawner walks them.
type FoodWeights struct {
	Growing         int `yaml:"growing"`
	Invincibility   int `yaml:"invincibility"`
	WallPhase       int `yaml:"wall_phase"`
	SpeedBoost      int `yaml:"speed_boost"`
	SpeedDecrease   int `yaml:"speed_decrease"`
	ReverseControls int `yaml:"reverse_controls"`
}

// Ordered returns the weights in spawner order.
func (w FoodWeights) Ordered() [6]int {
	return [6]int{w.Growing, w.Invincibility, w.WallPhase, w.SpeedBoost, w.SpeedDecrease, w.ReverseControls}
}

// Total returns the sum of all weights.
func (w FoodWeights) Total() int {
	total := 0
	for _, v := range w.Ordered() {
		total += v
	}
	return total
}

// PhoneConfig defines the phone-call interruption timer.
type PhoneConfig struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
	Callers  []string      `yaml:"callers"`
}

// Palette maps snake states, food kinds and board elements to colors.
// Food of a given kind shares the color of the matching snake state.
type Palette struct {
	Default         core.Color `yaml:"default"`
	Growing         core.Color `yaml:"growing"`
	Invincibility   core.Color `yaml:"invincibility"`
	WallPhase       core.Color `yaml:"wall_phase"`
	SpeedBoost      core.Color `yaml:"speed_boost"`
	SpeedDecrease   core.Color `yaml:"speed_decrease"`
	ReverseControls core.Color `yaml:"reverse_controls"`
	Background      core.Color `yaml:"background"`
	GridLine        core.Color `yaml:"grid_line"`
	Border          core.Color `yaml:"border"`
	HeadBorder      core.Color `yaml:"head_border"`
}

// InputConfig defines pointer input thresholds.
type InputConfig struct {
	MinSwipeDistance int `yaml:"min_swipe_distance"` // terminal cells
}

// RenderConfig defines visual timing.
type RenderConfig struct {
	StrobeInterval time.Duration `yaml:"strobe_interval"`
	ShowGrid       bool          `yaml:"show_grid"`
}

// AudioConfig defines the move-cue player.
type AudioConfig struct {
	Enabled     bool          `yaml:"enabled"`
	SoundsPath  string        `yaml:"sounds_path"`
	Volume      float64       `yaml:"volume"` // 0.0 to 1.0
	MinInterval time.Duration `yaml:"min_interval"`
}
