// Package game implements the snake simulation: the state container, the
// single-slot effect system, collision rules, the food spawner, the phone-call
// timer and the fixed-timestep frame driver. It has no knowledge of terminals,
// audio devices or databases; those are reached through the ports in ports.go.
package game

import (
	"time"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Snake is the player's body. Segments[0] is the head.
type Snake struct {
	Segments      []core.Point
	Direction     core.Direction // applied on the last tick
	NextDirection core.Direction // queued for the next tick
	Color         core.Color
}

// Head returns the head segment.
func (s *Snake) Head() core.Point {
	return s.Segments[0]
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Food is the single food item on the board.
type Food struct {
	Position *core.Point // nil until the first spawn
	Kind     FoodKind
}

// PhoneCall tracks the interruption overlay.
type PhoneCall struct {
	Active     bool
	Caller     string // empty when no call is ringing
	NextCallAt time.Time
}

// State is the mutable aggregate for one play session.
type State struct {
	Phase        Phase
	Paused       bool // set only by pausing out of PhasePlaying
	Snake        Snake
	Food         Food
	Effect       Effect // nil or exactly one effect
	Score        int
	HighScore    int
	NewHighScore bool // last game over beat the previous high score
	Phone        PhoneCall
}

// NewState creates a session in the menu with the starting snake.
// A negative high score is treated as missing.
func NewState(cfg config.Config, highScore int) *State {
	s := &State{HighScore: max(highScore, 0)}
	s.Reset(cfg)
	return s
}

// Reset restores every field to its starting value except HighScore.
func (s *State) Reset(cfg config.Config) {
	*s = State{
		Phase: PhaseMenu,
		Snake: Snake{
			Segments:      cfg.Snake.Segments(),
			Direction:     cfg.Snake.StartDirection,
			NextDirection: cfg.Snake.StartDirection,
			Color:         cfg.Colors.Default,
		},
		Food:      Food{Kind: FoodGrowing},
		HighScore: s.HighScore,
	}
}

// Playing reports whether gameplay mutations are allowed.
func (s *State) Playing() bool {
	return s.Phase == PhasePlaying
}
