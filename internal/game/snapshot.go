package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/crazysnake/internal/core"
)

// Snapshot captures the comparable parts of a session for determinism
// testing and debugging.
type Snapshot struct {
	Ticks      uint64
	Phase      Phase
	Score      int
	SnakeLen   int
	Head       core.Point
	Dir        core.Direction
	Food       core.Point
	HasFood    bool
	FoodKind   FoodKind
	Effect     string // "none" when no effect is active
	Multiplier float64
	Ringing    bool
	Caller     string
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Ticks:      g.ticks,
		Phase:      s.Phase,
		Score:      s.Score,
		SnakeLen:   len(s.Snake.Segments),
		Head:       s.Snake.Head(),
		Dir:        s.Snake.Direction,
		FoodKind:   s.Food.Kind,
		Effect:     "none",
		Multiplier: 1.0,
		Ringing:    s.Phone.Active,
		Caller:     s.Phone.Caller,
	}
	if s.Food.Position != nil {
		snap.Food = *s.Food.Position
		snap.HasFood = true
	}
	if s.Effect != nil {
		snap.Effect = s.Effect.Kind().String()
		snap.Multiplier = s.Effect.SpeedMultiplier()
	}
	return snap
}

// DebugState returns a multi-line description of the session.
func (g *Game) DebugState() string {
	snap := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Ticks: %d, Phase: %s, Score: %d, High: %d\n", snap.Ticks, snap.Phase, snap.Score, g.state.HighScore)
	fmt.Fprintf(&b, "Snake len: %d, Head: %s, Direction: %s\n", snap.SnakeLen, snap.Head, snap.Dir)
	fmt.Fprintf(&b, "Food: %s (%s), Effect: %s x%.2f\n", snap.Food, snap.FoodKind, snap.Effect, snap.Multiplier)
	fmt.Fprintf(&b, "Phone: ringing=%v caller=%q\n", snap.Ringing, snap.Caller)
	return b.String()
}
