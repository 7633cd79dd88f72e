package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
)

var t0 = time.Unix(1_700_000_000, 0)

// newPlaying creates a seeded game that has already started playing, with
// the food parked in the top-left corner out of the snake's way.
func newPlaying(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultConfig(), 42, opts...)
	if !g.Dispatch(CmdNewGame, t0) {
		t.Fatal("CmdNewGame should always apply")
	}
	parkFood(g.State(), core.Point{X: 0, Y: 0}, FoodGrowing)
	return g
}

func parkFood(s *State, p core.Point, kind FoodKind) {
	s.Food = Food{Position: &p, Kind: kind}
}

func placeSnake(s *State, dir core.Direction, cells ...core.Point) {
	s.Snake.Segments = append([]core.Point(nil), cells...)
	s.Snake.Direction = dir
	s.Snake.NextDirection = dir
}

// rowSnake builds a horizontal snake on row y with the head at headX and the
// body trailing in the +x direction.
func rowSnake(y, headX, length int) []core.Point {
	cells := make([]core.Point, length)
	for i := range cells {
		cells[i] = core.Point{X: headX + i, Y: y}
	}
	return cells
}

type recorder struct {
	renders  int
	projects int
	cues     int
	phases   []Phase
}

func (r *recorder) Render(s *State) {
	r.renders++
	r.phases = append(r.phases, s.Phase)
}

func (r *recorder) Project(*State)     { r.projects++ }
func (r *recorder) PlayMoveCue(*State) { r.cues++ }
