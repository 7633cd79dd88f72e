package game

import (
	"math/rand"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
)

// MaxSpawnAttempts bounds random placement before falling back to a scan.
const MaxSpawnAttempts = 1000

// FoodKind is the type of food on the board. The order is the order in
// which weights are accumulated when picking a kind.
type FoodKind int

const (
	FoodGrowing FoodKind = iota
	FoodInvincibility
	FoodWallPhase
	FoodSpeedBoost
	FoodSpeedDecrease
	FoodReverseControls
)

// FoodKinds lists every kind in spawner order.
var FoodKinds = [...]FoodKind{
	FoodGrowing,
	FoodInvincibility,
	FoodWallPhase,
	FoodSpeedBoost,
	FoodSpeedDecrease,
	FoodReverseControls,
}

func (k FoodKind) String() string {
	switch k {
	case FoodGrowing:
		return "growing"
	case FoodInvincibility:
		return "invincibility"
	case FoodWallPhase:
		return "wallPhase"
	case FoodSpeedBoost:
		return "speedBoost"
	case FoodSpeedDecrease:
		return "speedDecrease"
	case FoodReverseControls:
		return "reverseControls"
	default:
		return "unknown"
	}
}

// EffectKind returns the effect a special food applies. Growing food has none.
func (k FoodKind) EffectKind() (EffectKind, bool) {
	switch k {
	case FoodInvincibility:
		return EffectInvincibility, true
	case FoodWallPhase:
		return EffectWallPhase, true
	case FoodSpeedBoost:
		return EffectSpeedBoost, true
	case FoodSpeedDecrease:
		return EffectSpeedDecrease, true
	case FoodReverseControls:
		return EffectReverseControls, true
	}
	return 0, false
}

// Color returns the food's display color.
func (k FoodKind) Color(p config.Palette) core.Color {
	if e, ok := k.EffectKind(); ok {
		return e.Color(p)
	}
	return p.Growing
}

// FoodSpawner places food on free cells and picks weighted kinds.
type FoodSpawner struct {
	rng     *rand.Rand
	grid    config.GridConfig
	weights [len(FoodKinds)]int
}

// NewFoodSpawner creates a spawner with its own random source.
func NewFoodSpawner(rng *rand.Rand, grid config.GridConfig, weights config.FoodWeights) *FoodSpawner {
	return &FoodSpawner{
		rng:     rng,
		grid:    grid,
		weights: weights.Ordered(),
	}
}

// Spawn places a new food item, replacing the old one.
func (f *FoodSpawner) Spawn(s *State) {
	pos := f.Position(&s.Snake)
	s.Food = Food{Position: &pos, Kind: f.Kind()}
}

// Position picks a cell not covered by the snake. Random draws come first,
// then a row-major scan; a full grid yields (0,0).
func (f *FoodSpawner) Position(snake *Snake) core.Point {
	for range MaxSpawnAttempts {
		p := core.Point{X: f.rng.Intn(f.grid.Width), Y: f.rng.Intn(f.grid.Height)}
		if !snake.Occupies(p) {
			return p
		}
	}

	for y := 0; y < f.grid.Height; y++ {
		for x := 0; x < f.grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !snake.Occupies(p) {
				return p
			}
		}
	}
	return core.Point{}
}

// Kind draws a food kind from the configured percentages. Residual mass
// below 100 falls back to growing food.
func (f *FoodSpawner) Kind() FoodKind {
	roll := f.rng.Float64() * 100
	cumulative := 0
	for i, w := range f.weights {
		cumulative += w
		if roll < float64(cumulative) {
			return FoodKinds[i]
		}
	}
	return FoodGrowing
}
