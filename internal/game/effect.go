package game

import (
	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
)

// EffectKind identifies one of the five transient effects.
type EffectKind int

const (
	EffectInvincibility EffectKind = iota
	EffectWallPhase
	EffectSpeedBoost
	EffectSpeedDecrease
	EffectReverseControls
)

var effectNames = [...]string{
	EffectInvincibility:   "invincibility",
	EffectWallPhase:       "wallPhase",
	EffectSpeedBoost:      "speedBoost",
	EffectSpeedDecrease:   "speedDecrease",
	EffectReverseControls: "reverseControls",
}

// Valid reports whether k names a known effect.
func (k EffectKind) Valid() bool {
	return k >= EffectInvincibility && k <= EffectReverseControls
}

func (k EffectKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return effectNames[k]
}

// ParseEffectKind converts an effect name such as "wallPhase".
func ParseEffectKind(name string) (EffectKind, bool) {
	for k, n := range effectNames {
		if n == name {
			return EffectKind(k), true
		}
	}
	return 0, false
}

// Color returns the snake color shown while the effect is active.
func (k EffectKind) Color(p config.Palette) core.Color {
	switch k {
	case EffectInvincibility:
		return p.Invincibility
	case EffectWallPhase:
		return p.WallPhase
	case EffectSpeedBoost:
		return p.SpeedBoost
	case EffectSpeedDecrease:
		return p.SpeedDecrease
	case EffectReverseControls:
		return p.ReverseControls
	default:
		return p.Default
	}
}

// Effect is the closed set of active effects. Only the speed effects carry
// data.
type Effect interface {
	Kind() EffectKind
	// SpeedMultiplier scales the tick rate; 1.0 leaves it unchanged.
	SpeedMultiplier() float64
	effect()
}

// Invincibility disables wall and self death; walls wrap.
type Invincibility struct{}

// WallPhase wraps the head across one wall, then expires.
type WallPhase struct{}

// SpeedBoost makes the snake move faster.
type SpeedBoost struct{ Multiplier float64 }

// SpeedDecrease makes the snake move slower.
type SpeedDecrease struct{ Multiplier float64 }

// ReverseControls inverts direction input.
type ReverseControls struct{}

func (Invincibility) Kind() EffectKind   { return EffectInvincibility }
func (WallPhase) Kind() EffectKind       { return EffectWallPhase }
func (SpeedBoost) Kind() EffectKind      { return EffectSpeedBoost }
func (SpeedDecrease) Kind() EffectKind   { return EffectSpeedDecrease }
func (ReverseControls) Kind() EffectKind { return EffectReverseControls }

func (Invincibility) SpeedMultiplier() float64   { return 1.0 }
func (WallPhase) SpeedMultiplier() float64       { return 1.0 }
func (e SpeedBoost) SpeedMultiplier() float64    { return e.Multiplier }
func (e SpeedDecrease) SpeedMultiplier() float64 { return e.Multiplier }
func (ReverseControls) SpeedMultiplier() float64 { return 1.0 }

func (Invincibility) effect()   {}
func (WallPhase) effect()       {}
func (SpeedBoost) effect()      {}
func (SpeedDecrease) effect()   {}
func (ReverseControls) effect() {}

// ApplyEffect replaces the active effect with a new one of the given kind
// and recolors the snake. Unknown kinds are logged and ignored.
func (g *Game) ApplyEffect(kind EffectKind) {
	if !kind.Valid() {
		g.log.Warn("ignoring invalid effect", "kind", int(kind))
		return
	}

	s := g.state
	ClearEffect(s, g.cfg.Colors)

	var e Effect
	switch kind {
	case EffectInvincibility:
		e = Invincibility{}
	case EffectWallPhase:
		e = WallPhase{}
	case EffectSpeedBoost:
		e = SpeedBoost{Multiplier: g.uniform(g.cfg.Speed.Boost)}
	case EffectSpeedDecrease:
		e = SpeedDecrease{Multiplier: g.uniform(g.cfg.Speed.Decrease)}
	case EffectReverseControls:
		e = ReverseControls{}
	}

	s.Effect = e
	s.Snake.Color = kind.Color(g.cfg.Colors)
	g.log.Debug("effect applied", "kind", kind, "multiplier", e.SpeedMultiplier())
}

// uniform draws from [r.Min, r.Max).
func (g *Game) uniform(r config.Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

// ClearEffect removes the active effect and restores the default color.
func ClearEffect(s *State, p config.Palette) {
	s.Effect = nil
	s.Snake.Color = p.Default
}

// IsEffectActive reports whether the active effect is of the given kind.
func IsEffectActive(s *State, kind EffectKind) bool {
	return s.Effect != nil && s.Effect.Kind() == kind
}
