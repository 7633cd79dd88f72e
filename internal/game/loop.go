package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazysnake/internal/config"
)

// Game drives one play session. It is not safe for concurrent use; the host
// calls Frame, Dispatch and SetDirection from a single goroutine.
type Game struct {
	cfg   config.Config
	log   *log.Logger
	rng   *rand.Rand
	state *State
	food  *FoodSpawner
	phone *PhoneTimer

	renderer  Renderer
	cues      CuePlayer
	store     HighScoreStore
	projector Projector

	lastFrame   time.Time
	accumulator time.Duration
	ticks       uint64
}

// Option configures a Game.
type Option func(*Game)

// WithRenderer sets the frame renderer.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithCuePlayer sets the movement sound player.
func WithCuePlayer(c CuePlayer) Option {
	return func(g *Game) { g.cues = c }
}

// WithHighScoreStore sets the high score persistence.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithProjector sets the UI projector.
func WithProjector(p Projector) Option {
	return func(g *Game) { g.projector = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New creates a game in the menu phase. The high score is loaded from the
// store once, here. The same seed, inputs and frame timestamps always produce
// the same session.
func New(cfg config.Config, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		log:       log.New(io.Discard),
		renderer:  nopPorts{},
		cues:      nopPorts{},
		store:     nopPorts{},
		projector: nopPorts{},
	}
	for _, opt := range opts {
		opt(g)
	}

	master := rand.New(rand.NewSource(seed))
	g.rng = rand.New(rand.NewSource(master.Int63()))
	g.food = NewFoodSpawner(rand.New(rand.NewSource(master.Int63())), cfg.Grid, cfg.Food)
	g.phone = NewPhoneTimer(rand.New(rand.NewSource(master.Int63())), cfg.Phone)

	highScore := 0
	g.safely("store", func() { highScore = g.store.LoadHighScore() })
	g.state = NewState(cfg, highScore)
	return g
}

// State returns the live state. Callers outside the frame callback must treat
// it as read-only.
func (g *Game) State() *State {
	return g.state
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Ticks returns the number of logic ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// FrameResult summarizes one Frame call.
type FrameResult struct {
	Ticks     int   // logic ticks run this frame
	CuePlayed bool  // move cue was requested
	Rang      bool  // a phone call started this frame
	Phase     Phase // phase after the frame
}

// TickInterval returns the current logic tick length: the base tick divided
// by the active effect's speed multiplier.
func (g *Game) TickInterval() time.Duration {
	base := g.cfg.Speed.BaseTick
	if g.state.Effect == nil {
		return base
	}
	m := g.state.Effect.SpeedMultiplier()
	if m <= 0 || m == 1.0 {
		return base
	}
	interval := time.Duration(float64(base) / m)
	if interval <= 0 {
		return base
	}
	return interval
}

// Frame advances wall-clock time to now, runs as many fixed-length ticks as
// fit, then renders and projects exactly once. The first frame has no elapsed
// time.
func (g *Game) Frame(now time.Time) FrameResult {
	var delta time.Duration
	if !g.lastFrame.IsZero() {
		delta = max(now.Sub(g.lastFrame), 0)
	}
	g.lastFrame = now
	g.accumulator += delta

	var res FrameResult
	if g.phone.Check(g.state, now) {
		res.Rang = true
		g.log.Debug("phone ringing", "caller", g.state.Phone.Caller)
	}

	interval := g.TickInterval()
	for g.accumulator >= interval {
		g.tick(now)
		g.accumulator -= interval
		res.Ticks++
	}

	if res.Ticks > 0 && g.state.Playing() {
		g.safely("cue", func() { g.cues.PlayMoveCue(g.state) })
		res.CuePlayed = true
	}

	g.safely("renderer", func() { g.renderer.Render(g.state) })
	g.safely("projector", func() { g.projector.Project(g.state) })

	res.Phase = g.state.Phase
	return res
}

// tick runs one logic step: move, eat, then the death check.
func (g *Game) tick(now time.Time) {
	s := g.state
	if !s.Playing() {
		return
	}
	g.ticks++

	MoveSnake(s, g.cfg.Grid, g.cfg.Colors)

	if FoodCollision(s) {
		kind := s.Food.Kind
		GrowSnake(s)
		s.Score = len(s.Snake.Segments)

		if effect, ok := kind.EffectKind(); ok {
			g.ApplyEffect(effect)
		} else {
			ClearEffect(s, g.cfg.Colors)
			s.Snake.Color = g.cfg.Colors.Growing
		}
		g.food.Spawn(s)
	}

	if WallCollision(s, g.cfg.Grid) || SelfCollision(s) {
		// A ringing or idle phone is always hung up and rescheduled.
		g.phone.Dismiss(s, now)
		s.Phase = PhaseGameOver
		g.recordScore()
	}
}

// recordScore saves the score when it beats the cached high score.
func (g *Game) recordScore() {
	s := g.state
	s.NewHighScore = s.Score > s.HighScore
	g.log.Info("game over", "score", s.Score, "high_score", s.HighScore, "new_high", s.NewHighScore)
	if !s.NewHighScore {
		return
	}
	s.HighScore = s.Score
	g.safely("store", func() { g.store.SaveHighScore(s.Score) })
}

// safely calls a collaborator, logging instead of propagating a panic.
func (g *Game) safely(port string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("collaborator panicked", "port", port, "panic", r)
		}
	}()
	fn()
}
