package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
)

func TestFirstFrameRunsNoTicks(t *testing.T) {
	rec := &recorder{}
	g := newPlaying(t, WithRenderer(rec), WithProjector(rec), WithCuePlayer(rec))

	res := g.Frame(t0)

	if res.Ticks != 0 || res.CuePlayed {
		t.Errorf("first frame = %+v, expected no ticks", res)
	}
	if rec.renders != 1 || rec.projects != 1 {
		t.Errorf("renders=%d projects=%d, expected 1 each", rec.renders, rec.projects)
	}
}

func TestFrameAccumulatesTicks(t *testing.T) {
	rec := &recorder{}
	g := newPlaying(t, WithRenderer(rec), WithProjector(rec), WithCuePlayer(rec))
	s := g.State()
	g.Frame(t0)

	// Half a tick: nothing moves yet.
	res := g.Frame(t0.Add(60 * time.Millisecond))
	if res.Ticks != 0 {
		t.Fatalf("ticks = %d after 60ms, expected 0", res.Ticks)
	}

	// Remainder carries over: 60 + 70 = 130ms, one tick.
	res = g.Frame(t0.Add(130 * time.Millisecond))
	if res.Ticks != 1 {
		t.Fatalf("ticks = %d after 130ms, expected 1", res.Ticks)
	}
	if s.Snake.Head() != (core.Point{X: 7, Y: 18}) {
		t.Errorf("head = %s, expected (7,18)", s.Snake.Head())
	}

	// A long frame runs several ticks but plays one cue and renders once.
	rec.cues, rec.renders, rec.projects = 0, 0, 0
	res = g.Frame(t0.Add(505 * time.Millisecond))
	if res.Ticks != 3 {
		t.Errorf("ticks = %d, expected 3", res.Ticks)
	}
	if rec.cues != 1 || rec.renders != 1 || rec.projects != 1 {
		t.Errorf("cues=%d renders=%d projects=%d, expected 1 each", rec.cues, rec.renders, rec.projects)
	}
	if g.Ticks() != 4 {
		t.Errorf("total ticks = %d, expected 4", g.Ticks())
	}
}

func TestTickIntervalFollowsEffect(t *testing.T) {
	tests := []struct {
		name     string
		effect   Effect
		expected time.Duration
	}{
		{"none", nil, 125 * time.Millisecond},
		{"boost", SpeedBoost{Multiplier: 2.0}, 62500 * time.Microsecond},
		{"decrease", SpeedDecrease{Multiplier: 0.5}, 250 * time.Millisecond},
		{"invincible", Invincibility{}, 125 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlaying(t)
			g.State().Effect = tc.effect
			if got := g.TickInterval(); got != tc.expected {
				t.Errorf("TickInterval = %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestSpeedEffectsChangeTickCount(t *testing.T) {
	g := newPlaying(t)
	g.State().Effect = SpeedBoost{Multiplier: 2.0}
	g.Frame(t0)
	if res := g.Frame(t0.Add(125 * time.Millisecond)); res.Ticks != 2 {
		t.Errorf("boosted ticks = %d, expected 2", res.Ticks)
	}

	g = newPlaying(t)
	g.State().Effect = SpeedDecrease{Multiplier: 0.5}
	g.Frame(t0)
	if res := g.Frame(t0.Add(125 * time.Millisecond)); res.Ticks != 0 {
		t.Errorf("slowed ticks = %d after 125ms, expected 0", res.Ticks)
	}
	if res := g.Frame(t0.Add(250 * time.Millisecond)); res.Ticks != 1 {
		t.Errorf("slowed ticks = %d after 250ms, expected 1", res.Ticks)
	}
}

func TestNoCueOutsidePlay(t *testing.T) {
	rec := &recorder{}
	g := New(config.DefaultConfig(), 1, WithCuePlayer(rec), WithRenderer(rec))
	g.Frame(t0)
	res := g.Frame(t0.Add(time.Second))

	if res.CuePlayed || rec.cues != 0 {
		t.Error("cue played in the menu")
	}
	if g.Ticks() != 0 {
		t.Errorf("logic ran %d ticks in the menu", g.Ticks())
	}
	if rec.renders != 2 {
		t.Errorf("renders = %d, expected one per frame", rec.renders)
	}
}

func TestEatGrowingFood(t *testing.T) {
	g := newPlaying(t)
	s := g.State()
	g.ApplyEffect(EffectSpeedDecrease)
	parkFood(s, core.Point{X: 7, Y: 18}, FoodGrowing)

	g.tick(t0)

	if len(s.Snake.Segments) != 6 || s.Score != 6 {
		t.Errorf("length=%d score=%d, expected 6 and 6", len(s.Snake.Segments), s.Score)
	}
	if s.Effect != nil {
		t.Errorf("growing food should clear the effect, got %v", s.Effect)
	}
	if s.Snake.Color != g.Config().Colors.Growing {
		t.Errorf("color = %q, expected the growing color", s.Snake.Color)
	}
	if s.Food.Position == nil || s.Snake.Occupies(*s.Food.Position) {
		t.Errorf("new food at %v overlaps the snake", s.Food.Position)
	}
}

func TestEatSpecialFood(t *testing.T) {
	for _, kind := range FoodKinds[1:] {
		t.Run(kind.String(), func(t *testing.T) {
			g := newPlaying(t)
			s := g.State()
			parkFood(s, core.Point{X: 7, Y: 18}, kind)

			g.tick(t0)

			want, _ := kind.EffectKind()
			if !IsEffectActive(s, want) {
				t.Errorf("active effect = %v, expected %v", s.Effect, want)
			}
			if s.Score != len(s.Snake.Segments) {
				t.Errorf("score %d != length %d", s.Score, len(s.Snake.Segments))
			}
		})
	}
}

func TestScoreTracksLengthOverManyMeals(t *testing.T) {
	g := newPlaying(t)
	s := g.State()
	g.ApplyEffect(EffectInvincibility)

	for i := range 10 {
		next := s.Snake.Head().Add(s.Snake.NextDirection.Delta())
		if next.X >= g.Config().Grid.Width {
			next.X = 0
		}
		parkFood(s, next, FoodGrowing)
		g.ApplyEffect(EffectInvincibility)
		g.tick(t0)

		if s.Score != len(s.Snake.Segments) {
			t.Fatalf("meal %d: score %d != length %d", i, s.Score, len(s.Snake.Segments))
		}
	}
	if s.Score != 15 {
		t.Errorf("score = %d, expected 15", s.Score)
	}
}

func TestHighScoreSavedOnce(t *testing.T) {
	store := &MemoryStore{Score: 5}
	g := newPlaying(t, WithHighScoreStore(store))
	s := g.State()
	if s.HighScore != 5 {
		t.Fatalf("high score = %d, expected 5 loaded from the store", s.HighScore)
	}

	// Eat once (score 6), then hit the right wall.
	parkFood(s, core.Point{X: 7, Y: 18}, FoodGrowing)
	g.tick(t0)
	parkFood(s, core.Point{X: 0, Y: 0}, FoodGrowing)
	for s.Playing() {
		g.tick(t0)
	}

	if !s.NewHighScore || s.HighScore != 6 {
		t.Errorf("NewHighScore=%v HighScore=%d, expected true and 6", s.NewHighScore, s.HighScore)
	}
	if store.Saves != 1 || store.Score != 6 {
		t.Errorf("store saves=%d score=%d, expected 1 and 6", store.Saves, store.Score)
	}

	// A worse game does not save.
	g.Dispatch(CmdNewGame, t0)
	parkFood(s, core.Point{X: 0, Y: 0}, FoodGrowing)
	for s.Playing() {
		g.tick(t0)
	}
	if s.NewHighScore {
		t.Error("NewHighScore set for a losing game")
	}
	if store.Saves != 1 || s.HighScore != 6 {
		t.Errorf("saves=%d high=%d after a worse game", store.Saves, s.HighScore)
	}
}

func TestNegativeStoredHighScore(t *testing.T) {
	g := New(config.DefaultConfig(), 1, WithHighScoreStore(&MemoryStore{Score: -20}))
	if g.State().HighScore != 0 {
		t.Errorf("high score = %d, expected 0", g.State().HighScore)
	}
}

func TestCollaboratorPanicIsContained(t *testing.T) {
	projected := false
	g := newPlaying(t,
		WithRenderer(RendererFunc(func(*State) { panic("boom") })),
		WithProjector(ProjectorFunc(func(*State) { projected = true })),
	)

	res := g.Frame(t0)

	if !projected {
		t.Error("projector skipped after renderer panic")
	}
	if res.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", res.Phase)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultConfig(), 12345)
		now := t0
		g.Dispatch(CmdNewGame, now)
		g.Frame(now)
		for i := range 200 {
			now = now.Add(16 * time.Millisecond)
			switch i {
			case 20:
				g.SetDirection(core.DirUp)
			case 40:
				g.SetDirection(core.DirRight)
			case 70:
				g.SetDirection(core.DirDown)
			}
			g.Frame(now)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Ticks == 0 {
		t.Error("no ticks ran")
	}
}
