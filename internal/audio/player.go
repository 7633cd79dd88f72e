package audio

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"

	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/game"
)

// Status reports how the sound set was loaded.
type Status struct {
	Ready       bool
	Expected    int
	Loaded      int
	Synthesized int
	Failed      []string
}

// Player implements game.CuePlayer. Cues are skipped until Load finishes.
type Player struct {
	mu sync.Mutex

	cfg     config.AudioConfig
	palette config.Palette
	out     Output
	log     *log.Logger
	now     func() time.Time

	buffers map[Key]*beep.Buffer
	status  Status

	alternator int
	previous   Category
	lastPlay   time.Time
}

// Option configures a Player.
type Option func(*Player)

// WithLogger sets the logger used for load and playback warnings.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.log = l }
}

// WithClock replaces time.Now for rate limiting.
func WithClock(now func() time.Time) Option {
	return func(p *Player) { p.now = now }
}

// NewPlayer creates a player writing to out.
func NewPlayer(cfg config.AudioConfig, palette config.Palette, out Output, opts ...Option) *Player {
	p := &Player{
		cfg:     cfg,
		palette: palette,
		out:     out,
		log:     log.Default(),
		now:     time.Now,
		buffers: make(map[Key]*beep.Buffer),
		status:  Status{Expected: ExpectedSounds},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadAsync loads the sound set in the background. The returned channel is
// closed once loading is done.
func (p *Player) LoadAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Load(ctx)
	}()
	return done
}

// Load decodes every move-<category>-<n>.mp3 under the sounds path. Sounds
// that cannot be read are replaced with a synthesized tone.
func (p *Player) Load(ctx context.Context) Status {
	buffers := make(map[Key]*beep.Buffer, ExpectedSounds)
	status := Status{Expected: ExpectedSounds}

	for _, cat := range Categories {
		for n := 1; n <= SoundsPerCategory; n++ {
			if ctx.Err() != nil {
				p.log.Warn("sound loading cancelled", "loaded", status.Loaded)
				return p.finishLoad(buffers, status)
			}
			key := Key{Category: cat, Number: n}
			path := filepath.Join(p.cfg.SoundsPath, key.FileName())
			buf, err := decodeFile(path)
			if err != nil {
				p.log.Warn("failed to load sound", "sound", key.String(), "path", path, "err", err)
				status.Failed = append(status.Failed, key.String())
				buf = synthesize(key)
				status.Synthesized++
			} else {
				status.Loaded++
			}
			buffers[key] = buf
		}
	}

	if len(status.Failed) > 0 {
		p.log.Warn("some sounds failed to load", "loaded", status.Loaded, "expected", status.Expected, "failed", status.Failed)
	} else {
		p.log.Info("sounds loaded", "loaded", status.Loaded)
	}
	return p.finishLoad(buffers, status)
}

func (p *Player) finishLoad(buffers map[Key]*beep.Buffer, status Status) Status {
	status.Ready = true
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buffers = buffers
	p.status = status
	return status
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode: %w", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		src = beep.Resample(4, format.SampleRate, SampleRate, streamer)
	}
	buf := beep.NewBuffer(bufferFormat)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return buf, nil
}

// Status returns the current load status.
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.status
	s.Failed = append([]string(nil), p.status.Failed...)
	return s
}

// PlayMoveCue implements game.CuePlayer.
func (p *Player) PlayMoveCue(s *game.State) {
	p.next(s)
}

// next picks and plays the cue for the state. It returns the chosen key and
// whether anything was sent to the output.
func (p *Player) next(s *game.State) (Key, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.status.Ready || p.out == nil {
		return Key{}, false
	}

	now := p.now()
	if !p.lastPlay.IsZero() && now.Sub(p.lastPlay) < p.cfg.MinInterval {
		return Key{}, false
	}

	cat, known := CategoryFor(s, p.palette)
	if !known {
		p.log.Warn("unknown snake state for sound, using default", "color", s.Snake.Color)
	}
	if cat != p.previous {
		p.alternator = 0
		p.previous = cat
	}

	key := Key{Category: cat, Number: p.alternator + 1}
	p.alternator = 1 - p.alternator
	p.lastPlay = now

	buf := p.buffers[key]
	if buf == nil {
		p.log.Warn("sound not loaded", "sound", key.String())
		return key, false
	}
	p.out.Play(p.withVolume(buf.Streamer(0, buf.Len())))
	return key, true
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	v := max(0, min(1, p.cfg.Volume))
	if v == 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(v),
		Silent:   v == 0,
	}
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.Volume = max(0, min(1, v))
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Volume
}

// Reset forgets the alternation and rate limit state.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alternator = 0
	p.previous = ""
	p.lastPlay = time.Time{}
}
