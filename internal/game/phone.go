package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/crazysnake/internal/config"
)

// PhoneTimer schedules and triggers phone-call interruptions. It is polled
// once per frame against wall-clock time, independently of ticks.
type PhoneTimer struct {
	rng      *rand.Rand
	minDelay time.Duration
	maxDelay time.Duration
	callers  []string
}

// NewPhoneTimer creates a timer with its own random source.
func NewPhoneTimer(rng *rand.Rand, cfg config.PhoneConfig) *PhoneTimer {
	callers := cfg.Callers
	if len(callers) == 0 {
		callers = config.DefaultCallers
	}
	return &PhoneTimer{
		rng:      rng,
		minDelay: cfg.MinDelay,
		maxDelay: cfg.MaxDelay,
		callers:  callers,
	}
}

// Check starts ringing once the scheduled time has passed. It only fires while
// playing and not already ringing, and reports whether a call started.
func (p *PhoneTimer) Check(s *State, now time.Time) bool {
	if !s.Playing() || s.Phone.Active {
		return false
	}
	if now.Before(s.Phone.NextCallAt) {
		return false
	}
	s.Phone.Active = true
	s.Phone.Caller = p.callers[p.rng.Intn(len(p.callers))]
	return true
}

// Dismiss ends the call and schedules the next one.
func (p *PhoneTimer) Dismiss(s *State, now time.Time) {
	s.Phone.Active = false
	s.Phone.Caller = ""
	p.Schedule(s, now)
}

// Schedule sets the next call time to now plus a uniform delay.
func (p *PhoneTimer) Schedule(s *State, now time.Time) {
	s.Phone.NextCallAt = now.Add(p.NextDelay())
}

// NextDelay draws a delay from [minDelay, maxDelay).
func (p *PhoneTimer) NextDelay() time.Duration {
	span := p.maxDelay - p.minDelay
	if span <= 0 {
		return p.minDelay
	}
	return p.minDelay + time.Duration(p.rng.Int63n(int64(span)))
}

// Callers returns the caller pool.
func (p *PhoneTimer) Callers() []string {
	return p.callers
}
