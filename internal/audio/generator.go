package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// toneLength is the duration of a synthesized fallback cue.
const toneLength = 60 * time.Millisecond

// baseFrequency per category; sound 2 is a major third above sound 1.
var baseFrequency = map[Category]float64{
	CategoryDefault:       220,
	CategoryGrowing:       330,
	CategoryInvincibility: 440,
	CategoryWallPhase:     392,
	CategorySpeedBoost:    523,
	CategorySpeedDecrease: 165,
	CategoryReverse:       294,
}

func frequencyFor(k Key) float64 {
	f, ok := baseFrequency[k.Category]
	if !ok {
		f = baseFrequency[CategoryDefault]
	}
	if k.Number == 2 {
		f *= 1.25
	}
	return f
}

// ToneGenerator generates a short plucked square-ish tone
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus odd harmonics
		sample := 0.0
		sample += 0.5 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.05 * math.Sin(2*math.Pi*g.freq*5*t)

		// 3ms attack, exponential decay
		attack := math.Min(t/0.003, 1.0)
		sample *= attack * math.Exp(-t*40) * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// synthesize renders the fallback cue for a key into a buffer.
func synthesize(k Key) *beep.Buffer {
	buf := beep.NewBuffer(bufferFormat)
	buf.Append(beep.Take(SampleRate.N(toneLength), NewToneGenerator(SampleRate, frequencyFor(k))))
	return buf
}
