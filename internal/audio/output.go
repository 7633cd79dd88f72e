package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate every cue is stored and played at.
const SampleRate = beep.SampleRate(44100)

var bufferFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Output receives ready-to-play streamers.
type Output interface {
	Play(s beep.Streamer)
}

// SpeakerOutput mixes cues into the system speaker.
type SpeakerOutput struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the speaker. It may only be called once per
// process.
func OpenSpeaker() (*SpeakerOutput, error) {
	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	return &SpeakerOutput{mixer: mixer}, nil
}

// Play adds a streamer to the mix.
func (o *SpeakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the audio device.
func (o *SpeakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
