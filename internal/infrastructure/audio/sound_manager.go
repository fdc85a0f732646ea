// Package audio plays the pickup chime through beep's speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// chime notes, a rising major third
const (
	chimeLow  = 987.77  // B5
	chimeHigh = 1318.51 // E6
	noteLen   = 70 * time.Millisecond
)

// SoundManager mixes game sounds into the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
	played      int
}

// NewSoundManager creates a sound manager from the audio settings.
// It makes no sound until Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(rate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
	}
}

// Initialize opens the speaker. Disabled audio is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Pickup plays the coin chime
func (sm *SoundManager) Pickup(value int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(sm.chime())
	speaker.Unlock()
	sm.played++
}

// Played returns how many chimes were mixed in
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// chime is two short decaying sine notes at the configured volume
func (sm *SoundManager) chime() beep.Streamer {
	notes := beep.Seq(
		NewToneGenerator(sm.rate, chimeLow, noteLen),
		NewToneGenerator(sm.rate, chimeHigh, 2*noteLen),
	)
	return &effects.Gain{Streamer: notes, Gain: sm.volume - 1}
}

// ToneGenerator is a sine tone with an exponential decay
type ToneGenerator struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	duration int
}

// NewToneGenerator creates a tone lasting d
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, duration: sr.N(d)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 30)
		sample := 0.5 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
