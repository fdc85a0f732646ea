package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

func drain(s beep.Streamer) (total int) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneGenerator(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewToneGenerator(rate, 1000, 10*time.Millisecond)

	samples := make([][2]float64, 100)
	n, ok := g.Stream(samples)
	require.True(t, ok)
	assert.Equal(t, 100, n)
	for i := range n {
		assert.LessOrEqual(t, samples[i][0], 0.5)
		assert.GreaterOrEqual(t, samples[i][0], -0.5)
		assert.Equal(t, samples[i][0], samples[i][1], "mono on both channels")
	}
	assert.NoError(t, g.Err())
}

func TestToneGenerator_Ends(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewToneGenerator(rate, 1000, 10*time.Millisecond)

	assert.Equal(t, rate.N(10*time.Millisecond), drain(g))

	n, ok := g.Stream(make([][2]float64, 16))
	assert.Zero(t, n)
	assert.False(t, ok, "exhausted tone stays drained")
}

func TestSoundManager_Chime(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{SampleRate: 22050, Volume: 0.3})

	total := drain(sm.chime())

	assert.Equal(t, sm.rate.N(noteLen)+sm.rate.N(2*noteLen), total)
}

func TestSoundManager_Defaults(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{})
	assert.Equal(t, beep.SampleRate(44100), sm.rate)
}

func TestSoundManager_DisabledIsSilent(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: false, SampleRate: 44100})

	require.NoError(t, sm.Initialize())
	sm.Pickup(1)
	sm.Cleanup()

	assert.Zero(t, sm.Played(), "no speaker, no chime")
}
