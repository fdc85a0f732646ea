package system

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

var testTuning = config.PlayerTuning{Speed: 500, MaxSpeed: 500, RestSpeed: 1, RestFrame: 1}

// newTestPlayer builds a 48x48 walker with the four directional clips
func newTestPlayer() *entity.Actor {
	sheet := image.NewRGBA(image.Rect(0, 0, 144, 192))
	p := entity.NewPhysics()
	p.Name = "player"
	for row, name := range []string{"down", "left", "right", "up"} {
		frames := make([]entity.Region, 3)
		for c := range frames {
			frames[c] = entity.SubRegion(sheet, image.Rect(c*48, row*48, (c+1)*48, (row+1)*48))
		}
		p.StoreClip(name, entity.NewClip(0.15, entity.PlayLoopPingPong, frames...))
	}
	p.SetOriginCenter()
	p.SetEllipseBoundary()
	p.Motion.SetMaxSpeed(testTuning.MaxSpeed)
	return p
}

func TestMovementSystem_Apply(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		vx   float64
		vy   float64
		clip string
	}{
		{"left", InputState{Left: true}, -500, 0, "left"},
		{"right", InputState{Right: true}, 500, 0, "right"},
		{"up moves towards negative y", InputState{Up: true}, 0, -500, "up"},
		{"down", InputState{Down: true}, 0, 500, "down"},
		{"last checked wins", InputState{Left: true, Up: true}, 0, -500, "up"},
		{"down beats everything", InputState{Left: true, Right: true, Up: true, Down: true}, 0, 500, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			s := NewMovementSystem(testTuning)

			s.Apply(p, tt.in)

			assert.Equal(t, tt.vx, p.Motion.Velocity.X)
			assert.Equal(t, tt.vy, p.Motion.Velocity.Y)
			assert.Equal(t, tt.clip, p.ActiveClipName())
			assert.False(t, p.Anim.Paused())
		})
	}
}

func TestMovementSystem_RestPose(t *testing.T) {
	p := newTestPlayer()
	s := NewMovementSystem(testTuning)

	s.Apply(p, InputState{Right: true})
	p.Tick(0.4)
	require.Equal(t, "right", p.ActiveClipName())

	s.Apply(p, InputState{})

	assert.Equal(t, 0.0, p.Motion.Speed(), "velocity is reset every frame")
	assert.True(t, p.Anim.Paused())
	assert.InDelta(t, 0.15, p.Anim.Elapsed(), 1e-12, "frozen on the rest frame")
	assert.Equal(t, "right", p.ActiveClipName(), "keeps facing the last direction")

	p.Tick(1)
	assert.InDelta(t, 0.15, p.Anim.Elapsed(), 1e-12)

	s.Apply(p, InputState{Right: true})
	assert.False(t, p.Anim.Paused())
}

func TestMovementSystem_IgnoresActorsWithoutMotion(t *testing.T) {
	s := NewMovementSystem(testTuning)

	assert.NotPanics(t, func() {
		s.Apply(nil, InputState{Left: true})
		s.Apply(entity.New(), InputState{Left: true})
	})
}
