package system

import (
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/infrastructure/config"
)

// MovementSystem turns directional input into player velocity and walk
// animation
type MovementSystem struct {
	speed     float64
	restSpeed float64
	restFrame int
}

// NewMovementSystem creates a movement system from player tuning
func NewMovementSystem(cfg config.PlayerTuning) *MovementSystem {
	return &MovementSystem{
		speed:     cfg.Speed,
		restSpeed: cfg.RestSpeed,
		restFrame: cfg.RestFrame,
	}
}

// Apply resets the player's velocity, sets it from the held directions
// (the last one checked wins) and picks the matching clip. Below the rest
// speed the walk cycle is paused on the rest frame.
func (s *MovementSystem) Apply(player *entity.Actor, in InputState) {
	if player == nil || player.Motion == nil {
		return
	}

	player.Motion.SetVelocity(0, 0)
	for _, d := range Directions {
		if !in.Held(d) {
			continue
		}
		v := d.Vector().Scale(s.speed)
		player.Motion.SetVelocity(v.X, v.Y)
		player.SetActiveClip(d.ClipName())
	}

	if player.Motion.Speed() < s.restSpeed {
		player.PauseAnimation()
		player.SetFrameIndex(s.restFrame)
	} else {
		player.ResumeAnimation()
	}
}
