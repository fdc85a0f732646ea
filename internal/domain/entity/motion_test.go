package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tilequest/internal/domain/geom"
)

func TestNewPhysics_Defaults(t *testing.T) {
	a := NewPhysics()

	assert.NotNil(t, a.Anim)
	assert.NotNil(t, a.Motion)
	assert.Equal(t, DefaultMaxSpeed, a.Motion.MaxSpeed)
	assert.Equal(t, 0.0, a.Motion.Deceleration)
	assert.False(t, a.Motion.AutoAngle)
	assert.Equal(t, geom.Vec2{X: 1, Y: 1}, a.Scale)
	assert.True(t, a.Visible)
}

func TestMotion_Integrate(t *testing.T) {
	t.Run("acceleration then displacement", func(t *testing.T) {
		a := NewPhysics()
		a.Motion.SetAcceleration(10, 0)

		a.Tick(0.5)

		assert.InDelta(t, 5.0, a.Motion.Velocity.X, 1e-12)
		assert.InDelta(t, 2.5, a.Position.X, 1e-12, "position uses the updated velocity")
	})

	t.Run("deceleration stops at exactly zero", func(t *testing.T) {
		tests := []struct {
			name  string
			angle float64
			speed float64
			decel float64
			dt    float64
		}{
			{"overshoot", 0, 3, 10, 1},
			{"exact", 0, 5, 10, 0.5},
			{"diagonal", 37, 4, 100, 0.1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := NewPhysics()
				a.Motion.SetVelocityAngle(tt.angle, tt.speed)
				a.Motion.SetDeceleration(tt.decel)

				a.Tick(tt.dt)

				assert.Equal(t, 0.0, a.Motion.Speed())
				assert.Equal(t, geom.Vec2{}, a.Motion.Velocity)
			})
		}
	})

	t.Run("deceleration keeps direction", func(t *testing.T) {
		a := NewPhysics()
		a.Motion.SetVelocity(30, 40)
		a.Motion.SetDeceleration(10)

		a.Tick(1)

		assert.InDelta(t, 40.0, a.Motion.Speed(), 1e-9)
		assert.InDelta(t, 24.0, a.Motion.Velocity.X, 1e-9)
		assert.InDelta(t, 32.0, a.Motion.Velocity.Y, 1e-9)
	})

	t.Run("no deceleration while thrusting", func(t *testing.T) {
		a := NewPhysics()
		a.Motion.SetVelocity(10, 0)
		a.Motion.SetDeceleration(1000)
		a.Motion.SetAcceleration(1, 0)

		a.Tick(1)

		assert.InDelta(t, 11.0, a.Motion.Speed(), 1e-9)
	})

	t.Run("speed is capped with direction preserved", func(t *testing.T) {
		a := NewPhysics()
		a.Motion.SetMaxSpeed(100)
		a.Motion.SetVelocity(60, 80)
		a.Motion.SetAcceleration(600, 800)

		a.Tick(1)

		assert.InDelta(t, 100.0, a.Motion.Speed(), 1e-9)
		assert.InDelta(t, 60.0, a.Motion.Velocity.X, 1e-9)
		assert.InDelta(t, 80.0, a.Motion.Velocity.Y, 1e-9)
		assert.InDelta(t, 60.0, a.Position.X, 1e-9)
	})

	t.Run("auto angle follows motion", func(t *testing.T) {
		a := NewPhysics()
		a.Motion.AutoAngle = true
		a.Motion.SetVelocity(0, 10)

		a.Tick(0.1)

		assert.InDelta(t, 90.0, a.Rotation, 1e-9)
	})

	t.Run("auto angle ignores near-zero speed", func(t *testing.T) {
		a := NewPhysics()
		a.Motion.AutoAngle = true
		a.Rotation = 45
		a.Motion.SetVelocity(-0.05, 0)

		a.Tick(0.1)

		assert.Equal(t, 45.0, a.Rotation)
	})
}

func TestMotion_Setters(t *testing.T) {
	m := NewMotion()

	m.SetMaxSpeed(-5)
	assert.Equal(t, 0.0, m.MaxSpeed)
	m.SetDeceleration(-1)
	assert.Equal(t, 0.0, m.Deceleration)

	m.SetVelocity(1, 2)
	m.AddVelocity(1, 1)
	assert.Equal(t, geom.Vec2{X: 2, Y: 3}, m.Velocity)

	m.SetVelocity(3, 4)
	m.SetSpeed(10)
	assert.InDelta(t, 6.0, m.Velocity.X, 1e-9)
	assert.InDelta(t, 8.0, m.Velocity.Y, 1e-9)

	m.SetAcceleration(1, 0)
	m.AddAcceleration(0, 1)
	assert.Equal(t, geom.Vec2{X: 1, Y: 1}, m.Acceleration)

	m.SetAccelerationAngle(0, 5)
	m.AddAccelerationAngle(90, 5)
	assert.InDelta(t, 5.0, m.Acceleration.X, 1e-9)
	assert.InDelta(t, 5.0, m.Acceleration.Y, 1e-9)

	m.SetVelocity(-1, 0)
	assert.InDelta(t, 180.0, m.MotionAngle(), 1e-9)
}

func TestActor_AccelerateForward(t *testing.T) {
	a := New()
	a.Rotation = 90

	a.AccelerateForward(20)

	if assert.NotNil(t, a.Motion) {
		assert.InDelta(t, 0.0, a.Motion.Acceleration.X, 1e-9)
		assert.InDelta(t, 20.0, a.Motion.Acceleration.Y, 1e-9)
	}
}
