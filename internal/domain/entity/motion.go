package entity

import "github.com/younwookim/tilequest/internal/domain/geom"

const (
	// DefaultMaxSpeed is effectively uncapped
	DefaultMaxSpeed = 9999.0

	// Below this acceleration magnitude the actor coasts and decelerates
	thrustThreshold = 0.01
	// Below this speed auto-angle keeps the last rotation
	autoAngleMinSpeed = 0.1
)

// Motion is the motion-state behaviour of an actor
type Motion struct {
	Velocity     geom.Vec2 // units per second
	Acceleration geom.Vec2 // units per second²
	MaxSpeed     float64
	Deceleration float64
	AutoAngle    bool
}

// NewMotion returns motion state at rest with no speed cap
func NewMotion() *Motion {
	return &Motion{MaxSpeed: DefaultMaxSpeed}
}

// SetVelocity sets the velocity components
func (m *Motion) SetVelocity(vx, vy float64) { m.Velocity = geom.Vec2{X: vx, Y: vy} }

// AddVelocity adds to the velocity components
func (m *Motion) AddVelocity(vx, vy float64) { m.Velocity = m.Velocity.Add(geom.Vec2{X: vx, Y: vy}) }

// SetVelocityAngle sets velocity from an angle (degrees) and speed
func (m *Motion) SetVelocityAngle(deg, speed float64) { m.Velocity = geom.FromAngle(deg, speed) }

// Speed returns the velocity magnitude
func (m *Motion) Speed() float64 { return m.Velocity.Len() }

// SetSpeed rescales velocity to s keeping its direction
func (m *Motion) SetSpeed(s float64) { m.Velocity = m.Velocity.WithLen(s) }

// SetMaxSpeed sets the speed cap (negative values clamp to 0)
func (m *Motion) SetMaxSpeed(s float64) { m.MaxSpeed = nonNegative(s) }

// SetDeceleration sets the coasting deceleration (negative values clamp to 0)
func (m *Motion) SetDeceleration(d float64) { m.Deceleration = nonNegative(d) }

// MotionAngle returns the direction of travel in degrees
func (m *Motion) MotionAngle() float64 { return m.Velocity.Angle() }

// SetAcceleration sets the acceleration components
func (m *Motion) SetAcceleration(ax, ay float64) { m.Acceleration = geom.Vec2{X: ax, Y: ay} }

// AddAcceleration adds to the acceleration components
func (m *Motion) AddAcceleration(ax, ay float64) {
	m.Acceleration = m.Acceleration.Add(geom.Vec2{X: ax, Y: ay})
}

// SetAccelerationAngle sets acceleration from an angle (degrees) and magnitude
func (m *Motion) SetAccelerationAngle(deg, a float64) { m.Acceleration = geom.FromAngle(deg, a) }

// AddAccelerationAngle adds an angle/magnitude acceleration
func (m *Motion) AddAccelerationAngle(deg, a float64) {
	m.Acceleration = m.Acceleration.Add(geom.FromAngle(deg, a))
}

// Integrate advances t by one tick:
//  1. v += a*dt
//  2. without thrust, slow down by deceleration*dt, stopping at exactly 0
//  3. cap speed at MaxSpeed
//  4. position += v*dt
//  5. with AutoAngle, face the direction of travel
func (m *Motion) Integrate(t *Transform, dt float64) {
	m.Velocity = m.Velocity.Add(m.Acceleration.Scale(dt))

	if m.Acceleration.Len() < thrustThreshold {
		dec := m.Deceleration * dt
		if speed := m.Speed(); speed <= dec {
			m.Velocity = geom.Vec2{}
		} else if dec > 0 {
			m.SetSpeed(speed - dec)
		}
	}

	if m.Speed() > m.MaxSpeed {
		m.SetSpeed(m.MaxSpeed)
	}

	t.Position = t.Position.Add(m.Velocity.Scale(dt))

	if m.AutoAngle && m.Speed() > autoAngleMinSpeed {
		t.Rotation = m.MotionAngle()
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
