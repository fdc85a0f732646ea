// Package geom provides 2D vectors, convex polygons and the overlap test
// used for actor collisions.
package geom

import "math"

// Vec2 is a 2D vector (position, velocity or acceleration)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the magnitude
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Len2 returns the squared magnitude
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns a unit vector in the same direction (zero stays zero)
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// WithLen returns v scaled to length l. A zero vector stays zero.
func (v Vec2) WithLen(l float64) Vec2 {
	cur := v.Len()
	if cur == 0 {
		return Vec2{}
	}
	return v.Scale(l / cur)
}

// Angle returns the direction of v in degrees
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Rotate returns v rotated by deg degrees around the origin
func (v Vec2) Rotate(deg float64) Vec2 {
	if deg == 0 {
		return v
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// FromAngle builds a vector from an angle in degrees and a magnitude
func FromAngle(deg, length float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{length * cos, length * sin}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
