package system

import "github.com/younwookim/tilequest/internal/domain/geom"

// Direction is a movement intent
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists the intents in the order they are checked.
// When several are held the last one checked wins.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// Vector returns the unit vector of the direction (y grows downwards)
func (d Direction) Vector() geom.Vec2 {
	switch d {
	case DirLeft:
		return geom.Vec2{X: -1}
	case DirRight:
		return geom.Vec2{X: 1}
	case DirUp:
		return geom.Vec2{Y: -1}
	case DirDown:
		return geom.Vec2{Y: 1}
	default:
		return geom.Vec2{}
	}
}

// ClipName returns the walk clip played while moving in the direction
func (d Direction) ClipName() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return ""
	}
}

// String returns the string representation of the direction
func (d Direction) String() string { return d.ClipName() }
