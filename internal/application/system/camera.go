package system

import (
	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/domain/geom"
)

// Camera is the center of the viewport in world coordinates
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
}

// NewCamera creates a camera for a viewW x viewH viewport
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH}
}

// Follow centers the camera on the target's pivot, clamped so the view
// never leaves the mapW x mapH map. A map smaller than the view is centered.
func (c *Camera) Follow(target *entity.Actor, mapW, mapH float64) {
	if target == nil {
		return
	}
	focus := target.Center()
	c.X = clampAxis(focus.X, c.ViewW, mapW)
	c.Y = clampAxis(focus.Y, c.ViewH, mapH)
}

func clampAxis(v, view, size float64) float64 {
	lo, hi := view/2, size-view/2
	if hi < lo {
		return size / 2
	}
	return geom.Clamp(v, lo, hi)
}

// TopLeft returns the world position drawn at the top-left screen corner
func (c *Camera) TopLeft() geom.Vec2 {
	return geom.Vec2{X: c.X - c.ViewW/2, Y: c.Y - c.ViewH/2}
}

// WorldToScreen converts a world position to screen coordinates
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.TopLeft())
}
