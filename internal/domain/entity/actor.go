// Package entity defines the actor model: a renderable actor with optional
// animation and motion behaviours and an optional collision boundary.
package entity

import (
	"image/color"

	"github.com/younwookim/tilequest/internal/domain/diag"
	"github.com/younwookim/tilequest/internal/domain/geom"
)

// Transform is the placement of an actor in world space.
// Rotation is in degrees around Origin; Origin is relative to Position.
type Transform struct {
	Position geom.Vec2
	Width    float64
	Height   float64
	Origin   geom.Vec2
	Scale    geom.Vec2
	Rotation float64
}

// Sprite is what gets drawn for an actor
type Sprite struct {
	Region  Region
	Tint    color.RGBA
	Visible bool
}

// Actor is a renderable scene object.
// Anim and Motion are optional behaviours; a physics actor has both.
type Actor struct {
	Transform
	Sprite

	// Bounds is the collision shape in local coordinates (nil = not collidable).
	// Its origin always matches Transform.Origin.
	Bounds *geom.Polygon

	Anim   *Animator
	Motion *Motion

	Name string
	Diag diag.Channel
}

// New creates a plain renderable actor
func New() *Actor {
	return &Actor{
		Transform: Transform{Scale: geom.Vec2{X: 1, Y: 1}},
		Sprite:    Sprite{Tint: color.RGBA{255, 255, 255, 255}, Visible: true},
	}
}

// NewAnimated creates an actor with an empty clip table
func NewAnimated() *Actor {
	a := New()
	a.Anim = NewAnimator()
	return a
}

// NewPhysics creates an animated actor with motion state
func NewPhysics() *Actor {
	a := NewAnimated()
	a.Motion = NewMotion()
	return a
}

// SetPosition moves the actor to (x, y)
func (a *Actor) SetPosition(x, y float64) {
	a.Position = geom.Vec2{X: x, Y: y}
}

// MoveBy offsets the actor
func (a *Actor) MoveBy(dx, dy float64) {
	a.Position = a.Position.Add(geom.Vec2{X: dx, Y: dy})
}

// SetSize sets width and height
func (a *Actor) SetSize(w, h float64) {
	a.Width = w
	a.Height = h
}

// SetOrigin sets the rotation/scale pivot and keeps the boundary in sync
func (a *Actor) SetOrigin(x, y float64) {
	a.Origin = geom.Vec2{X: x, Y: y}
	a.syncBounds()
}

// SetOriginCenter puts the pivot at the center of the actor
func (a *Actor) SetOriginCenter() {
	if a.Width == 0 {
		diag.Warn(a.Diag, diag.KindPrecondition, "actor size not set before centering origin",
			diag.F("actor", a.Name))
	}
	a.SetOrigin(a.Width/2, a.Height/2)
}

// MoveToOrigin places the actor so its pivot coincides with target's pivot
func (a *Actor) MoveToOrigin(target *Actor) {
	a.Position = target.Position.Add(target.Origin).Sub(a.Origin)
}

// Center returns the world position of the pivot
func (a *Actor) Center() geom.Vec2 {
	return a.Position.Add(a.Origin)
}

// SetRegion shows the whole image and adopts its size
func (a *Actor) SetRegion(img Image) {
	a.Region = NewRegion(img)
	a.Width, a.Height = a.Region.Size()
}

// SetRectangleBoundary uses the actor's rectangle as collision shape
func (a *Actor) SetRectangleBoundary() {
	a.checkSized("rectangle boundary")
	a.Bounds = geom.NewRectangleBoundary(a.Width, a.Height, a.Origin)
}

// SetEllipseBoundary uses the ellipse inscribed in the actor's rectangle
func (a *Actor) SetEllipseBoundary() {
	a.SetEllipseBoundarySegments(geom.DefaultEllipseSegments)
}

// SetEllipseBoundarySegments is SetEllipseBoundary with n vertices
func (a *Actor) SetEllipseBoundarySegments(n int) {
	a.checkSized("ellipse boundary")
	a.Bounds = geom.NewEllipseBoundary(a.Width, a.Height, a.Origin, n)
}

func (a *Actor) checkSized(what string) {
	if a.Width == 0 || a.Height == 0 {
		diag.Warn(a.Diag, diag.KindPrecondition, "actor size not set before building "+what,
			diag.F("actor", a.Name))
	}
}

func (a *Actor) syncBounds() {
	if a.Bounds != nil {
		a.Bounds.Origin = a.Origin
	}
}

// WorldPolygon returns the boundary in world space, or nil without one.
// It is recomputed from the current transform on every call.
func (a *Actor) WorldPolygon() []geom.Vec2 {
	if a.Bounds == nil {
		return nil
	}
	return a.Bounds.Transformed(a.Position, a.Rotation)
}

// Contact tests the receiver against other without side effects
func (a *Actor) Contact(other *Actor) geom.Contact {
	if a.Bounds == nil || other.Bounds == nil {
		diag.Warn(a.Diag, diag.KindPrecondition, "overlap test on actor without boundary",
			diag.F("actor", a.Name), diag.F("other", other.Name))
		return geom.Contact{}
	}
	return geom.Collide(a.WorldPolygon(), other.WorldPolygon())
}

// Overlaps reports a significant overlap with other. With resolve set the
// receiver (never other) is pushed out along the minimum translation vector.
func (a *Actor) Overlaps(other *Actor, resolve bool) bool {
	c := a.Contact(other)
	if resolve && c.Significant {
		push := c.MTV.Normal.Scale(c.MTV.Depth)
		a.MoveBy(push.X, push.Y)
	}
	return c.Significant
}

// Tick runs the per-frame stages in order:
// motion integration, animation advance, base finalize.
func (a *Actor) Tick(dt float64) {
	if a.Motion != nil {
		a.Motion.Integrate(&a.Transform, dt)
	}
	if a.Anim != nil {
		a.Anim.Advance(dt)
	}
	a.syncBounds()
}

// Draw resolves the current animation frame, then submits the actor to r
// when visible.
func (a *Actor) Draw(r Renderer) {
	if a.Anim != nil {
		if frame, ok := a.Anim.KeyFrame(); ok {
			a.Region = frame
		}
	}
	if !a.Visible || a.Region.Empty() {
		return
	}
	r.DrawRegion(a.Region, a.Transform, a.Tint)
}

// Clone builds a new actor from a template. Region, boundary, transform,
// tint and visibility are copied; the boundary is deep-copied. The clip table
// is copied into a fresh map (clips are shared, they are immutable) and
// playback restarts at 0. Motion state is copied by value.
func (a *Actor) Clone() *Actor {
	c := &Actor{
		Transform: a.Transform,
		Sprite:    a.Sprite,
		Bounds:    a.Bounds.Clone(),
		Name:      a.Name,
		Diag:      a.Diag,
	}
	if a.Anim != nil {
		c.Anim = a.Anim.clone()
	}
	if a.Motion != nil {
		m := *a.Motion
		c.Motion = &m
	}
	return c
}
