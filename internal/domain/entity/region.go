package entity

import (
	"image"
	"image/color"
)

// Image is a read-only pixel source. Actors referencing the same sheet
// share it; it is never owned by an actor.
// *ebiten.Image and *image.RGBA both satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// Region is a sub-rectangle of an image (the visual of an actor)
type Region struct {
	Image Image
	Rect  image.Rectangle
}

// NewRegion returns a region covering the whole image
func NewRegion(img Image) Region {
	if img == nil {
		return Region{}
	}
	return Region{Image: img, Rect: img.Bounds()}
}

// SubRegion returns a region covering r of img
func SubRegion(img Image, r image.Rectangle) Region {
	return Region{Image: img, Rect: r}
}

// Empty reports whether the region references no image
func (r Region) Empty() bool {
	return r.Image == nil
}

// Size returns the region size in pixels
func (r Region) Size() (w, h float64) {
	return float64(r.Rect.Dx()), float64(r.Rect.Dy())
}

// Renderer draws regions. It is implemented by the frontends.
type Renderer interface {
	DrawRegion(region Region, t Transform, tint color.RGBA)
}
