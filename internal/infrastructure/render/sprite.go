// Package render draws actors for the two frontends: an ebiten sprite
// renderer for the windowed game and a tcell cell renderer for terminals.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/tilequest/internal/domain/entity"
	"github.com/younwookim/tilequest/internal/domain/geom"
)

// SpriteRenderer implements entity.Renderer on an ebiten target.
// Source images are uploaded once and reused.
type SpriteRenderer struct {
	cache   map[entity.Image]*ebiten.Image
	target  *ebiten.Image
	topLeft geom.Vec2
}

var _ entity.Renderer = (*SpriteRenderer)(nil)

// NewSpriteRenderer creates an ebiten renderer
func NewSpriteRenderer() *SpriteRenderer {
	return &SpriteRenderer{cache: make(map[entity.Image]*ebiten.Image)}
}

// Begin starts a frame drawing onto target, with topLeft the world
// position at the top-left screen corner
func (r *SpriteRenderer) Begin(target *ebiten.Image, topLeft geom.Vec2) {
	r.target = target
	r.topLeft = topLeft
}

// DrawRegion draws the region stretched to the transform's size, scaled and
// rotated around its origin, tinted by tint
func (r *SpriteRenderer) DrawRegion(region entity.Region, t entity.Transform, tint color.RGBA) {
	if r.target == nil {
		return
	}
	src := r.source(region.Image)
	if src == nil {
		return
	}
	sub, ok := src.SubImage(region.Rect).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	rw, rh := region.Size()
	op.GeoM = spriteGeoM(rw, rh, t, r.topLeft)
	op.ColorScale.ScaleWithColor(tint)
	r.target.DrawImage(sub, op)
}

// DrawPolygon strokes a screen-space polygon and marks its centroid,
// used for the boundary overlay
func (r *SpriteRenderer) DrawPolygon(verts []geom.Vec2, clr color.Color) {
	if r.target == nil || len(verts) < 2 {
		return
	}
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		vector.StrokeLine(r.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
	}
	c := geom.Centroid(verts)
	vector.FillRect(r.target, float32(c.X)-1, float32(c.Y)-1, 3, 3, clr, false)
}

// Cached returns the number of uploaded source images
func (r *SpriteRenderer) Cached() int {
	return len(r.cache)
}

func (r *SpriteRenderer) source(img entity.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if ei, ok := img.(*ebiten.Image); ok {
		return ei
	}
	if cached, ok := r.cache[img]; ok {
		return cached
	}
	std, ok := img.(image.Image)
	if !ok {
		return nil
	}
	ei := ebiten.NewImageFromImage(std)
	r.cache[img] = ei
	return ei
}

// spriteGeoM maps a regionW x regionH source onto the transform:
// stretch to size, scale and rotate around the origin, then move to the
// position relative to the camera.
func spriteGeoM(regionW, regionH float64, t entity.Transform, topLeft geom.Vec2) ebiten.GeoM {
	var m ebiten.GeoM
	if regionW > 0 && regionH > 0 && t.Width > 0 && t.Height > 0 {
		m.Scale(t.Width/regionW, t.Height/regionH)
	}
	m.Translate(-t.Origin.X, -t.Origin.Y)
	m.Scale(t.Scale.X, t.Scale.Y)
	m.Rotate(t.Rotation * math.Pi / 180)
	m.Translate(t.Position.X+t.Origin.X-topLeft.X, t.Position.Y+t.Origin.Y-topLeft.Y)
	return m
}
