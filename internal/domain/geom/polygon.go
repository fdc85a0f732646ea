package geom

import "math"

// DefaultEllipseSegments is the vertex count of an ellipse boundary
const DefaultEllipseSegments = 12

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Polygon is a convex shape in local coordinates.
// Origin is the pivot used when the shape is rotated.
type Polygon struct {
	Vertices []Vec2
	Origin   Vec2
}

// NewRectangleBoundary builds a w x h rectangle with corners
// (0,0), (w,0), (w,h), (0,h).
func NewRectangleBoundary(w, h float64, origin Vec2) *Polygon {
	return &Polygon{
		Vertices: []Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}},
		Origin:   origin,
	}
}

// NewEllipseBoundary approximates the ellipse inscribed in a w x h box
// with segments vertices evenly spaced in angle.
func NewEllipseBoundary(w, h float64, origin Vec2, segments int) *Polygon {
	if segments < 3 {
		segments = DefaultEllipseSegments
	}
	verts := make([]Vec2, segments)
	for i := 0; i < segments; i++ {
		t := float64(i) * 2 * math.Pi / float64(segments)
		verts[i] = Vec2{
			X: w/2*math.Cos(t) + w/2,
			Y: h/2*math.Sin(t) + h/2,
		}
	}
	return &Polygon{Vertices: verts, Origin: origin}
}

// Clone returns a deep copy
func (p *Polygon) Clone() *Polygon {
	if p == nil {
		return nil
	}
	verts := make([]Vec2, len(p.Vertices))
	copy(verts, p.Vertices)
	return &Polygon{Vertices: verts, Origin: p.Origin}
}

// Transformed returns the world-space vertices for the given position and
// rotation (degrees). The result is freshly allocated on every call.
func (p *Polygon) Transformed(position Vec2, rotation float64) []Vec2 {
	out := make([]Vec2, len(p.Vertices))
	for i, v := range p.Vertices {
		local := v.Sub(p.Origin).Rotate(rotation)
		out[i] = local.Add(p.Origin).Add(position)
	}
	return out
}

// BoundingRect returns the axis-aligned bounds of verts
func BoundingRect(verts []Vec2) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Centroid returns the vertex average
func Centroid(verts []Vec2) Vec2 {
	var c Vec2
	if len(verts) == 0 {
		return c
	}
	for _, v := range verts {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(verts)))
}
