package geom

import "math"

// SignificantDepth is the penetration depth below which a contact is
// treated as grazing and ignored.
const SignificantDepth = 0.5

// MTV is a minimum translation vector: moving the first polygon by
// Normal*Depth separates it from the second.
type MTV struct {
	Normal Vec2
	Depth  float64
}

// Contact is the result of Collide
type Contact struct {
	// Broad is true when the bounding rectangles overlap
	Broad bool
	// Overlap is true when the convex polygons intersect
	Overlap bool
	// Significant is true when Overlap and MTV.Depth > SignificantDepth
	Significant bool
	MTV         MTV
}

// Collide runs the full test between two world-space convex polygons:
// a bounding-rectangle reject first, then the separating axis test.
func Collide(a, b []Vec2) Contact {
	if !BoundingRect(a).Overlaps(BoundingRect(b)) {
		return Contact{}
	}
	mtv, ok := Overlap(a, b)
	return Contact{
		Broad:       true,
		Overlap:     ok,
		Significant: ok && mtv.Depth > SignificantDepth,
		MTV:         mtv,
	}
}

// Overlap tests two convex polygons with the separating axis theorem.
// On overlap the returned normal points from b towards a.
func Overlap(a, b []Vec2) (MTV, bool) {
	if len(a) < 2 || len(b) < 2 {
		return MTV{}, false
	}

	best := MTV{Depth: math.MaxFloat64}
	tested := false

	for _, poly := range [2][]Vec2{a, b} {
		n := len(poly)
		for i := 0; i < n; i++ {
			edge := poly[(i+1)%n].Sub(poly[i])
			axis := Vec2{X: edge.Y, Y: -edge.X}.Normalize()
			if axis == (Vec2{}) {
				continue
			}
			tested = true

			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA < minB || maxB < minA {
				return MTV{}, false
			}

			depth := math.Min(maxA, maxB) - math.Max(minA, minB)
			// containment: push out through the nearer end
			if (minA < minB && maxA > maxB) || (minB < minA && maxB > maxA) {
				mins := math.Abs(minA - minB)
				maxs := math.Abs(maxA - maxB)
				depth += math.Min(mins, maxs)
			}

			if depth < best.Depth {
				normal := axis
				if (minA+maxA)/2 < (minB+maxB)/2 {
					normal = axis.Scale(-1)
				}
				best = MTV{Normal: normal, Depth: depth}
			}
		}
	}

	if !tested {
		return MTV{}, false
	}
	return best, true
}

func project(poly []Vec2, axis Vec2) (lo, hi float64) {
	lo = poly[0].Dot(axis)
	hi = lo
	for _, v := range poly[1:] {
		p := v.Dot(axis)
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}
