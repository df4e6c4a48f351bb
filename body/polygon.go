package body

import (
	"math"

	"github.com/polygl-phys/feather2d/geom"
)

// Area computes the unsigned area of a convex polygon via the shoelace
// formula: A = 1/2 * |sum_i (x_j - x_i)(y_j + y_i)|, j = i-1 mod n.
func Area(vertices []geom.Vector) float64 {
	return math.Abs(SignedArea(vertices))
}

// SignedArea is the shoelace formula without the absolute value; positive
// for CCW winding, negative for CW.
func SignedArea(vertices []geom.Vector) float64 {
	n := len(vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		vi, vj := vertices[i], vertices[j]
		sum += (vj.X - vi.X) * (vj.Y + vi.Y)
	}
	return sum / 2
}

// Centroid computes the polygon centroid using the standard signed-area
// based formula. Degenerate (zero-area) polygons are user error per
// spec.md §7 and are not guarded against here.
func Centroid(vertices []geom.Vector) geom.Vector {
	n := len(vertices)
	area := SignedArea(vertices)
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := vertices[i], vertices[j]
		cross := vi.Cross(vj)
		cx += (vi.X + vj.X) * cross
		cy += (vi.Y + vj.Y) * cross
	}
	factor := 1 / (6 * area)
	return geom.Vector{X: cx * factor, Y: cy * factor}
}

// Inertia computes the moment of inertia of a polygon of mass m about its
// own centroid, per spec.md §4.2:
//
//	I = (m/6) * sum_i(|vj x vi| * (vj.vj + vj.vi + vi.vi)) / sum_i(|vj x vi|)
//
// vertices must already be translated so the centroid sits at the origin.
func Inertia(vertices []geom.Vector, mass float64) float64 {
	n := len(vertices)
	numerator := 0.0
	denominator := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := vertices[i], vertices[j]
		cross := math.Abs(vj.Cross(vi))
		numerator += cross * (vj.Dot(vj) + vj.Dot(vi) + vi.Dot(vi))
		denominator += cross
	}
	return (mass / 6) * (numerator / denominator)
}

// Contains is a ray-cast parity test (PNPOLY) for whether point lies
// inside the polygon described by vertices.
func Contains(vertices []geom.Vector, point geom.Vector) bool {
	n := len(vertices)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := vertices[i], vertices[j]
		intersects := ((vi.Y > point.Y) != (vj.Y > point.Y)) &&
			(point.X < (vj.X-vi.X)*(point.Y-vi.Y)/(vj.Y-vi.Y)+vi.X)
		if intersects {
			inside = !inside
		}
	}
	return inside
}

// RotateVertices rotates every vertex in place by angle radians about
// pivot.
func RotateVertices(vertices []geom.Vector, pivot geom.Vector, angle float64) {
	for i := range vertices {
		vertices[i] = vertices[i].RotateAbout(pivot, angle)
	}
}

// Axes computes the deduplicated set of outward face-normal unit vectors
// for a convex polygon: for each edge, perp(v[i+1]-v[i]).Normalize(), with
// one representative kept per unique geom.Vector.Direction() value (spec.md
// §4.3's axis deduplication — a parallelogram yields two axes, not four).
func Axes(vertices []geom.Vector) []geom.Vector {
	n := len(vertices)
	seen := make(map[float64]bool, n)
	axes := make([]geom.Vector, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := vertices[j].Sub(vertices[i])
		axis := edge.Perp().Normalize()
		dir := axis.Direction()
		if seen[dir] {
			continue
		}
		seen[dir] = true
		axes = append(axes, axis)
	}
	return axes
}
