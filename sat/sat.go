// Package sat implements the Separating-Axis-Theorem collision test and
// contact-point generation over convex polygon bodies (spec.md §4.4).
package sat

import (
	"math"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/geom"
)

// Test runs the SAT check between two bodies and, if they collide,
// generates the contact manifold. The returned Contact's Colliding field
// mirrors whether the bodies actually overlap; Test never returns nil.
func Test(b1, b2 *body.Body) *body.Contact {
	contact := &body.Contact{Body1: b1, Body2: b2}

	overlap1, axis1, ok := minimumOverlap(b1, b2, b1.Axes())
	if !ok {
		return contact
	}
	overlap2, axis2, ok := minimumOverlap(b1, b2, b2.Axes())
	if !ok {
		return contact
	}

	depth, normal := overlap1, axis1
	if overlap2 < overlap1 {
		depth, normal = overlap2, axis2
	}

	// Canonical orientation (spec.md §4.4): normal.Dot(body2.Position() -
	// body1.Position()) <= 0, i.e. normal points from body2 back toward
	// body1. solve.Velocity's accumulated-impulse clamp (impulse <= 0) and
	// Body.ApplyImpulse's sign convention are both written against this
	// orientation; flipping it here would need matching changes there.
	if normal.Dot(b2.Position().Sub(b1.Position())) > 0 {
		normal = normal.Neg()
	}

	contact.Colliding = true
	contact.Normal = normal
	contact.Tangent = normal.Perp()
	contact.Depth = depth
	contact.PenetrationVector = normal.Scale(depth)
	contact.Slop = math.Max(b1.Slop(), b2.Slop())
	contact.Restitution = math.Max(b1.Restitution(), b2.Restitution())
	contact.Friction = math.Min(b1.Friction(), b2.Friction())

	points := contactPoints(b1, b2, normal)
	if len(points) < 2 {
		if swapped := contactPoints(b2, b1, normal.Neg()); len(swapped) > len(points) {
			points = swapped
		}
	}
	contact.Points = make([]body.ContactPoint, len(points))
	for i, p := range points {
		contact.Points[i] = body.ContactPoint{Vertex: p}
	}

	return contact
}

// project returns the [min, max] scalar projection of vertices onto axis.
func project(vertices []geom.Vector, axis geom.Vector) (min, max float64) {
	min = vertices[0].Dot(axis)
	max = min
	for _, v := range vertices[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// minimumOverlap projects both bodies onto every axis in axes and returns
// the smallest positive overlap found, along with its axis. ok is false as
// soon as any axis separates the bodies.
func minimumOverlap(b1, b2 *body.Body, axes []geom.Vector) (overlap float64, axis geom.Vector, ok bool) {
	overlap = math.Inf(1)
	v1, v2 := b1.Vertices(), b2.Vertices()

	for _, ax := range axes {
		min1, max1 := project(v1, ax)
		min2, max2 := project(v2, ax)

		o := math.Min(max1, max2) - math.Max(min1, min2)
		if o <= 0 {
			return 0, geom.Vector{}, false
		}
		if o < overlap {
			overlap = o
			axis = ax
		}
	}
	return overlap, axis, true
}

// contactPoints finds the contact manifold by locating the vertex of
// incident that penetrates deepest into reference along normal (the
// globally furthest-projected vertex, then the better of its two polygon
// neighbors), keeping only the ones that lie inside reference's polygon
// (spec.md §4.4).
func contactPoints(reference, incident *body.Body, normal geom.Vector) []geom.Vector {
	verts := incident.Vertices()
	n := len(verts)
	if n == 0 {
		return nil
	}

	nearest := 0
	nearestDist := math.Inf(-1)
	for i, v := range verts {
		d := v.Sub(reference.Position()).Dot(normal)
		if d > nearestDist {
			nearestDist = d
			nearest = i
		}
	}

	prevIdx := (nearest - 1 + n) % n
	nextIdx := (nearest + 1) % n

	tangent := normal.Perp()
	prevEdge := verts[nearest].Sub(verts[prevIdx])
	nextEdge := verts[nextIdx].Sub(verts[nearest])

	var second geom.Vector
	if math.Abs(prevEdge.Dot(tangent)) >= math.Abs(nextEdge.Dot(tangent)) {
		second = verts[prevIdx]
	} else {
		second = verts[nextIdx]
	}

	candidates := []geom.Vector{verts[nearest], second}
	referenceVerts := reference.Vertices()

	kept := make([]geom.Vector, 0, 2)
	for _, c := range candidates {
		if body.Contains(referenceVerts, c) {
			kept = append(kept, c)
		}
	}
	return kept
}
