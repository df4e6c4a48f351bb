package body

import "github.com/polygl-phys/feather2d/geom"

// ContactPoint is one vertex of a Contact's manifold plus the accumulated
// impulses the velocity solver warm-starts from across iterations
// (spec.md §3: "accumulated impulses for warm-start-style resting
// stability").
type ContactPoint struct {
	Vertex geom.Vector

	// NormalImpulse is accumulated across velocity-solver iterations with
	// the invariant NormalImpulse <= 0 (spec.md §4.5's resting filter).
	NormalImpulse float64
	// TangentImpulse is the analogous accumulator for the friction
	// component, clamped to +/-maxFriction.
	TangentImpulse float64
}

// Contact is the narrow-phase result for one colliding body pair
// (spec.md §3).
type Contact struct {
	Body1, Body2 *Body

	Colliding bool

	Normal            geom.Vector
	Tangent           geom.Vector
	Depth             float64
	PenetrationVector geom.Vector

	Points []ContactPoint

	Slop        float64
	Restitution float64
	Friction    float64

	// Separation is recomputed by the position solver every iteration
	// (spec.md §4.5 step 2).
	Separation float64
}
