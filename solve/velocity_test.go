package solve

import (
	"testing"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/geom"
	"github.com/polygl-phys/feather2d/sat"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, min, max, want float64
	}{
		{-5, 0, 1, 0},
		{5, 0, 1, 1},
		{0.5, 0, 1, 0.5},
	}
	for _, c := range cases {
		if got := clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestVelocitySolverNoopOnNonCollidingContact(t *testing.T) {
	a := boxAt(0, 0, 10, false)
	b := boxAt(1000, 1000, 10, false)
	c := sat.Test(a, b)

	velA, velB := a.Velocity(), b.Velocity()
	Velocity([]*body.Contact{c}, 3)

	if a.Velocity() != velA || b.Velocity() != velB {
		t.Error("Velocity solver altered velocity for a non-colliding contact")
	}
}

// TestVelocitySolverSwapsVelocitiesInElasticHeadOnCollision exercises
// spec.md §8 scenario 2 directly: two equal-mass bodies approaching head-on
// with a perfectly elastic (Restitution = 1) contact should have their
// velocities swapped after one solver pass, within 1%.
//
// The contact is built by hand rather than through sat.Test so the lever
// arms land exactly on the line between the two centers: r1 and r2 are then
// both parallel to the normal, r.Cross(normal) == 0, and no rotation is
// induced. That isolates the solver's 1D restitution response from the
// two-point manifold and rotational coupling a real box-box SAT contact
// would add, which is what spec.md §8's scenario is actually describing.
func TestVelocitySolverSwapsVelocitiesInElasticHeadOnCollision(t *testing.T) {
	const v = 5.0

	b1 := body.New(body.Options{
		Vertices:         squareVertices(10),
		Position:         geom.New(0, 0),
		PreviousPosition: vecPtr(-v, 0),
		Density:          0.001,
		Restitution:      1,
	})
	b2 := body.New(body.Options{
		Vertices:         squareVertices(10),
		Position:         geom.New(10, 0),
		PreviousPosition: vecPtr(10+v, 0),
		Density:          0.001,
		Restitution:      1,
	})

	normal := geom.New(-1, 0) // canonical orientation: points from b2 back toward b1
	c := &body.Contact{
		Body1:       b1,
		Body2:       b2,
		Colliding:   true,
		Normal:      normal,
		Tangent:     normal.Perp(),
		Restitution: 1,
		Points: []body.ContactPoint{
			{Vertex: geom.New(5, 0)},
		},
	}

	Velocity([]*body.Contact{c}, 1)

	gotV1 := b1.Position().Sub(b1.PreviousPosition())
	gotV2 := b2.Position().Sub(b2.PreviousPosition())
	wantV1 := geom.New(-v, 0)
	wantV2 := geom.New(v, 0)

	if !withinTolerance(gotV1, wantV1, 0.01) {
		t.Errorf("body1 velocity after collision = %v, want %v swapped within 1%%", gotV1, wantV1)
	}
	if !withinTolerance(gotV2, wantV2, 0.01) {
		t.Errorf("body2 velocity after collision = %v, want %v swapped within 1%%", gotV2, wantV2)
	}
}

func vecPtr(x, y float64) *geom.Vector {
	v := geom.New(x, y)
	return &v
}

func squareVertices(size float64) []geom.Vector {
	h := size / 2
	return []geom.Vector{
		geom.New(-h, -h),
		geom.New(h, -h),
		geom.New(h, h),
		geom.New(-h, h),
	}
}

func withinTolerance(got, want geom.Vector, tol float64) bool {
	if want.Magnitude() == 0 {
		return got.Magnitude() <= tol
	}
	return got.Sub(want).Magnitude()/want.Magnitude() <= tol
}
