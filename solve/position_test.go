package solve

import (
	"testing"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/sat"
	"github.com/polygl-phys/feather2d/geom"
)

func boxAt(x, y, size float64, static bool) *body.Body {
	h := size / 2
	return body.New(body.Options{
		Vertices: []geom.Vector{
			geom.New(-h, -h),
			geom.New(h, -h),
			geom.New(h, h),
			geom.New(-h, h),
		},
		Position: geom.New(x, y),
		Density:  0.001,
		IsStatic: static,
	})
}

func TestPositionSolverSeparatesOverlappingBoxes(t *testing.T) {
	floor := boxAt(0, 0, 100, true)
	box := boxAt(5, -45, 10, false) // overlaps the floor's top edge

	c := sat.Test(floor, box)
	if !c.Colliding {
		t.Fatal("expected overlapping boxes to collide")
	}
	startDepth := c.Depth

	Position([]*body.Contact{c}, 5)

	// The static body never moves.
	if floor.Position() != geom.New(0, 0) {
		t.Errorf("static floor moved to %v", floor.Position())
	}

	// Re-run SAT to confirm the dynamic body was pushed toward separation.
	after := sat.Test(floor, box)
	if after.Colliding && after.Depth >= startDepth {
		t.Errorf("depth did not decrease: %v -> %v", startDepth, after.Depth)
	}
}

func TestPositionSolverResetsPerBodyAccumulators(t *testing.T) {
	floor := boxAt(0, 0, 100, true)
	box := boxAt(5, -45, 10, false)

	c := sat.Test(floor, box)
	Position([]*body.Contact{c}, 3)

	if box.TotalContacts != 0 {
		t.Errorf("TotalContacts = %d after Position, want 0", box.TotalContacts)
	}
	if box.PositionImpulse != (geom.Vector{}) {
		t.Errorf("PositionImpulse = %v after Position, want zero", box.PositionImpulse)
	}
}

func TestPositionSolverNoopWhenNotColliding(t *testing.T) {
	a := boxAt(0, 0, 10, false)
	b := boxAt(1000, 1000, 10, false)
	c := sat.Test(a, b)

	posA, posB := a.Position(), b.Position()
	Position([]*body.Contact{c}, 5)

	if a.Position() != posA || b.Position() != posB {
		t.Error("Position solver moved bodies for a non-colliding contact")
	}
}
