package body

import (
	"math"
	"testing"

	"github.com/polygl-phys/feather2d/geom"
)

func TestAreaOfUnitSquare(t *testing.T) {
	verts := square(2) // 2x2 square centered on origin
	if got := Area(verts); !floatEqual(got, 4, 1e-9) {
		t.Errorf("Area = %v, want 4", got)
	}
}

func TestSignedAreaWindingSign(t *testing.T) {
	ccw := square(2)
	cw := []geom.Vector{ccw[0], ccw[3], ccw[2], ccw[1]}

	if SignedArea(ccw) <= 0 {
		t.Errorf("SignedArea(ccw) = %v, want positive", SignedArea(ccw))
	}
	if SignedArea(cw) >= 0 {
		t.Errorf("SignedArea(cw) = %v, want negative", SignedArea(cw))
	}
}

func TestCentroidOfSquareIsCenter(t *testing.T) {
	verts := []geom.Vector{
		geom.New(10, 10),
		geom.New(20, 10),
		geom.New(20, 20),
		geom.New(10, 20),
	}
	c := Centroid(verts)
	if !floatEqual(c.X, 15, 1e-9) || !floatEqual(c.Y, 15, 1e-9) {
		t.Errorf("Centroid = %v, want (15, 15)", c)
	}
}

func TestInertiaPositiveForCenteredSquare(t *testing.T) {
	verts := square(10) // already centered at origin
	i := Inertia(verts, 1)
	if i <= 0 {
		t.Errorf("Inertia = %v, want > 0", i)
	}
}

func TestContainsInsideAndOutside(t *testing.T) {
	verts := square(10)
	if !Contains(verts, geom.New(0, 0)) {
		t.Error("Contains(center) = false, want true")
	}
	if Contains(verts, geom.New(100, 100)) {
		t.Error("Contains(far point) = true, want false")
	}
}

func TestRotateVerticesPreservesDistanceFromPivot(t *testing.T) {
	verts := []geom.Vector{geom.New(5, 0)}
	pivot := geom.New(0, 0)
	before := verts[0].Sub(pivot).Magnitude()

	RotateVertices(verts, pivot, math.Pi/3)

	after := verts[0].Sub(pivot).Magnitude()
	if !floatEqual(before, after, 1e-9) {
		t.Errorf("distance from pivot changed: %v -> %v", before, after)
	}
}
