package sat

import (
	"testing"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/geom"
)

func box(x, y, size float64) *body.Body {
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
	})
}

func TestNoPhantomCollisionsWhenFarApart(t *testing.T) {
	b1 := box(0, 0, 10)
	b2 := box(1000, 1000, 10)

	c := Test(b1, b2)
	if c.Colliding {
		t.Fatalf("Colliding = true for bodies separated by AABB gap, depth=%v normal=%v", c.Depth, c.Normal)
	}
}

func TestOverlappingBoxesCollide(t *testing.T) {
	b1 := box(0, 0, 10)
	b2 := box(8, 0, 10)

	c := Test(b1, b2)
	if !c.Colliding {
		t.Fatal("Colliding = false for overlapping boxes")
	}
	if c.Depth <= 0 {
		t.Errorf("Depth = %v, want > 0", c.Depth)
	}
	// Canonical orientation points from body2 back toward body1 (see the
	// comment on the flip in Test, sat.go), i.e. along -X here.
	if c.Normal.X >= 0 {
		t.Errorf("Normal = %v, want negative X component", c.Normal)
	}
	if len(c.Points) == 0 {
		t.Error("expected at least one contact point")
	}
}

func TestContactSymmetry(t *testing.T) {
	b1 := box(0, 0, 10)
	b2 := box(8, 0, 10)

	c1 := Test(b1, b2)
	c2 := Test(b2, b1)

	if c1.Colliding != c2.Colliding {
		t.Fatalf("Colliding asymmetric: %v vs %v", c1.Colliding, c2.Colliding)
	}
	if !floatClose(c1.Depth, c2.Depth) {
		t.Errorf("Depth asymmetric: %v vs %v", c1.Depth, c2.Depth)
	}
	// Normals should be antiparallel since Test always orients the normal
	// relative to the first argument the same way.
	sum := c1.Normal.Add(c2.Normal)
	if !floatClose(sum.X, 0) || !floatClose(sum.Y, 0) {
		t.Errorf("Normals not antiparallel: %v vs %v", c1.Normal, c2.Normal)
	}
}

func floatClose(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
