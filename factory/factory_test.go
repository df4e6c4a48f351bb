package factory

import (
	"testing"

	"github.com/polygl-phys/feather2d/body"
)

func TestRectIsCenteredOnGivenTopLeft(t *testing.T) {
	b := Rect(0, 0, 10, 20, body.Options{Density: 0.001})
	if b.Position().X != 5 || b.Position().Y != 10 {
		t.Errorf("Rect Position = %v, want (5, 10)", b.Position())
	}
}

func TestCircleHasTwentySegments(t *testing.T) {
	b := Circle(0, 0, 5, body.Options{Density: 0.001})
	if len(b.Vertices()) != circleSegments {
		t.Errorf("len(Vertices) = %d, want %d", len(b.Vertices()), circleSegments)
	}
}

func TestCageProducesFourStaticWalls(t *testing.T) {
	walls := Cage(0, 0, 100, 100, 10, body.Options{Density: 0.001})
	if len(walls) != 4 {
		t.Fatalf("len(Cage) = %d, want 4", len(walls))
	}
	for _, w := range walls {
		if !w.IsStatic() {
			t.Error("Cage wall is not static")
		}
	}
}

func TestStackPlacesBodiesInAGrid(t *testing.T) {
	bodies := Stack(0, 0, 2, 2, func(x, y float64, col, row int) *body.Body {
		return Rect(x, y, 10, 10, body.Options{Density: 0.001})
	})
	if len(bodies) != 4 {
		t.Fatalf("len(Stack) = %d, want 4", len(bodies))
	}
	// Each subsequent body in a row should be placed further right.
	if bodies[1].Position().X <= bodies[0].Position().X {
		t.Errorf("second column not to the right: %v vs %v", bodies[1].Position(), bodies[0].Position())
	}
}

func TestLineOrientsAlongSegment(t *testing.T) {
	l := Line(0, 0, 10, 0, 2, false, body.Options{Density: 0.001})
	bounds := l.Bounds()
	width := bounds.Max.X - bounds.Min.X
	if width < 9 || width > 11 {
		t.Errorf("Line width along X = %v, want ~10", width)
	}
}
