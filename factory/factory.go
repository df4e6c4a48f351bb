// Package factory builds convex-polygon bodies for common shapes: rect,
// line, circle (a 20-gon approximation — spec.md's Non-goals exclude true
// curved primitives), cage, and grid stacks (spec.md §6).
package factory

import (
	"math"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/geom"
)

// circleSegments is the polygon approximation used by Circle, matching
// spec.md §1's "circles are approximated as 20-gons by the factory".
const circleSegments = 20

// Rect builds a body.Body centered on (x+w/2, y+h/2), spec.md §6.
func Rect(x, y, w, h float64, opts body.Options) *body.Body {
	hx, hy := w/2, h/2
	opts.Vertices = []geom.Vector{
		geom.New(-hx, -hy),
		geom.New(hx, -hy),
		geom.New(hx, hy),
		geom.New(-hx, hy),
	}
	opts.Position = opts.Position.Add(geom.New(x+hx, y+hy))
	return body.New(opts)
}

// Line builds a thin rectangular body of the given width along the
// (x1,y1)-(x2,y2) segment. flip mirrors which side the width extends to,
// matching spec.md §6's line(x1, y1, x2, y2, width, flip?, opts?).
func Line(x1, y1, x2, y2, width float64, flip bool, opts body.Options) *body.Body {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)

	cx, cy := (x1+x2)/2, (y1+y2)/2
	hw := width / 2
	if flip {
		hw = -hw
	}

	opts.Vertices = []geom.Vector{
		geom.New(-length/2, -hw),
		geom.New(length/2, -hw),
		geom.New(length/2, hw),
		geom.New(-length/2, hw),
	}
	opts.Position = opts.Position.Add(geom.New(cx, cy))
	opts.Angle += angle
	return body.New(opts)
}

// Circle builds a body.Body approximating a circle of radius r centered
// on (x, y) as a regular 20-gon (spec.md §1, §6).
func Circle(x, y, r float64, opts body.Options) *body.Body {
	vertices := make([]geom.Vector, circleSegments)
	for i := 0; i < circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		vertices[i] = geom.New(r*math.Cos(theta), r*math.Sin(theta))
	}
	opts.Vertices = vertices
	opts.Position = opts.Position.Add(geom.New(x, y))
	return body.New(opts)
}

// Cage builds four static rectangles (top, bottom, left, right) forming
// a box of inner size (w, h) with the given wall thickness (spec.md §6).
func Cage(x, y, w, h, wallWidth float64, opts body.Options) []*body.Body {
	opts.IsStatic = true

	top := Rect(x, y-wallWidth, w+2*wallWidth, wallWidth, opts)
	bottom := Rect(x, y+h, w+2*wallWidth, wallWidth, opts)
	left := Rect(x-wallWidth, y, wallWidth, h, opts)
	right := Rect(x+w, y, wallWidth, h, opts)

	return []*body.Body{top, bottom, left, right}
}

// Stack arranges a cols x rows grid of bodies built by bodyCreator,
// spacing each cell by the previous body's AABB extent plus a 1-unit gap
// (spec.md §6).
func Stack(x, y float64, cols, rows int, bodyCreator func(x, y float64, col, row int) *body.Body) []*body.Body {
	bodies := make([]*body.Body, 0, cols*rows)

	cursorY := y
	for row := 0; row < rows; row++ {
		cursorX := x
		rowHeight := 0.0
		for col := 0; col < cols; col++ {
			b := bodyCreator(cursorX, cursorY, col, row)
			bodies = append(bodies, b)

			bounds := b.Bounds()
			width := bounds.Max.X - bounds.Min.X
			height := bounds.Max.Y - bounds.Min.Y
			cursorX += width + 1
			if height > rowHeight {
				rowHeight = height
			}
		}
		cursorY += rowHeight + 1
	}
	return bodies
}
