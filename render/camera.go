// Package render is the thin wireframe renderer spec.md §1 describes as
// an external collaborator of the engine: it consumes the update(contacts)
// event and has no say in simulation state. It is out of the core's scope
// per spec.md, but is wired in here (SPEC_FULL.md §4) to give the
// teacher's one real dependency, go-gl/mathgl, a home: 2D affine
// transforms are represented the standard way, as homogeneous 3x3
// matrices.
package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/geom"
)

// Camera projects world-space vectors to screen space through a
// pan -> scale -> translate-to-screen-origin affine transform, stored as a
// homogeneous 3x3 matrix. It does not rotate.
type Camera struct {
	transform mgl64.Mat3
}

// NewCamera builds a camera centered on (originX, originY) in screen
// space, at the given zoom, panned to (panX, panY) in world space.
func NewCamera(originX, originY, zoom, panX, panY float64) *Camera {
	translateToScreen := mgl64.Translate2D(originX, originY)
	scale := mgl64.Scale2D(zoom, zoom)
	translateFromWorld := mgl64.Translate2D(-panX, -panY)

	return &Camera{transform: translateToScreen.Mul3(scale).Mul3(translateFromWorld)}
}

// Project maps a world-space point to screen space.
func (c *Camera) Project(v geom.Vector) geom.Vector {
	h := c.transform.Mul3x1(mgl64.Vec3{v.X, v.Y, 1})
	return geom.New(h.X(), h.Y())
}

// Wireframe is the polyline projection of one body's current polygon.
type Wireframe struct {
	BodyID string
	Points []geom.Vector
}

// Frame projects every body's vertices through the camera. It takes no
// contacts argument, so it is not itself an engine.UpdateListener; a
// listener registered with engine.Engine.OnUpdate calls it with the
// engine's bodies.
func Frame(c *Camera, bodies []*body.Body) []Wireframe {
	frames := make([]Wireframe, len(bodies))
	for i, b := range bodies {
		verts := b.Vertices()
		points := make([]geom.Vector, len(verts))
		for j, v := range verts {
			points[j] = c.Project(v)
		}
		frames[i] = Wireframe{BodyID: b.ID.String(), Points: points}
	}
	return frames
}
