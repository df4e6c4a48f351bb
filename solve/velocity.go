package solve

import (
	"math"

	"github.com/polygl-phys/feather2d/body"
)

// restingThreshold is the squared approach-velocity cutoff below which the
// normal impulse for a contact point is suppressed for stability (spec.md
// §4.5, "Resting filter for stability").
const restingThreshold = 6.0

// Velocity runs the velocity solver for the given number of iterations
// over the colliding contacts (spec.md §4.5).
func Velocity(contacts []*body.Contact, iterations int) {
	for i := 0; i < iterations; i++ {
		for _, c := range contacts {
			solveVelocityOnce(c)
		}
	}
}

func solveVelocityOnce(c *body.Contact) {
	if !c.Colliding || len(c.Points) == 0 {
		return
	}
	b1, b2 := c.Body1, c.Body2
	if b1.IsSensor() || b2.IsSensor() {
		return
	}
	if !b1.ShouldUpdate() && !b2.ShouldUpdate() {
		return
	}

	v1 := b1.Position().Sub(b1.PreviousPosition())
	w1 := b1.Angle() - b1.PreviousAngle()
	v2 := b2.Position().Sub(b2.PreviousPosition())
	w2 := b2.Angle() - b2.PreviousAngle()

	contactCount := float64(len(c.Points))
	normal, tangent := c.Normal, c.Tangent

	for i := range c.Points {
		point := c.Points[i].Vertex
		r1 := point.Sub(b1.Position())
		r2 := point.Sub(b2.Position())

		cv1 := r1.Perp().Scale(w1).Add(v1)
		cv2 := r2.Perp().Scale(w2).Add(v2)
		rv := cv1.Sub(cv2)

		vn := rv.Dot(normal)
		vt := rv.Dot(tangent)

		r1n := r1.Cross(normal)
		r2n := r2.Cross(normal)
		d := (b1.InvMass() + b2.InvMass() +
			b1.InvInertia()*r1n*r1n + b2.InvInertia()*r2n*r2n) * contactCount
		if d == 0 {
			continue
		}

		normalForce := clamp(c.Separation+vn, 0, 1) * 5
		maxFriction := c.Friction * normalForce

		jn := (1 + c.Restitution) * vn / d
		if vn >= 0 || vn*vn <= restingThreshold {
			jn = 0
		} else {
			accum := c.Points[i].NormalImpulse + jn
			if accum > 0 {
				accum = 0
			}
			jn = accum - c.Points[i].NormalImpulse
			c.Points[i].NormalImpulse = accum
		}

		jt := -vt / d
		if math.Abs(jt) > maxFriction {
			jt = math.Copysign(maxFriction, jt)
		}
		accumT := c.Points[i].TangentImpulse + jt
		if accumT > maxFriction {
			accumT = maxFriction
		} else if accumT < -maxFriction {
			accumT = -maxFriction
		}
		jt = accumT - c.Points[i].TangentImpulse
		c.Points[i].TangentImpulse = accumT

		J := normal.Scale(jn).Add(tangent.Scale(jt))

		b1.ApplyImpulse(J, r1, -1)
		b2.ApplyImpulse(J, r2, 1)
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
