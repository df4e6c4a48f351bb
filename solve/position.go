// Package solve implements the iterative position and velocity solvers
// that resolve interpenetration and apply collision impulses (spec.md
// §4.5).
package solve

import "github.com/polygl-phys/feather2d/body"

// Position runs the position solver for the given number of iterations
// over the (already narrow-phased) colliding contacts, then commits the
// accumulated per-body position impulses (spec.md §4.5).
func Position(contacts []*body.Contact, iterations int) {
	prepareContactCounts(contacts)

	for i := 0; i < iterations; i++ {
		for _, c := range contacts {
			solvePositionOnce(c)
		}
	}

	postSolvePosition(contacts)
}

func prepareContactCounts(contacts []*body.Contact) {
	for _, c := range contacts {
		if !c.Colliding {
			continue
		}
		n := len(c.Points)
		c.Body1.TotalContacts += n
		c.Body2.TotalContacts += n
	}
}

func solvePositionOnce(c *body.Contact) {
	if !c.Colliding {
		return
	}
	b1, b2 := c.Body1, c.Body2
	if b1.IsSensor() || b2.IsSensor() {
		return
	}

	// Both terms start from body2's position, so the positions cancel and
	// separation is Depth plus the normal component of body2's accumulated
	// impulse minus body1's.
	pos2withImpulse := b2.Position().Add(b2.PositionImpulse)
	penetratedWithImpulse := b2.Position().Sub(c.PenetrationVector).Add(b1.PositionImpulse)
	separation := c.Normal.Dot(pos2withImpulse.Sub(penetratedWithImpulse))
	c.Separation = separation

	if separation < 0 {
		// Resolved for this pass.
		return
	}

	effective := separation
	if !b1.ShouldUpdate() || !b2.ShouldUpdate() {
		// Only the movable body absorbs the correction.
		effective *= 2
	}

	correction := effective - c.Slop

	if b1.ShouldUpdate() && b1.TotalContacts > 0 {
		share := correction / float64(b1.TotalContacts)
		b1.PositionImpulse = b1.PositionImpulse.Add(c.Normal.Scale(share))
	}
	if b2.ShouldUpdate() && b2.TotalContacts > 0 {
		share := correction / float64(b2.TotalContacts)
		b2.PositionImpulse = b2.PositionImpulse.Sub(c.Normal.Scale(share))
	}
}

func postSolvePosition(contacts []*body.Contact) {
	seen := make(map[*body.Body]bool, len(contacts)*2)
	for _, c := range contacts {
		for _, b := range [...]*body.Body{c.Body1, c.Body2} {
			if seen[b] {
				continue
			}
			seen[b] = true
			b.ApplyPositionImpulse()
		}
	}
}
