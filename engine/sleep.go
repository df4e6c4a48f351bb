package engine

import (
	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/internal/flog"
)

// Sleep-management tuning constants (spec.md §4.6, §9): scale-sensitive,
// tuned for position units ~ pixels and time units ~ milliseconds.
const (
	maxForSleep   = 0.04 // motion below this increments the sleep counter
	minForWakeup  = 0.09 // squared motion above this wakes a sleeping neighbor
	sleepCounterMax = 60
)

// updateSleep runs the per-body sleep bookkeeping before integration
// (spec.md §4.6 steps 1-3). logger receives one-line sleep-transition
// warnings when debug is set (SPEC_FULL.md §3).
func updateSleep(bodies []*body.Body, logger *flog.Logger, debug bool) {
	for _, b := range bodies {
		if b.IsStatic() {
			continue
		}
		if hasNonZeroForce(b) {
			wasSleeping := b.IsSleeping()
			b.Awake()
			if debug && wasSleeping {
				logger.Infof("body %s: woke (force applied)", b.ID)
			}
			continue
		}

		v := b.Velocity()
		w := b.AngularVelocity()
		m := v.MagnitudeSquared() + w*w

		prev := b.Motion
		lo, hi := prev, m
		if m < prev {
			lo, hi = m, prev
		}
		b.Motion = 0.9*lo + 0.1*hi

		if b.Motion < maxForSleep {
			if b.SleepCounter < sleepCounterMax {
				b.SleepCounter++
			}
			if b.SleepCounter >= sleepCounterMax && !b.IsSleeping() {
				b.Sleep()
				if debug {
					logger.Infof("body %s: entered sleep (motion %g)", b.ID, b.Motion)
				}
			}
		} else if b.SleepCounter > 0 {
			b.SleepCounter--
		}
	}
}

func hasNonZeroForce(b *body.Body) bool {
	f := b.Force()
	return f.X != 0 || f.Y != 0 || b.Torque() != 0
}

// wakeFromContacts implements spec.md §4.6's post-narrow-phase rule: for
// each contact where one body sleeps and the other is neither static nor
// sleeping, if the awake body's squared motion exceeds minForWakeup, wake
// the sleeping one. logger receives one-line wake warnings when debug is
// set (SPEC_FULL.md §3).
func wakeFromContacts(contacts []*body.Contact, logger *flog.Logger, debug bool) {
	for _, c := range contacts {
		if !c.Colliding {
			continue
		}
		wakeNeighbor(c.Body1, c.Body2, logger, debug)
		wakeNeighbor(c.Body2, c.Body1, logger, debug)
	}
}

func wakeNeighbor(sleeping, awake *body.Body, logger *flog.Logger, debug bool) {
	if !sleeping.IsSleeping() {
		return
	}
	if awake.IsStatic() || awake.IsSleeping() {
		return
	}
	m := awake.Velocity().MagnitudeSquared() + awake.AngularVelocity()*awake.AngularVelocity()
	if m > minForWakeup {
		sleeping.Awake()
		if debug {
			logger.Infof("body %s: woke (neighbor %s motion %g)", sleeping.ID, awake.ID, m)
		}
	}
}
