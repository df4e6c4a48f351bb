// Package engine orchestrates one simulation tick: pre-update hook, sleep
// update, force application, integration, broad phase, narrow phase,
// solver iterations, event emission, and force reset (spec.md §4.7).
package engine

import (
	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/sat"
	"github.com/polygl-phys/feather2d/solve"
)

// Delta is the per-tick timing the caller supplies to Update. A bare
// number means LastDelta == Delta (spec.md §6).
type Delta struct {
	Delta     float64
	LastDelta float64
}

// Engine owns the body list exclusively during Update (spec.md §5).
type Engine struct {
	bodies []*body.Body

	options Options
	events  *events
	grid    *spatialGrid
}

// New constructs an Engine over the given bodies (spec.md §6).
func New(bodies []*body.Body, opts Options) *Engine {
	opts = opts.withDefaults()
	e := &Engine{
		bodies:  append([]*body.Body(nil), bodies...),
		options: opts,
		events:  newEvents(),
	}
	if opts.BroadPhase == BroadPhaseGrid {
		e.grid = newSpatialGrid(opts.GridCellSize, opts.GridCells)
	}
	return e
}

// Bodies returns the engine's owned body list. Callers must not mutate
// body state outside preUpdate/update listeners (spec.md §5).
func (e *Engine) Bodies() []*body.Body {
	return append([]*body.Body(nil), e.bodies...)
}

func (e *Engine) AddBody(b *body.Body) {
	e.bodies = append(e.bodies, b)
}

func (e *Engine) RemoveBody(b *body.Body) {
	for i, cur := range e.bodies {
		if cur == b {
			e.bodies = append(e.bodies[:i], e.bodies[i+1:]...)
			return
		}
	}
}

func (e *Engine) OnPreUpdate(l PreUpdateListener) {
	e.events.preUpdate = append(e.events.preUpdate, l)
}

func (e *Engine) OnUpdate(l UpdateListener) {
	e.events.update = append(e.events.update, l)
}

func (e *Engine) OnCollision(l CollisionListener) {
	e.events.collision = append(e.events.collision, l)
}

// Update advances the simulation by one tick (spec.md §4.7).
func (e *Engine) Update(dt Delta) {
	if dt.LastDelta == 0 {
		dt.LastDelta = dt.Delta
	}

	e.events.emitPreUpdate()

	if e.options.EnableSleeping {
		updateSleep(e.bodies, e.options.Logger, e.options.Debug)
	}

	e.applyGravity()

	for _, b := range e.bodies {
		b.Integrate(dt.Delta, dt.LastDelta)
	}

	pairs := e.broadPhase()
	contacts := e.narrowPhase(pairs)

	if e.options.EnableSleeping {
		wakeFromContacts(contacts, e.options.Logger, e.options.Debug)
	}

	solve.Position(contacts, e.options.PositionIterations)
	solve.Velocity(contacts, e.options.VelocityIterations)

	e.events.emitCollisions(contacts)

	for _, b := range e.bodies {
		b.ClearForces()
	}

	e.events.emitUpdate(contacts)
}

func (e *Engine) applyGravity() {
	for _, b := range e.bodies {
		if !b.ShouldUpdate() {
			continue
		}
		b.AddForce(e.options.Gravity.Scale(b.Mass()))
	}
}

func (e *Engine) broadPhase() []pair {
	if e.grid != nil {
		return e.grid.pairs(e.bodies)
	}
	return bruteForcePairs(e.bodies)
}

func (e *Engine) narrowPhase(pairs []pair) []*body.Contact {
	contacts := make([]*body.Contact, 0, len(pairs))
	for _, p := range pairs {
		c := sat.Test(p.a, p.b)
		if !c.Colliding {
			if e.options.Debug {
				e.options.Logger.Infof("narrow phase: pair %s/%s rejected by SAT (no overlap on a separating axis)", p.a.ID, p.b.ID)
			}
			continue
		}
		if len(c.Points) < 2 && e.options.Debug {
			e.options.Logger.Warnf("narrow phase: pair %s/%s produced degenerate contact manifold (%d point(s))", p.a.ID, p.b.ID, len(c.Points))
		}
		contacts = append(contacts, c)
	}
	return contacts
}
