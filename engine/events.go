package engine

import "github.com/polygl-phys/feather2d/body"

// PreUpdateListener runs before sleep update and integration; listeners
// may mutate force/torque on any body (spec.md §4.7 step 1).
type PreUpdateListener func()

// UpdateListener runs once per tick, after forces are reset, and receives
// every contact produced this tick (spec.md §4.7 step 11).
type UpdateListener func(contacts []*body.Contact)

// CollisionPhase classifies a contact against the previous tick's active
// pairs (SPEC_FULL.md §5's Enter/Stay/Exit lifecycle, layered on top of
// spec.md's per-tick collision event).
type CollisionPhase int

const (
	PhaseEnter CollisionPhase = iota
	PhaseStay
	PhaseExit
)

func (p CollisionPhase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseStay:
		return "stay"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

// CollisionEvent is the engine-level collision notification, richer than
// the plain body.Contact callback each Body also receives.
type CollisionEvent struct {
	Contact  *body.Contact
	Phase    CollisionPhase
	IsSensor bool
}

// CollisionListener receives engine-level collision lifecycle events.
type CollisionListener func(CollisionEvent)

// events is the engine's synchronous, registration-order event bus
// (spec.md §5: "all listeners ... run before update returns, in
// registration order").
type events struct {
	preUpdate []PreUpdateListener
	update    []UpdateListener
	collision []CollisionListener

	// activePairs holds each pair's most recent Contact, so a PhaseExit
	// event still carries Body1/Body2 for the pair that stopped colliding.
	activePairs map[pairKey]*body.Contact
}

type pairKey struct{ a, b string }

func makePairKey(a, b *body.Body) pairKey {
	ai, bi := a.ID.String(), b.ID.String()
	if bi < ai {
		ai, bi = bi, ai
	}
	return pairKey{ai, bi}
}

func newEvents() *events {
	return &events{activePairs: make(map[pairKey]*body.Contact)}
}

func (e *events) emitPreUpdate() {
	for _, l := range e.preUpdate {
		l()
	}
}

func (e *events) emitUpdate(contacts []*body.Contact) {
	for _, l := range e.update {
		l(contacts)
	}
}

// emitCollisions fires the per-body collision callback for every contact
// (spec.md §6) and classifies/fires the engine-level lifecycle event
// (SPEC_FULL.md §5).
func (e *events) emitCollisions(contacts []*body.Contact) {
	current := make(map[pairKey]*body.Contact, len(contacts))

	for _, c := range contacts {
		c.Body1.EmitCollision(c)
		c.Body2.EmitCollision(c)

		key := makePairKey(c.Body1, c.Body2)
		current[key] = c

		phase := PhaseStay
		if _, ok := e.activePairs[key]; !ok {
			phase = PhaseEnter
		}
		e.dispatchCollision(CollisionEvent{
			Contact:  c,
			Phase:    phase,
			IsSensor: c.Body1.IsSensor() || c.Body2.IsSensor(),
		})
	}

	for key, last := range e.activePairs {
		if _, ok := current[key]; ok {
			continue
		}
		e.dispatchCollision(CollisionEvent{
			Contact:  last,
			Phase:    PhaseExit,
			IsSensor: last.Body1.IsSensor() || last.Body2.IsSensor(),
		})
	}

	e.activePairs = current
}

func (e *events) dispatchCollision(evt CollisionEvent) {
	for _, l := range e.collision {
		l(evt)
	}
}
