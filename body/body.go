// Package body implements the stateful rigid body: geometry, mass
// properties, velocity, sleep state, and per-tick time-corrected Verlet
// integration (spec.md §4.3).
package body

import (
	"math"

	"github.com/google/uuid"

	"github.com/polygl-phys/feather2d/geom"
	"github.com/polygl-phys/feather2d/internal/flog"
)

// degenerateAreaThreshold is the near-zero cutoff below which a polygon's
// area or inertia is reported as degenerate geometry (SPEC_FULL.md §3):
// collinear or duplicated vertices produce an area/inertia that rounds to
// zero well before it reaches exactly 0.
const degenerateAreaThreshold = 1e-9

// DefaultOptions returns the spec.md §6 Body API defaults.
func DefaultOptions() Options {
	return Options{
		Density:     0.001,
		Slop:        0.05,
		Restitution: 0.5,
		Friction:    0.1,
		FrictionAir: 0.01,
	}
}

// Body is the engine's stateful rigid body (spec.md §3).
type Body struct {
	ID uuid.UUID

	vertices []geom.Vector

	position         geom.Vector
	previousPosition geom.Vector

	angle         float64
	previousAngle float64

	velocity        geom.Vector
	angularVelocity float64

	force  geom.Vector
	torque float64

	density  float64
	area     float64
	mass     float64
	invMass  float64
	inertia  float64
	invInertia float64

	bounds geom.Bounds
	axes   []geom.Vector

	isStatic bool
	isSensor bool

	isSleeping bool

	debug  bool
	logger *flog.Logger

	slop        float64
	restitution float64
	friction    float64
	frictionAir float64

	// PositionImpulse and TotalContacts are solver-transient per-body
	// state (spec.md §3, §9): reset at the end of position solving.
	PositionImpulse geom.Vector
	TotalContacts   int

	// Motion and SleepCounter back the sleep-management state machine
	// (spec.md §4.6).
	Motion       float64
	SleepCounter int

	sleepEnterListeners []SleepListener
	sleepExitListeners  []SleepListener
	collisionListeners  []CollisionListener
}

// New constructs a Body from an option bag. Vertices are given relative to
// the body's intended position and translated into world space here
// (spec.md §4.3).
func New(opts Options) *Body {
	opts = opts.withDefaults()

	b := &Body{
		ID:          uuid.New(),
		density:     opts.Density,
		isStatic:    opts.IsStatic,
		isSensor:    opts.IsSensor,
		debug:       opts.Debug,
		logger:      opts.Logger,
		slop:        opts.Slop,
		restitution: opts.Restitution,
		friction:    opts.Friction,
		frictionAir: opts.FrictionAir,
		force:       opts.Force,
		torque:      opts.Torque,
		velocity:    opts.Velocity,
	}

	world := make([]geom.Vector, len(opts.Vertices))
	for i, v := range opts.Vertices {
		world[i] = v.Add(opts.Position)
	}
	b.position = opts.Position
	b.setVertices(world)

	if opts.Angle != 0 {
		RotateVertices(b.vertices, b.position, opts.Angle)
		for i, a := range b.axes {
			b.axes[i] = a.Rotate(opts.Angle)
		}
		b.bounds = geom.FromVertices(b.vertices)
	}
	b.angle = opts.Angle
	b.angularVelocity = opts.AngularVelocity

	if opts.PreviousPosition != nil {
		b.previousPosition = *opts.PreviousPosition
	} else {
		b.previousPosition = opts.Position.Sub(opts.Velocity)
	}

	if opts.PreviousAngle != nil {
		b.previousAngle = *opts.PreviousAngle
	} else {
		b.previousAngle = opts.Angle - opts.AngularVelocity
	}

	if opts.IsStatic {
		b.setStaticMass()
	}

	return b
}

// ShouldUpdate is the gate for integration and pair inclusion: a body
// participates iff it is neither static nor sleeping (spec.md §4.3).
func (b *Body) ShouldUpdate() bool {
	return !b.isStatic && !b.isSleeping
}

func (b *Body) Vertices() []geom.Vector { return append([]geom.Vector(nil), b.vertices...) }
func (b *Body) Position() geom.Vector   { return b.position }
func (b *Body) PreviousPosition() geom.Vector { return b.previousPosition }
func (b *Body) Angle() float64          { return b.angle }
func (b *Body) PreviousAngle() float64  { return b.previousAngle }
func (b *Body) Velocity() geom.Vector   { return b.velocity }
func (b *Body) AngularVelocity() float64 { return b.angularVelocity }
func (b *Body) Bounds() geom.Bounds     { return b.bounds }
func (b *Body) Axes() []geom.Vector     { return append([]geom.Vector(nil), b.axes...) }
func (b *Body) Mass() float64           { return b.mass }
func (b *Body) InvMass() float64        { return b.invMass }
func (b *Body) Inertia() float64        { return b.inertia }
func (b *Body) InvInertia() float64     { return b.invInertia }
func (b *Body) Area() float64           { return b.area }
func (b *Body) IsStatic() bool          { return b.isStatic }
func (b *Body) IsSensor() bool          { return b.isSensor }
func (b *Body) IsSleeping() bool        { return b.isSleeping }
func (b *Body) Slop() float64           { return b.slop }
func (b *Body) Restitution() float64    { return b.restitution }
func (b *Body) Friction() float64       { return b.friction }
func (b *Body) FrictionAir() float64    { return b.frictionAir }
func (b *Body) Force() geom.Vector      { return b.force }
func (b *Body) Torque() float64         { return b.torque }

// setVertices recomputes area, mass, bounds, axes, centroid and their
// inverses from a new world-space vertex list (spec.md §4.3, invariant 1).
func (b *Body) setVertices(vertices []geom.Vector) {
	b.vertices = vertices
	b.area = Area(vertices)
	b.bounds = geom.FromVertices(vertices)
	b.axes = Axes(vertices)

	if b.debug && b.area < degenerateAreaThreshold {
		b.logger.Warnf("body %s: degenerate area %g (vertices may be collinear or duplicated)", b.ID, b.area)
	}

	if b.isStatic {
		b.setStaticMass()
		return
	}

	b.mass = b.density * b.area
	b.invMass = 1 / b.mass

	centroid := Centroid(vertices)
	centered := make([]geom.Vector, len(vertices))
	for i, v := range vertices {
		centered[i] = v.Sub(centroid)
	}
	b.inertia = Inertia(centered, b.mass)
	b.invInertia = 1 / b.inertia

	if b.debug && b.inertia < degenerateAreaThreshold {
		b.logger.Warnf("body %s: degenerate inertia %g", b.ID, b.inertia)
	}
}

func (b *Body) setStaticMass() {
	b.mass = math.Inf(1)
	b.invMass = 0
	b.inertia = math.Inf(1)
	b.invInertia = 0
}

// SetVertices replaces the body's world-space polygon and recomputes every
// geometric dependent (spec.md §4.3).
func (b *Body) SetVertices(vertices []geom.Vector) {
	b.setVertices(append([]geom.Vector(nil), vertices...))
}

// SetPosition translates vertices and previousPosition by the delta so
// velocity (position - previousPosition) is preserved (spec.md §4.3,
// invariant 4; scenario 6).
func (b *Body) SetPosition(position geom.Vector) {
	delta := position.Sub(b.position)
	b.position = position
	b.previousPosition = b.previousPosition.Add(delta)

	translated := make([]geom.Vector, len(b.vertices))
	for i, v := range b.vertices {
		translated[i] = v.Add(delta)
	}
	b.vertices = translated
	b.bounds = b.bounds.Translate(delta)
}

// SetAngle rotates vertices and axes about position, recomputes bounds, and
// shifts previousAngle by the same delta so angular velocity is preserved
// (spec.md §4.3).
func (b *Body) SetAngle(angle float64) {
	delta := angle - b.angle
	b.angle = angle
	b.previousAngle += delta

	RotateVertices(b.vertices, b.position, delta)
	for i, a := range b.axes {
		b.axes[i] = a.Rotate(delta)
	}
	b.bounds = geom.FromVertices(b.vertices)
}

// SetStatic forces mass = infinity, invMass = 0 (and the inertia
// equivalent) when true; recomputes real mass/inertia from the current
// geometry when false (spec.md §4.3).
func (b *Body) SetStatic(static bool) {
	b.isStatic = static
	if static {
		b.setStaticMass()
		return
	}
	b.setVertices(b.vertices)
}

// AddForce accumulates an external force for the current tick and wakes
// the body (mirrors the teacher's RigidBody.AddForce waking a sleeping
// body that receives a push).
func (b *Body) AddForce(force geom.Vector) {
	if b.isStatic {
		return
	}
	b.Awake()
	b.force = b.force.Add(force)
}

// AddTorque accumulates external torque for the current tick.
func (b *Body) AddTorque(torque float64) {
	if b.isStatic {
		return
	}
	b.Awake()
	b.torque += torque
}

// ClearForces zeroes force and torque; called at the end of every tick
// (spec.md invariant 3).
func (b *Body) ClearForces() {
	b.force = geom.Vector{}
	b.torque = 0
}

// Integrate advances the body by one Time-Corrected Verlet step
// (spec.md §4.3). delta and lastDelta are in the same units as the
// engine's tick timing.
func (b *Body) Integrate(delta, lastDelta float64) {
	if !b.ShouldUpdate() {
		return
	}

	prevVelocity := b.position.Sub(b.previousPosition)
	c1 := delta / lastDelta
	c2 := 0.5 * delta * (delta + lastDelta)
	airDamp := 1 - b.frictionAir

	b.velocity = geom.Vector{
		X: prevVelocity.X*airDamp*c1 + (b.force.X/b.mass)*c2,
		Y: prevVelocity.Y*airDamp*c1 + (b.force.Y/b.mass)*c2,
	}
	b.angularVelocity = (b.angle-b.previousAngle)*airDamp*c1 + (b.torque/b.inertia)*c2

	b.previousAngle = b.angle
	b.angle += b.angularVelocity

	b.previousPosition = b.position
	b.position = b.position.Add(b.velocity)

	translated := make([]geom.Vector, len(b.vertices))
	for i, v := range b.vertices {
		translated[i] = v.Add(b.velocity)
	}
	b.vertices = translated

	if b.angularVelocity != 0 {
		RotateVertices(b.vertices, b.position, b.angularVelocity)
		for i, a := range b.axes {
			b.axes[i] = a.Rotate(b.angularVelocity)
		}
		b.bounds = geom.FromVertices(b.vertices)
	} else {
		b.bounds = b.bounds.Translate(b.velocity)
	}
}

// Sleep transitions the body to sleeping: velocities are zeroed and
// previousPosition/previousAngle are realigned with position/angle
// (spec.md §4.6, §8 "Sleep consistency").
func (b *Body) Sleep() {
	if b.isSleeping {
		return
	}
	b.isSleeping = true
	b.velocity = geom.Vector{}
	b.angularVelocity = 0
	b.previousPosition = b.position
	b.previousAngle = b.angle
	b.SleepCounter = 0
	b.Motion = 0
	b.emitSleepEnter()
}

// Awake wakes the body, if it was sleeping.
func (b *Body) Awake() {
	if !b.isSleeping {
		return
	}
	b.isSleeping = false
	b.SleepCounter = 0
	b.emitSleepExit()
}

// ApplyPositionImpulse commits the accumulated PositionImpulse (built up
// across a position-solver pass) to vertices, bounds, position and
// previousPosition together, so velocity is left untouched, then resets
// the per-tick solver accumulators (spec.md §4.5, postSolvePosition).
func (b *Body) ApplyPositionImpulse() {
	defer func() {
		b.PositionImpulse = geom.Vector{}
		b.TotalContacts = 0
	}()

	if b.PositionImpulse == (geom.Vector{}) {
		return
	}

	delta := b.PositionImpulse
	b.position = b.position.Add(delta)
	b.previousPosition = b.previousPosition.Add(delta)

	translated := make([]geom.Vector, len(b.vertices))
	for i, v := range b.vertices {
		translated[i] = v.Add(delta)
	}
	b.vertices = translated
	b.bounds = b.bounds.Translate(delta)
}

// ApplyImpulse perturbs previousPosition and previousAngle by a real
// velocity-solver impulse J applied at lever arm r. sign is -1 for the
// "body1" side of a contact and +1 for the "body2" side, matching
// spec.md §4.5's
//
//	previousPosition1 += J * invM1,  previousAngle1 += (r1 x J) * invI1
//	previousPosition2 -= J * invM2,  previousAngle2 -= (r2 x J) * invI2
//
// Applying the impulse to previousPosition rather than position is the
// Verlet equivalent of adjusting velocity.
func (b *Body) ApplyImpulse(J, r geom.Vector, sign float64) {
	if !b.ShouldUpdate() {
		return
	}
	b.previousPosition = b.previousPosition.Sub(J.Scale(sign * b.invMass))
	b.previousAngle -= sign * r.Cross(J) * b.invInertia
}
