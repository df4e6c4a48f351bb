package body

import (
	"github.com/polygl-phys/feather2d/geom"
	"github.com/polygl-phys/feather2d/internal/flog"
)

// Options is the option bag accepted by New, mirroring spec.md §6's Body
// API. Vertices are given relative to the body's intended position and
// translated into world space at construction (spec.md §4.3).
type Options struct {
	Vertices []geom.Vector

	Position geom.Vector
	Velocity geom.Vector

	// PreviousPosition overrides the Position-minus-Velocity default. A
	// pointer distinguishes "not given" from an explicit previous position
	// of (0, 0), which Position.Sub(Velocity) would otherwise shadow.
	PreviousPosition *geom.Vector

	Angle float64

	// PreviousAngle overrides the Angle-minus-AngularVelocity default; see
	// PreviousPosition for why this is a pointer.
	PreviousAngle *float64

	AngularVelocity float64

	Force  geom.Vector
	Torque float64

	Density float64 // default 0.001

	IsStatic bool

	// IsSensor marks the body as a trigger volume: SAT and collision
	// events still run, but the body is excluded from the position and
	// velocity solvers (SPEC_FULL.md §5, supplemented from the teacher's
	// IsTrigger split between COLLISION_* and TRIGGER_* events).
	IsSensor bool

	Slop        float64 // default 0.05
	Restitution float64 // 0.5 in DefaultOptions(); zero is kept as given
	Friction    float64 // 0.1 in DefaultOptions(); zero is kept as given
	FrictionAir float64 // default 0.01

	// Debug enables one-line warnings for degenerate geometry (zero/near-zero
	// area or inertia) through Logger (SPEC_FULL.md §3).
	Debug  bool
	Logger *flog.Logger
}

func (o Options) withDefaults() Options {
	if o.Density == 0 {
		o.Density = 0.001
	}
	if o.Slop == 0 {
		o.Slop = 0.05
	}
	if o.FrictionAir == 0 {
		o.FrictionAir = 0.01
	}
	if o.Logger == nil {
		o.Logger = flog.Default()
	}
	return o
}
