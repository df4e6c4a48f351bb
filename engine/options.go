package engine

import (
	"github.com/polygl-phys/feather2d/geom"
	"github.com/polygl-phys/feather2d/internal/flog"
)

// Options configures an Engine, matching spec.md §6's option set plus the
// SPEC_FULL.md §5 broad-phase strategy selector.
type Options struct {
	PositionIterations int // default 6
	VelocityIterations int // default 4
	Gravity            geom.Vector

	// EnableSleeping has no zero-value default: a zero Options leaves it
	// false. Start from DefaultOptions() to get spec.md's documented
	// enableSleeping=true.
	EnableSleeping bool

	BroadPhase   BroadPhase
	GridCellSize float64 // only used when BroadPhase == BroadPhaseGrid
	GridCells    int      // only used when BroadPhase == BroadPhaseGrid

	// Debug enables diagnostic logging through Logger.
	Debug  bool
	Logger *flog.Logger
}

// DefaultOptions returns the spec.md §6 engine defaults.
func DefaultOptions() Options {
	return Options{
		PositionIterations: 6,
		VelocityIterations: 4,
		Gravity:            geom.New(0, 0.001),
		EnableSleeping:     true,
		BroadPhase:         BroadPhaseBruteForce,
		GridCellSize:       64,
		GridCells:          1024,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PositionIterations == 0 {
		o.PositionIterations = d.PositionIterations
	}
	if o.VelocityIterations == 0 {
		o.VelocityIterations = d.VelocityIterations
	}
	if o.GridCellSize == 0 {
		o.GridCellSize = d.GridCellSize
	}
	if o.GridCells == 0 {
		o.GridCells = d.GridCells
	}
	if o.Logger == nil {
		o.Logger = flog.Default()
	}
	return o
}
