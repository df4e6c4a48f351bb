// Package config loads scene descriptions (initial bodies + engine
// options) from YAML, the way gazed-vu and g3n-engine load scene/asset
// descriptors (SPEC_FULL.md §3). This supplements, it does not replace,
// constructing body.Body/engine.Engine directly from Go option structs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polygl-phys/feather2d/body"
	"github.com/polygl-phys/feather2d/engine"
	"github.com/polygl-phys/feather2d/geom"
)

// VectorYAML is a two-element [x, y] YAML sequence.
type VectorYAML [2]float64

func (v VectorYAML) toVector() geom.Vector {
	return geom.New(v[0], v[1])
}

// BodyYAML is the YAML shape of one body.Options entry.
type BodyYAML struct {
	Vertices    []VectorYAML `yaml:"vertices"`
	Position    VectorYAML   `yaml:"position"`
	Velocity    VectorYAML   `yaml:"velocity"`
	Angle       float64      `yaml:"angle"`
	Density     float64      `yaml:"density"`
	IsStatic    bool         `yaml:"is_static"`
	IsSensor    bool         `yaml:"is_sensor"`
	Slop        float64      `yaml:"slop"`
	Restitution float64      `yaml:"restitution"`
	Friction    float64      `yaml:"friction"`
	FrictionAir float64      `yaml:"friction_air"`
}

func (y BodyYAML) toOptions() body.Options {
	vertices := make([]geom.Vector, len(y.Vertices))
	for i, v := range y.Vertices {
		vertices[i] = v.toVector()
	}
	return body.Options{
		Vertices:    vertices,
		Position:    y.Position.toVector(),
		Velocity:    y.Velocity.toVector(),
		Angle:       y.Angle,
		Density:     y.Density,
		IsStatic:    y.IsStatic,
		IsSensor:    y.IsSensor,
		Slop:        y.Slop,
		Restitution: y.Restitution,
		Friction:    y.Friction,
		FrictionAir: y.FrictionAir,
	}
}

// EngineYAML is the YAML shape of engine.Options.
type EngineYAML struct {
	PositionIterations int        `yaml:"position_iterations"`
	VelocityIterations int        `yaml:"velocity_iterations"`
	Gravity            VectorYAML `yaml:"gravity"`
	EnableSleeping     bool       `yaml:"enable_sleeping"`
}

// SceneYAML is the top-level scene document.
type SceneYAML struct {
	Engine EngineYAML `yaml:"engine"`
	Bodies []BodyYAML `yaml:"bodies"`
}

// LoadScene reads and parses a YAML scene description into a ready
// engine.Engine. A malformed document or a body with a degenerate vertex
// list (fewer than 3 points, or zero signed area) is a boundary-input
// error (spec.md §7 treats this as user error; config surfaces it instead
// of letting it reach Body.Inertia as a silent Inf/NaN).
func LoadScene(path string) (*engine.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("feather2d/config: reading scene: %w", err)
	}

	var scene SceneYAML
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("feather2d/config: parsing scene: %w", err)
	}

	bodies := make([]*body.Body, len(scene.Bodies))
	for i, b := range scene.Bodies {
		if len(b.Vertices) < 3 {
			return nil, fmt.Errorf("feather2d/config: body %d has %d vertices, need >= 3", i, len(b.Vertices))
		}
		opts := b.toOptions()
		if body.SignedArea(opts.Vertices) == 0 {
			return nil, fmt.Errorf("feather2d/config: body %d has zero signed area (collinear or duplicated vertices)", i)
		}
		bodies[i] = body.New(opts)
	}

	opts := engine.Options{
		PositionIterations: scene.Engine.PositionIterations,
		VelocityIterations: scene.Engine.VelocityIterations,
		Gravity:            scene.Engine.Gravity.toVector(),
		EnableSleeping:     scene.Engine.EnableSleeping,
	}

	return engine.New(bodies, opts), nil
}
