package lights

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

// Directional is a light infinitely far away, shining along Direction
type Directional struct {
	Direction core.Vec3 // Unit direction the light travels in
	Emission  core.Color
}

// NewDirectional creates a directional light. The direction is normalized.
func NewDirectional(direction core.Vec3, emission core.Color) *Directional {
	return &Directional{
		Direction: direction.Normalize(),
		Emission:  emission,
	}
}

func (d *Directional) Type() LightType { return LightTypeDirectional }

func (d *Directional) Color() core.Color { return d.Emission }

// DirectionFrom points against the light's travel direction; nothing is beyond the light
func (d *Directional) DirectionFrom(core.Point) (core.Vec3, float64) {
	return d.Direction.Negate().Normalize(), math.Inf(1)
}

func (d *Directional) light() {}
