package lights

import (
	"fmt"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// Light is the closed set of light sources: *Directional and *Point.
// Neither attenuates with distance; they only fall off through shadowing.
type Light interface {
	Type() LightType

	// Color returns the emitted color
	Color() core.Color

	// DirectionFrom returns the unit direction FROM the shading point TO the light,
	// and how far a shadow ray must travel before it reaches the light
	DirectionFrom(point core.Point) (direction core.Vec3, maxDistance float64)

	light()
}

// Describe formats a light for logs
func Describe(l Light) string {
	switch light := l.(type) {
	case *Directional:
		return fmt.Sprintf("directional dir=%v color=%v", light.Direction, light.Emission)
	case *Point:
		return fmt.Sprintf("point pos=%v color=%v", light.Position, light.Emission)
	default:
		panic(fmt.Sprintf("lights: unknown light %T", l))
	}
}

// TotalColor sums the colors of every light
func TotalColor(lights []Light) core.Color {
	total := core.Black
	for _, l := range lights {
		total = total.Add(l.Color())
	}
	return total
}
