package lights

import "github.com/AmineEl59/ProjetRayTracer/pkg/core"

// Point is an omnidirectional light at a position
type Point struct {
	Position core.Point
	Emission core.Color
}

// NewPoint creates a point light
func NewPoint(position core.Point, emission core.Color) *Point {
	return &Point{
		Position: position,
		Emission: emission,
	}
}

func (p *Point) Type() LightType { return LightTypePoint }

func (p *Point) Color() core.Color { return p.Emission }

// DirectionFrom returns the direction toward the light and the distance to it
func (p *Point) DirectionFrom(point core.Point) (core.Vec3, float64) {
	toLight := p.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}

func (p *Point) light() {}
