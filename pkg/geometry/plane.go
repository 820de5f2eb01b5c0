package geometry

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Point // A point on the plane
	Normal   core.Vec3  // Unit normal
	material Material
}

// NewPlane creates a new plane
func NewPlane(point core.Point, normal core.Vec3, material Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		material: material,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < Epsilon {
		return Intersection{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= Epsilon {
		return Intersection{}, false
	}

	return Intersection{
		T:     t,
		Point: ray.At(t),
		Shape: p,
	}, true
}

// NormalAt returns the plane normal, the same everywhere
func (p *Plane) NormalAt(core.Point) core.Vec3 {
	return p.Normal
}

// Material returns the plane's surface parameters
func (p *Plane) Material() Material {
	return p.material
}

func (p *Plane) shape() {}
