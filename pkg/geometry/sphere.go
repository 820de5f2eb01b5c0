package geometry

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float64
	material Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: material,
	}
}

// Intersect solves |O + tD - C|² = r² and keeps the smallest positive root
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return Intersection{}, false
		}
	}

	return Intersection{
		T:     root,
		Point: ray.At(root),
		Shape: s,
	}, true
}

// NormalAt returns the outward unit normal
func (s *Sphere) NormalAt(p core.Point) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// Material returns the sphere's surface parameters
func (s *Sphere) Material() Material {
	return s.material
}

func (s *Sphere) shape() {}
