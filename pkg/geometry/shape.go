package geometry

import (
	"fmt"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

// Epsilon rejects near-parallel rays and hits at the ray origin inside the primitives
const Epsilon = 1e-6

// Material holds the surface parameters used by the shading model
type Material struct {
	Diffuse   core.Color
	Specular  core.Color
	Shininess float64
}

// DefaultMaterial matches the parser state before any diffuse/specular/shininess command
func DefaultMaterial() Material {
	return Material{
		Diffuse:   core.NewColor(0.9, 0.9, 0.9),
		Specular:  core.Black,
		Shininess: 10,
	}
}

// Shape is the closed set of primitives a ray can hit: *Sphere, *Plane and *Triangle.
// The unexported marker keeps other packages from adding variants.
type Shape interface {
	// Intersect returns the closest hit in front of the ray origin, if any
	Intersect(ray core.Ray) (Intersection, bool)
	// NormalAt returns the unit surface normal at a point on the shape
	NormalAt(p core.Point) core.Vec3
	// Material returns the surface parameters
	Material() Material

	shape()
}

// Kind names the variant of a shape
type Kind string

const (
	KindSphere   Kind = "sphere"
	KindPlane    Kind = "plane"
	KindTriangle Kind = "triangle"
)

// KindOf reports the variant of s
func KindOf(s Shape) Kind {
	switch s.(type) {
	case *Sphere:
		return KindSphere
	case *Plane:
		return KindPlane
	case *Triangle:
		return KindTriangle
	default:
		panic(fmt.Sprintf("geometry: unknown shape %T", s))
	}
}

// Intersection records where a ray hit a shape
type Intersection struct {
	T     float64    // Distance along the originating ray
	Point core.Point // Hit point
	Shape Shape      // Shape that was hit
}

// Normal returns the unit surface normal at the hit point
func (i Intersection) Normal() core.Vec3 {
	return i.Shape.NormalAt(i.Point)
}

// ReflectedRay mirrors the incoming direction about the surface normal.
// The origin is pushed off the surface by bias to avoid self-intersection.
func (i Intersection) ReflectedRay(incoming core.Vec3, bias float64) core.Ray {
	direction := incoming.Reflect(i.Normal())
	return core.NewRay(i.Point.Add(direction.Multiply(bias)), direction)
}

// Nearest scans every shape and returns the hit with the smallest T greater than tMin
func Nearest(shapes []Shape, ray core.Ray, tMin float64) (Intersection, bool) {
	var closest Intersection
	hitAnything := false

	for _, s := range shapes {
		hit, ok := s.Intersect(ray)
		if !ok || hit.T <= tMin {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Occluded reports whether any shape blocks the ray strictly between tMin and tMax
func Occluded(shapes []Shape, ray core.Ray, tMin, tMax float64) bool {
	for _, s := range shapes {
		if hit, ok := s.Intersect(ray); ok && hit.T > tMin && hit.T < tMax {
			return true
		}
	}
	return false
}
