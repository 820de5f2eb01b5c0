package geometry

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// Vertices are resolved from the scene's vertex buffer when the triangle is built.
type Triangle struct {
	V0, V1, V2 core.Point
	material   Material
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Point, material Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		material: material,
	}
	t.computeNormal()
	return t
}

// computeNormal caches the winding-dependent face normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	p := ray.Direction.Cross(edge2)
	det := edge1.Dot(p)

	// Ray lies in (or parallel to) the plane of the triangle
	if math.Abs(det) < Epsilon {
		return Intersection{}, false
	}

	invDet := 1.0 / det
	t0 := ray.Origin.Subtract(t.V0)

	beta := t0.Dot(p) * invDet
	if beta < 0.0 || beta > 1.0 {
		return Intersection{}, false
	}

	q := t0.Cross(edge1)
	gamma := ray.Direction.Dot(q) * invDet
	if gamma < 0.0 || beta+gamma > 1.0 {
		return Intersection{}, false
	}

	dist := edge2.Dot(q) * invDet
	if dist < Epsilon {
		return Intersection{}, false
	}

	return Intersection{
		T:     dist,
		Point: ray.At(dist),
		Shape: t,
	}, true
}

// NormalAt returns the face normal. Its sign follows the vertex winding.
func (t *Triangle) NormalAt(core.Point) core.Vec3 {
	return t.normal
}

// Material returns the triangle's surface parameters
func (t *Triangle) Material() Material {
	return t.material
}

func (t *Triangle) shape() {}
