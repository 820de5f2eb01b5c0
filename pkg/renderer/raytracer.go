package renderer

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

const (
	// HitEpsilon rejects hits this close to a secondary ray's origin
	HitEpsilon = 1e-4
	// RayBias offsets shadow and reflection origins off the surface
	RayBias = 1e-4
	// ReflectionThreshold is the specular red level below which no reflection is traced
	ReflectionThreshold = 1e-4
)

// Raytracer computes pixel colors for a scene. It never modifies the scene,
// so one instance can be shared by every worker.
type Raytracer struct {
	scene    *scene.Scene
	camera   *Camera
	maxDepth int
}

// NewRaytracer creates a raytracer for a validated scene
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{
		scene:    s,
		camera:   NewCamera(*s.Camera, s.Width, s.Height),
		maxDepth: s.MaxDepth,
	}
}

// SetMaxDepth overrides the scene's recursion budget. Values below 1 are ignored.
func (rt *Raytracer) SetMaxDepth(depth int) {
	if depth >= 1 {
		rt.maxDepth = depth
	}
}

// MaxDepth returns the recursion budget in use
func (rt *Raytracer) MaxDepth() int { return rt.maxDepth }

// Width returns the image width in pixels
func (rt *Raytracer) Width() int { return rt.scene.Width }

// Height returns the image height in pixels
func (rt *Raytracer) Height() int { return rt.scene.Height }

// Camera returns the primary ray generator
func (rt *Raytracer) Camera() *Camera { return rt.camera }

// ColorAt returns the clamped color of pixel (col, row), with row 0 at the bottom of the view
func (rt *Raytracer) ColorAt(col, row int) core.Color {
	return rt.computeColor(rt.camera.GetRay(col, row), rt.maxDepth)
}

// computeColor shades the nearest hit along ray and follows mirror reflections while depth > 1
func (rt *Raytracer) computeColor(ray core.Ray, depth int) core.Color {
	hit, ok := geometry.Nearest(rt.scene.Shapes, ray, HitEpsilon)
	if !ok {
		return core.Black
	}

	mat := hit.Shape.Material()
	normal := hit.Normal()
	view := ray.Direction.Negate().Normalize()

	color := rt.scene.Ambient.MultiplyColor(mat.Diffuse)

	for _, light := range rt.scene.Lights {
		toLight, maxDistance := light.DirectionFrom(hit.Point)
		if rt.occluded(hit.Point, toLight, maxDistance) {
			continue
		}

		// Lambert
		nDotL := math.Max(normal.Dot(toLight), 0)
		color = color.Add(light.Color().Multiply(nDotL).MultiplyColor(mat.Diffuse))

		// Blinn-Phong
		if nDotL > 0 {
			half := toLight.Add(view).Normalize()
			spec := math.Pow(math.Max(normal.Dot(half), 0), mat.Shininess)
			color = color.Add(light.Color().Multiply(spec).MultiplyColor(mat.Specular))
		}
	}

	if depth > 1 && mat.Specular.R > ReflectionThreshold {
		reflected := hit.ReflectedRay(ray.Direction, RayBias)
		color = color.Add(mat.Specular.MultiplyColor(rt.computeColor(reflected, depth-1)))
	}

	return color.Clamp()
}

// occluded reports whether anything lies between point and a light in direction toLight
func (rt *Raytracer) occluded(point core.Point, toLight core.Vec3, maxDistance float64) bool {
	shadowRay := core.NewRay(point.Add(toLight.Multiply(RayBias)), toLight)
	return geometry.Occluded(rt.scene.Shapes, shadowRay, 0, maxDistance)
}
