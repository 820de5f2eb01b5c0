package scene

import (
	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
)

// NewCornellScene creates a Cornell box built from triangles with a mirror sphere and a matte sphere
func NewCornellScene() *Scene {
	s := New()
	s.Width = 400
	s.Height = 400
	s.Output = "cornell.png"
	s.MaxDepth = 4
	s.Camera = &Camera{
		LookFrom: core.NewPoint(278, 278, -800), // Outside the open side of the box
		LookAt:   core.NewPoint(278, 278, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      40,
	}
	s.Ambient = core.NewColor(0.1, 0.1, 0.1)

	white := geometry.Material{Diffuse: core.NewColor(0.73, 0.73, 0.73), Shininess: 10}
	red := geometry.Material{Diffuse: core.NewColor(0.65, 0.05, 0.05), Shininess: 10}
	green := geometry.Material{Diffuse: core.NewColor(0.12, 0.45, 0.15), Shininess: 10}

	// Cornell box dimensions (standard 555x555x555 units), every wall normal faces inward
	boxSize := 555.0

	// Floor
	s.AddQuad(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), white)
	// Ceiling
	s.AddQuad(core.NewPoint(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	// Back wall
	s.AddQuad(core.NewPoint(0, 0, boxSize), core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), white)
	// Left wall
	s.AddQuad(core.NewPoint(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)
	// Right wall
	s.AddQuad(core.NewPoint(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green)

	mirror := geometry.Material{
		Diffuse:   core.NewColor(0.05, 0.05, 0.05),
		Specular:  core.NewColor(0.8, 0.8, 0.8),
		Shininess: 200,
	}
	plastic := geometry.Material{
		Diffuse:   core.NewColor(0.2, 0.3, 0.7),
		Specular:  core.NewColor(0.3, 0.3, 0.3),
		Shininess: 40,
	}
	s.AddShape(geometry.NewSphere(core.NewPoint(185, 82.5, 169), 82.5, mirror))
	s.AddShape(geometry.NewSphere(core.NewPoint(370, 90, 351), 90, plastic))

	s.AddLight(lights.NewPoint(core.NewPoint(278, 500, 200), core.NewColor(0.7, 0.7, 0.7)))
	s.AddLight(lights.NewDirectional(core.NewVec3(0, -1, 1), core.NewColor(0.2, 0.2, 0.2)))

	return s
}

// AddQuad appends the parallelogram corner, corner+u, corner+u+v, corner+v as two triangles.
// Both triangles share the normal u×v. The corners are also pushed onto the vertex buffer.
func (s *Scene) AddQuad(corner core.Point, u, v core.Vec3, material geometry.Material) {
	a := corner
	b := corner.Add(u)
	c := corner.Add(u).Add(v)
	d := corner.Add(v)

	s.Vertices = append(s.Vertices, a, b, c, d)
	s.MaxVerts = len(s.Vertices)

	s.AddShape(geometry.NewTriangle(a, b, c, material))
	s.AddShape(geometry.NewTriangle(a, c, d, material))
}
