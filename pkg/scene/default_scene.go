package scene

import (
	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
)

// NewDefaultScene creates a default scene with spheres, a triangle, ground plane and camera
func NewDefaultScene() *Scene {
	s := New()
	s.Width = 640
	s.Height = 360
	s.Output = "default.png"
	s.MaxDepth = 3
	s.Camera = &Camera{
		LookFrom: core.NewPoint(0, 0.75, 2), // Position camera higher and farther back
		LookAt:   core.NewPoint(0, 0.5, -1), // Look at the sphere center
		Up:       core.NewVec3(0, 1, 0),
		FOV:      40.0,
	}
	s.Ambient = core.NewColor(0.08, 0.08, 0.1)

	// Create materials
	ground := geometry.Material{Diffuse: core.NewColor(0.48, 0.48, 0.0), Shininess: 10}
	blue := geometry.Material{
		Diffuse:   core.NewColor(0.1, 0.2, 0.5),
		Specular:  core.NewColor(0.2, 0.2, 0.2),
		Shininess: 30,
	}
	red := geometry.Material{Diffuse: core.NewColor(0.65, 0.25, 0.2), Shininess: 10}
	silver := geometry.Material{
		Diffuse:   core.NewColor(0.1, 0.1, 0.1),
		Specular:  core.NewColor(0.8, 0.8, 0.8),
		Shininess: 120,
	}
	gold := geometry.Material{
		Diffuse:   core.NewColor(0.3, 0.2, 0.05),
		Specular:  core.NewColor(0.8, 0.6, 0.2),
		Shininess: 60,
	}

	s.AddShape(geometry.NewPlane(core.NewPoint(0, 0, 0), core.NewVec3(0, 1, 0), ground))
	s.AddShape(geometry.NewSphere(core.NewPoint(0, 0.5, -1), 0.5, red))
	s.AddShape(geometry.NewSphere(core.NewPoint(-1, 0.5, -1), 0.5, silver))
	s.AddShape(geometry.NewSphere(core.NewPoint(1, 0.5, -1), 0.5, gold))
	s.AddShape(geometry.NewSphere(core.NewPoint(0.5, 0.2, -0.4), 0.2, blue))

	// Counter-clockwise seen from the camera so the normal faces it
	s.AddShape(geometry.NewTriangle(
		core.NewPoint(-0.7, 0, -0.3),
		core.NewPoint(-0.2, 0, -0.3),
		core.NewPoint(-0.45, 0.45, -0.3),
		blue,
	))

	s.AddLight(lights.NewPoint(core.NewPoint(3, 4, 2), core.NewColor(0.6, 0.6, 0.55)))
	s.AddLight(lights.NewDirectional(core.NewVec3(-1, -1, -1), core.NewColor(0.3, 0.3, 0.35)))

	return s
}
