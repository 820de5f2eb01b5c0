package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

// newTestScene creates a 1x1 scene looking down -z from the origin
func newTestScene() *scene.Scene {
	s := scene.New()
	s.Width = 1
	s.Height = 1
	s.Camera = &scene.Camera{
		LookFrom: core.NewPoint(0, 0, 0),
		LookAt:   core.NewPoint(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
	}
	return s
}

func assertColorNear(t *testing.T, expected, got core.Color) {
	t.Helper()
	assert.InDelta(t, expected.R, got.R, 1e-6, "red")
	assert.InDelta(t, expected.G, got.G, 1e-6, "green")
	assert.InDelta(t, expected.B, got.B, 1e-6, "blue")
}

func TestRaytracer_MissIsBlack(t *testing.T) {
	s := newTestScene()
	s.Ambient = core.NewColor(0.5, 0.5, 0.5)
	s.AddShape(geometry.NewSphere(core.NewPoint(10, 10, -5), 1, geometry.DefaultMaterial()))

	assert.Equal(t, core.Black, NewRaytracer(s).ColorAt(0, 0))
}

func TestRaytracer_DirectLighting(t *testing.T) {
	tests := []struct {
		name     string
		material geometry.Material
		lights   []lights.Light
		expected core.Color
	}{
		{
			name:     "ambient only",
			material: geometry.Material{Diffuse: core.NewColor(0.5, 0.5, 0.5), Shininess: 10},
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "lambert from a head-on light",
			material: geometry.Material{Diffuse: core.NewColor(0.5, 0.5, 0.5), Shininess: 10},
			lights:   []lights.Light{lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewColor(0.5, 0.5, 0.5))},
			expected: core.NewColor(0.35, 0.35, 0.35),
		},
		{
			name: "blinn-phong highlight",
			material: geometry.Material{
				Diffuse:   core.NewColor(0.5, 0.5, 0.5),
				Specular:  core.NewColor(0.2, 0.2, 0.2),
				Shininess: 10,
			},
			lights:   []lights.Light{lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewColor(0.5, 0.5, 0.5))},
			expected: core.NewColor(0.45, 0.45, 0.45),
		},
		{
			name:     "light behind the surface",
			material: geometry.Material{Diffuse: core.NewColor(0.5, 0.5, 0.5), Specular: core.NewColor(1, 1, 1), Shininess: 10},
			lights:   []lights.Light{lights.NewDirectional(core.NewVec3(0, 0, 1), core.NewColor(0.5, 0.5, 0.5))},
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "sum is clamped",
			material: geometry.Material{Diffuse: core.NewColor(1, 1, 1), Specular: core.NewColor(1, 1, 1), Shininess: 1},
			lights: []lights.Light{
				lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewColor(1, 1, 1)),
				lights.NewPoint(core.NewPoint(0, 0, 0), core.NewColor(1, 1, 1)),
			},
			expected: core.NewColor(1, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene()
			s.Ambient = core.NewColor(0.2, 0.2, 0.2)
			s.AddShape(geometry.NewSphere(core.NewPoint(0, 0, -5), 1, tt.material))
			for _, l := range tt.lights {
				s.AddLight(l)
			}

			assertColorNear(t, tt.expected, NewRaytracer(s).ColorAt(0, 0))
		})
	}
}

func TestRaytracer_OcclusionSkipsOnlyThatLight(t *testing.T) {
	build := func(withOccluder bool) *Raytracer {
		s := newTestScene()
		s.AddShape(geometry.NewPlane(
			core.NewPoint(0, 0, -5),
			core.NewVec3(0, 0, 1),
			geometry.Material{Diffuse: core.NewColor(0.5, 0.5, 0.5), Shininess: 10},
		))
		// Halfway between the shading point (0,0,-5) and the point light, off the camera axis
		if withOccluder {
			s.AddShape(geometry.NewSphere(core.NewPoint(0, 2, -3), 0.5, geometry.DefaultMaterial()))
		}
		s.AddLight(lights.NewPoint(core.NewPoint(0, 4, -1), core.NewColor(0.3, 0.3, 0.3)))
		s.AddLight(lights.NewDirectional(core.NewVec3(0, 0, -1), core.NewColor(0.4, 0.4, 0.4)))
		return NewRaytracer(s)
	}

	// Directional: 0.4 * 1 * 0.5, point: 0.3 * cos(45deg) * 0.5
	unoccluded := 0.2 + 0.15*0.7071067811865476
	assertColorNear(t, core.NewColor(unoccluded, unoccluded, unoccluded), build(false).ColorAt(0, 0))
	assertColorNear(t, core.NewColor(0.2, 0.2, 0.2), build(true).ColorAt(0, 0))
}

func TestRaytracer_MirrorReflection(t *testing.T) {
	build := func(maxDepth int, specular core.Color) *Raytracer {
		s := newTestScene()
		s.MaxDepth = maxDepth

		// Counter-clockwise seen from the camera, so the normal is +z
		mirror := geometry.Material{Specular: specular, Shininess: 50}
		s.AddShape(geometry.NewTriangle(
			core.NewPoint(-1, -1, -5),
			core.NewPoint(1, -1, -5),
			core.NewPoint(0, 1, -5),
			mirror,
		))

		// Behind the camera, only visible in the mirror
		matte := geometry.Material{Diffuse: core.NewColor(0.8, 0.4, 0.2), Shininess: 10}
		s.AddShape(geometry.NewSphere(core.NewPoint(0, 0, 3), 1, matte))

		// Lights the sphere's front at 45 degrees and never reaches the mirror's face
		s.AddLight(lights.NewDirectional(core.NewVec3(0, -1, 1), core.NewColor(1, 1, 1)))
		return NewRaytracer(s)
	}

	cos45 := 0.7071067811865476
	lit := core.NewColor(0.8*cos45, 0.4*cos45, 0.2*cos45)

	white := core.NewColor(1, 1, 1)

	tests := []struct {
		name     string
		maxDepth int
		specular core.Color
		expected core.Color
	}{
		{"one bounce", 2, white, lit},
		{"deep budget", 5, white, lit},
		{"no budget", 1, white, core.Black},
		{"red specular gates reflection", 3, core.NewColor(0, 1, 1), core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColorNear(t, tt.expected, build(tt.maxDepth, tt.specular).ColorAt(0, 0))
		})
	}
}

func TestRaytracer_SetMaxDepth(t *testing.T) {
	rt := NewRaytracer(newTestScene())
	assert.Equal(t, 1, rt.MaxDepth())

	rt.SetMaxDepth(4)
	assert.Equal(t, 4, rt.MaxDepth())

	rt.SetMaxDepth(0)
	assert.Equal(t, 4, rt.MaxDepth())
}
