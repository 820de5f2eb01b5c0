package scene

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp()
}

// NewSphereGridScene creates a scene with a grid of reflective spheres on a ground plane
func NewSphereGridScene() *Scene {
	s := New()
	s.Width = 800
	s.Height = 450
	s.Output = "spheregrid.png"
	s.MaxDepth = 4
	s.Camera = &Camera{
		LookFrom: core.NewPoint(4.5, 6, 18),    // Farther back and slightly lower
		LookAt:   core.NewPoint(4.5, 0.8, 4.5), // Center of grid
		Up:       core.NewVec3(0, 1, 0),
		FOV:      40.0,
	}
	s.Ambient = core.NewColor(0.05, 0.05, 0.05)

	s.AddShape(geometry.NewPlane(
		core.NewPoint(0, 0, 0),
		core.NewVec3(0, 1, 0),
		geometry.Material{Diffuse: core.NewColor(0.5, 0.5, 0.5), Shininess: 10},
	))

	gridSize := 10

	// Fit the grid in roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			// Hue across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			mat := geometry.Material{
				Diffuse:   color.Multiply(0.6),
				Specular:  color.Multiply(0.3 + 0.2*float64((i+j)%3)/2.0),
				Shininess: 50,
			}
			s.AddShape(geometry.NewSphere(core.NewPoint(x, sphereRadius, z), sphereRadius, mat))
		}
	}

	s.AddLight(lights.NewPoint(core.NewPoint(20, 25, 20), core.NewColor(0.55, 0.53, 0.5)))
	s.AddLight(lights.NewDirectional(core.NewVec3(-0.3, -1, -0.5), core.NewColor(0.35, 0.35, 0.4)))

	return s
}
