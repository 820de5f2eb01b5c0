package scene

import (
	"errors"
	"fmt"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/lights"
)

// DefaultOutput is the image file written when a scene names none
const DefaultOutput = "output.png"

var (
	ErrNoCamera     = errors.New("camera is not defined")
	ErrInvalidSize  = errors.New("image size must be positive")
	ErrInvalidDepth = errors.New("max depth must be at least 1")
)

// Camera holds the viewing parameters as written in the scene file
type Camera struct {
	LookFrom core.Point
	LookAt   core.Point
	Up       core.Vec3
	FOV      float64 // Vertical field of view in degrees
}

// Scene contains everything the renderer needs. It is built once by a loader
// and must not be modified while a render is running.
type Scene struct {
	Width    int
	Height   int
	Output   string
	Camera   *Camera
	Ambient  core.Color
	Lights   []lights.Light
	Shapes   []geometry.Shape
	Vertices []core.Point // Vertex buffer that triangles were resolved from
	MaxVerts int
	MaxDepth int // Recursion budget, 1 means direct lighting only
}

// New returns an empty scene with default output and depth
func New() *Scene {
	return &Scene{
		Output:   DefaultOutput,
		Ambient:  core.Black,
		Lights:   make([]lights.Light, 0),
		Shapes:   make([]geometry.Shape, 0),
		Vertices: make([]core.Point, 0),
		MaxDepth: 1,
	}
}

// Validate checks the invariants the renderer relies on
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.MaxDepth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, s.MaxDepth)
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// CountByKind returns how many shapes of each variant the scene holds
func (s *Scene) CountByKind() map[geometry.Kind]int {
	counts := make(map[geometry.Kind]int)
	for _, shape := range s.Shapes {
		counts[geometry.KindOf(shape)]++
	}
	return counts
}

// AddShape appends a primitive
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a light source
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}
