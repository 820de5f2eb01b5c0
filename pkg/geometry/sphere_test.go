package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
)

const tolerance = 1e-9

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, -5), 1.0, DefaultMaterial())
	ray := core.NewRay(core.NewPoint(10, 10, 0), core.NewVec3(0, 0, -1))

	_, isHit := sphere.Intersect(ray)
	assert.False(t, isHit)
}

func TestSphere_Intersect_FrontHit(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, -5), 1.0, DefaultMaterial())
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray)
	require.True(t, isHit)

	assert.InDelta(t, 4.0, hit.T, tolerance)
	assert.True(t, hit.Point.ApproxEqual(core.NewPoint(0, 0, -4), tolerance), "hit point %v", hit.Point)
	assert.Same(t, sphere, hit.Shape)

	normal := hit.Normal()
	assert.InDelta(t, 0, normal.Subtract(core.NewVec3(0, 0, 1)).Length(), tolerance)
}

func TestSphere_Intersect_Roots(t *testing.T) {
	sphere := NewSphere(core.NewPoint(0, 0, 0), 1.0, DefaultMaterial())

	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{"from outside", core.NewPoint(0, 0, 3), core.NewVec3(0, 0, -1), true, 2.0},
		{"from inside uses far root", core.NewPoint(0, 0, 0), core.NewVec3(0, 0, 1), true, 1.0},
		{"sphere behind ray", core.NewPoint(0, 0, 3), core.NewVec3(0, 0, 1), false, 0},
		{"glancing", core.NewPoint(1, 0, 2), core.NewVec3(0, 0, -1), true, 2.0},
		{"unnormalized direction", core.NewPoint(0, 0, 3), core.NewVec3(0, 0, -7), true, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			require.Equal(t, tt.shouldHit, isHit)
			if tt.shouldHit {
				assert.InDelta(t, tt.expectedT, hit.T, 1e-6)
				assert.Greater(t, hit.T, 0.0)
			}
		})
	}
}

func TestSphere_NormalIsUnit(t *testing.T) {
	sphere := NewSphere(core.NewPoint(1, 2, 3), 2.5, DefaultMaterial())
	points := []core.Point{
		core.NewPoint(3.5, 2, 3),
		core.NewPoint(1, -0.5, 3),
		core.NewPoint(1, 2, 5.5),
	}
	for _, p := range points {
		assert.InDelta(t, 1.0, sphere.NormalAt(p).Length(), 1e-6)
	}
}
