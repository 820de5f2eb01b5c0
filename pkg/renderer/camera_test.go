package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

const tolerance = 1e-9

func assertVecNear(t *testing.T, expected, got core.Vec3) {
	t.Helper()
	assert.InDelta(t, 0, expected.Subtract(got).Length(), 1e-6, "expected %v, got %v", expected, got)
}

func assertOrthonormal(t *testing.T, b Basis) {
	t.Helper()
	for name, v := range map[string]core.Vec3{"u": b.U, "v": b.V, "w": b.W} {
		assert.InDelta(t, 1.0, v.Length(), 1e-6, "%s is not unit", name)
	}
	assert.InDelta(t, 0, b.U.Dot(b.V), 1e-6)
	assert.InDelta(t, 0, b.U.Dot(b.W), 1e-6)
	assert.InDelta(t, 0, b.V.Dot(b.W), 1e-6)
}

func TestNewBasis(t *testing.T) {
	tests := []struct {
		name   string
		camera scene.Camera
		u, v   core.Vec3
		w      core.Vec3
	}{
		{
			name: "looking down -z",
			camera: scene.Camera{
				LookFrom: core.NewPoint(0, 0, 0),
				LookAt:   core.NewPoint(0, 0, -1),
				Up:       core.NewVec3(0, 1, 0),
				FOV:      45,
			},
			u: core.NewVec3(1, 0, 0),
			v: core.NewVec3(0, 1, 0),
			w: core.NewVec3(0, 0, 1),
		},
		{
			name: "non-unit up is normalized away",
			camera: scene.Camera{
				LookFrom: core.NewPoint(0, 0, 5),
				LookAt:   core.NewPoint(0, 0, 0),
				Up:       core.NewVec3(0, 3, 0),
				FOV:      45,
			},
			u: core.NewVec3(1, 0, 0),
			v: core.NewVec3(0, 1, 0),
			w: core.NewVec3(0, 0, 1),
		},
		{
			name: "up parallel to view direction",
			camera: scene.Camera{
				LookFrom: core.NewPoint(0, 0, 0),
				LookAt:   core.NewPoint(0, -1, 0),
				Up:       core.NewVec3(0, 1, 0),
				FOV:      45,
			},
			u: core.NewVec3(0, 0, 1),
			v: core.NewVec3(1, 0, 0),
			w: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBasis(tt.camera)
			assertOrthonormal(t, b)
			assertVecNear(t, tt.u, b.U)
			assertVecNear(t, tt.v, b.V)
			assertVecNear(t, tt.w, b.W)
		})
	}
}

func TestCameraGetRay(t *testing.T) {
	cam := scene.Camera{
		LookFrom: core.NewPoint(1, 2, 3),
		LookAt:   core.NewPoint(1, 2, 2),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      90,
	}

	t.Run("center of a single pixel looks straight ahead", func(t *testing.T) {
		ray := NewCamera(cam, 1, 1).GetRay(0, 0)
		assert.Equal(t, cam.LookFrom, ray.Origin)
		assertVecNear(t, core.NewVec3(0, 0, -1), ray.Direction)
	})

	t.Run("row zero is the bottom of the view", func(t *testing.T) {
		camera := NewCamera(cam, 1, 2)
		bottom := camera.GetRay(0, 0)
		top := camera.GetRay(0, 1)
		assert.Less(t, bottom.Direction.Y, 0.0)
		assert.Greater(t, top.Direction.Y, 0.0)
	})

	t.Run("pixel centers span the field of view", func(t *testing.T) {
		// fov 90 gives halfHeight 1; with 2x2 pixels the centers sit at +-0.5
		ray := NewCamera(cam, 2, 2).GetRay(1, 1)
		assertVecNear(t, core.NewVec3(0.5, 0.5, -1).Normalize(), ray.Direction)
		assert.InDelta(t, 1.0, ray.Direction.Length(), tolerance)
	})

	t.Run("aspect ratio widens the view", func(t *testing.T) {
		ray := NewCamera(cam, 4, 2).GetRay(3, 1)
		// halfWidth = 2, a = 2 * (2*3.5/4 - 1) = 1.5, b = 1 * (2*1.5/2 - 1) = 0.5
		assertVecNear(t, core.NewVec3(1.5, 0.5, -1).Normalize(), ray.Direction)
	})
}
