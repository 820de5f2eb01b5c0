package renderer

import (
	"math"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

// degenerateUpEpsilon is the length below which up × w counts as parallel
const degenerateUpEpsilon = 1e-6

// upPerturbation is added to the up vector when it is parallel to the view direction
var upPerturbation = core.NewVec3(1e-4, 0, 0)

// Basis is the orthonormal camera frame. W points from the target back toward the eye,
// U is right and V is up.
type Basis struct {
	U, V, W core.Vec3
}

// NewBasis derives the camera frame from the scene camera
func NewBasis(cam scene.Camera) Basis {
	w := cam.LookFrom.Subtract(cam.LookAt).Normalize()

	uRaw := cam.Up.Cross(w)
	if uRaw.Length() < degenerateUpEpsilon {
		uRaw = cam.Up.Add(upPerturbation).Cross(w)
	}
	u := uRaw.Normalize()
	v := w.Cross(u).Normalize()

	return Basis{U: u, V: v, W: w}
}

// Camera generates primary rays for an image of a fixed size
type Camera struct {
	origin     core.Point
	basis      Basis
	halfWidth  float64
	halfHeight float64
	width      int
	height     int
}

// NewCamera creates a camera for a width x height image
func NewCamera(cam scene.Camera, width, height int) *Camera {
	fovRadians := cam.FOV * math.Pi / 180.0
	halfHeight := math.Tan(fovRadians / 2)
	halfWidth := halfHeight * float64(width) / float64(height)

	return &Camera{
		origin:     cam.LookFrom,
		basis:      NewBasis(cam),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		width:      width,
		height:     height,
	}
}

// GetRay generates the ray through the center of pixel (col, row). Row 0 is the bottom of the view.
func (c *Camera) GetRay(col, row int) core.Ray {
	a := c.halfWidth * (2*(float64(col)+0.5)/float64(c.width) - 1)
	b := c.halfHeight * (2*(float64(row)+0.5)/float64(c.height) - 1)

	direction := c.basis.U.Multiply(a).
		Add(c.basis.V.Multiply(b)).
		Subtract(c.basis.W)

	return core.NewRay(c.origin, direction)
}
