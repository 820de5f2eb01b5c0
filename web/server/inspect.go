package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/AmineEl59/ProjetRayTracer/pkg/core"
	"github.com/AmineEl59/ProjetRayTracer/pkg/geometry"
	"github.com/AmineEl59/ProjetRayTracer/pkg/renderer"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool           `json:"hit"`
	GeometryType string         `json:"geometryType,omitempty"`
	Point        [3]float64     `json:"point"`
	Normal       [3]float64     `json:"normal"`
	Distance     float64        `json:"distance"`
	Properties   map[string]any `json:"properties,omitempty"`
}

// inspectPixel casts the primary ray of image pixel (x, y), y growing downward,
// and returns the nearest hit
func inspectPixel(sceneObj *scene.Scene, x, y int) (geometry.Intersection, bool) {
	rt := renderer.NewRaytracer(sceneObj)
	ray := rt.Camera().GetRay(x, sceneObj.Height-1-y)
	return geometry.Nearest(sceneObj.Shapes, ray, renderer.HitEpsilon)
}

// materialInfo describes a material for display
func materialInfo(mat geometry.Material) map[string]any {
	return map[string]any{
		"diffuse":   colorArray(mat.Diffuse),
		"specular":  colorArray(mat.Specular),
		"shininess": mat.Shininess,
		"color":     hexColor(mat.Diffuse),
	}
}

// geometryInfo extracts detailed geometry information
func geometryInfo(shape geometry.Shape) map[string]any {
	properties := make(map[string]any)

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = pointArray(geom.Center)
		properties["radius"] = geom.Radius

	case *geometry.Plane:
		properties["point"] = pointArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{pointArray(geom.V0), pointArray(geom.V1), pointArray(geom.V2)}
	}

	return properties
}

// handleInspect reports what the primary ray through a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.loadScene(r.URL.Query().Get("scene"))
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	hit, ok := inspectPixel(sceneObj, pixelX, pixelY)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: string(geometry.KindOf(hit.Shape)),
		Point:        pointArray(hit.Point),
		Normal:       vecArray(hit.Normal()),
		Distance:     hit.T,
		Properties: map[string]any{
			"material": materialInfo(hit.Shape.Material()),
			"geometry": geometryInfo(hit.Shape),
		},
	})
}

func pointArray(p core.Point) [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func vecArray(v core.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func colorArray(c core.Color) [3]float64 { return [3]float64{c.R, c.G, c.B} }

func hexColor(c core.Color) string {
	rgb := c.ToRGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}
