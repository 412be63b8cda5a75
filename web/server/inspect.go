package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShapeID      int                    `json:"shapeId"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Checks       int                    `json:"checks"`
	Color        string                 `json:"color"` // Traced pixel center color
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo describes the material of a shape
func extractMaterialInfo(m *core.Material) map[string]interface{} {
	properties := make(map[string]interface{})
	if !m.Exists() {
		properties["type"] = "none"
		return properties
	}

	properties["type"] = "phong"
	properties["diffuse"] = m.Diffuse
	properties["specular"] = m.Specular
	properties["specularExponent"] = m.SpecularExponent
	properties["diffuseColor"] = hexColor(m.DiffuseColor)
	properties["textured"] = m.HasTexture()
	if m.Reflective {
		properties["reflectivity"] = m.Reflectivity
	}
	if m.Refractive {
		properties["refractiveIndex"] = m.RefractiveIndex
	}
	return properties
}

func hexColor(c core.Vec3) string {
	r, g, b := core.Quantize(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// inspectPixel casts a ray through the center of pixel (x, y) and describes
// the first surface it meets
func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	ray := sceneObj.Camera.GetRay(float64(x), float64(y))
	hit := sceneObj.BVH.Intersect(ray, 0, nil)

	tracer := integrator.NewTracer(sceneObj, nil, 0)
	response := InspectResponse{
		Hit:     hit.IsHit(),
		ShapeID: hit.ShapeID,
		Checks:  hit.Checks,
		Color:   hexColor(core.ToneMap(tracer.RayColor(ray))),
	}
	if !response.Hit {
		return response
	}

	response.Point = [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
	response.Normal = [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
	response.Distance = hit.T
	if shape, ok := hit.Surface.(geometry.Shape); ok {
		response.GeometryType = string(shape.Kind())
	}
	response.Properties = extractMaterialInfo(hit.Surface.Material())
	return response
}

// handleInspect reports the surface seen through one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "default"
	}

	width, err := parseIntParam(query, "width", 0, 1, 2000)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 0, 1, 2000)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(name, width, height)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sceneObj.Preprocess(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.CameraConfig
	x, err := parseIntParam(query, "x", config.Width/2, 0, config.Width-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", config.Height/2, 0, config.Height-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y))
}
