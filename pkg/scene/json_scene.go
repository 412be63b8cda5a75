package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewJSONScene loads a scene document and converts it to a Scene
func NewJSONScene(filename string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	doc, err := loaders.LoadSceneDocument(filename)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return FromDocument(name, doc, cameraOverrides...)
}

// FromDocument converts a parsed scene document. Shapes receive ids 1..n in
// document order; shapes without a material keep the zero material and are
// colored by their normal.
func FromDocument(name string, doc *loaders.SceneDocument, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Width:    doc.Camera.Width,
		Height:   doc.Camera.Height,
		Position: vec3(doc.Camera.Position),
		LookAt:   vec3(doc.Camera.LookAt),
		Up:       vec3(doc.Camera.Up),
		FOV:      doc.Camera.FOV * loaders.FOVScale,
		Exposure: doc.Camera.Exposure,
	}, cameraOverrides)

	s := New(name, cameraConfig)
	s.Background = vec3(doc.Scene.Background)
	s.BounceLimit = doc.BounceLimit()
	s.Mode = core.ParseRenderMode(doc.RenderMode)

	textures := make(map[string]core.Texture, len(doc.Textures))
	for path, image := range doc.Textures {
		textures[path] = material.NewImageTexture(image.Width, image.Height, image.Pixels)
	}

	for i, shape := range doc.Scene.Shapes {
		m := convertMaterial(shape.Material, textures)
		switch shape.Type {
		case "sphere":
			s.AddSphere(vec3(shape.Center), shape.Radius, m)
		case "cylinder":
			// The document height is measured from the center to each cap
			s.AddCylinder(vec3(shape.Center), vec3(shape.Axis), shape.Radius, shape.Height, m)
		case "triangle":
			s.AddTriangle(vec3(shape.V0), vec3(shape.V1), vec3(shape.V2), m)
		default:
			return nil, fmt.Errorf("%w: shape %d has unknown type %q", loaders.ErrMalformedScene, i, shape.Type)
		}
		logger.Debugf("loaded %s #%d", shape.Type, len(s.Shapes))
	}

	for i, light := range doc.Scene.Lights {
		lightType, err := lights.ParseLightType(light.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: light %d: %v", loaders.ErrMalformedScene, i, err)
		}
		s.Lights = append(s.Lights, lights.Light{
			Type:      lightType,
			Position:  vec3(light.Position),
			Intensity: vec3(light.Intensity),
		})
		logger.Debugf("loaded %s light at %v", lightType, vec3(light.Position))
	}

	return s, nil
}

func convertMaterial(doc *loaders.MaterialDocument, textures map[string]core.Texture) core.Material {
	if doc == nil {
		return core.Material{}
	}

	m := core.NewMaterial()
	m.Specular = doc.Ks
	m.Diffuse = doc.Kd
	m.SpecularExponent = doc.SpecularExponent
	m.DiffuseColor = vec3(doc.DiffuseColor)
	m.SpecularColor = vec3(doc.SpecularColor)
	m.Reflective = doc.IsReflective
	m.Reflectivity = doc.Reflectivity
	m.Refractive = doc.IsRefractive
	m.RefractiveIndex = doc.RefractiveIndex
	if doc.HasTexture() {
		m.Texture = textures[doc.DiffuseTexture]
	}
	return m
}

func vec3(v loaders.Vec3Doc) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Load resolves a scene argument: a built-in scene id, or the path of a JSON
// scene document.
func Load(nameOrPath string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if s, ok := Builtin(nameOrPath, cameraOverrides...); ok {
		return s, nil
	}
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return NewJSONScene(nameOrPath, cameraOverrides...)
	}
	return nil, fmt.Errorf("unknown scene %q (built-in scenes: %s)", nameOrPath, strings.Join(BuiltinIDs(), ", "))
}
