package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
)

const fullDocument = `{
  "nbounces": 5,
  "rendermode": "phong",
  "camera": {"type": "pinhole", "width": 40, "height": 20, "position": [0, 0, 5],
             "lookAt": [0, 0, 0], "upVector": [0, 1, 0], "fov": 40, "exposure": 0.1},
  "scene": {
    "backgroundcolor": [0.1, 0.2, 0.3],
    "lightsources": [
      {"type": "pointlight", "position": [0, 5, 0], "intensity": [0.5, 0.5, 0.5]},
      {"type": "arealight", "position": [5, 5, 0], "intensity": [0.2, 0.2, 0.2]}
    ],
    "shapes": [
      {"type": "sphere", "center": [0, 0, 0], "radius": 1,
       "material": {"ks": 0.2, "kd": 0.8, "specularexponent": 10, "diffusecolor": [1, 0, 0],
                    "specularcolor": [1, 1, 1], "isreflective": true, "reflectivity": 0.3,
                    "isrefractive": false, "refractiveindex": 1, "diffusetexture": "stripe.ppm"}},
      {"type": "cylinder", "center": [3, 0, 0], "axis": [0, 1, 0], "radius": 0.5, "height": 2},
      {"type": "triangle", "v0": [0, 0, -2], "v1": [1, 0, -2], "v2": [0, 1, -2],
       "material": {"kd": 1, "diffusecolor": [0, 1, 0], "diffusetexture": "null"}}
    ]
  }
}`

func TestNewJSONScene(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "full.json", fullDocument)
	if err := os.WriteFile(filepath.Join(dir, "stripe.ppm"), []byte("P3\n2 1\n255\n255 0 0 0 0 255\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewJSONScene(path)
	if err != nil {
		t.Fatalf("NewJSONScene failed: %v", err)
	}

	if s.Name != "full" {
		t.Errorf("Expected scene name %q, got %q", "full", s.Name)
	}
	if s.BounceLimit != 5 || s.Mode != core.ModePhong {
		t.Errorf("Unexpected bounce limit %d or mode %v", s.BounceLimit, s.Mode)
	}
	if math.Abs(s.CameraConfig.FOV-40*loaders.FOVScale) > 1e-12 {
		t.Errorf("Expected scaled FOV %v, got %v", 40*loaders.FOVScale, s.CameraConfig.FOV)
	}
	if s.Background != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Unexpected background %v", s.Background)
	}

	if len(s.Lights) != 2 || s.Lights[1].Type != lights.LightTypeArea {
		t.Errorf("Unexpected lights %+v", s.Lights)
	}

	if len(s.Shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(s.Shapes))
	}
	for i, shape := range s.Shapes {
		if shape.ID() != i+1 {
			t.Errorf("Shape %d has id %d", i, shape.ID())
		}
	}

	sphere := s.Shapes[0].Material()
	if !sphere.Exists() || !sphere.Reflective || sphere.Reflectivity != 0.3 {
		t.Errorf("Sphere material not converted: %+v", sphere)
	}
	if !sphere.HasTexture() || sphere.Texture.Width() != 2 {
		t.Error("Sphere texture should be attached")
	}

	cylinder, ok := s.Shapes[1].(*geometry.Cylinder)
	if !ok {
		t.Fatalf("Expected a cylinder, got %T", s.Shapes[1])
	}
	if cylinder.HalfHeight != 2 {
		t.Errorf("Document height is the half height, got %v", cylinder.HalfHeight)
	}
	if cylinder.Material().Exists() {
		t.Error("Shape without a material should keep the zero material")
	}

	if s.Shapes[2].Material().HasTexture() {
		t.Error("A \"null\" texture should leave the material untextured")
	}

	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
}

func TestFromDocument_BinaryMode(t *testing.T) {
	doc, err := loaders.ParseSceneDocument([]byte(minimalDocument))
	if err != nil {
		t.Fatal(err)
	}
	s, err := FromDocument("minimal", doc, geometry.CameraConfig{Width: 8})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != core.ModeBinary {
		t.Errorf("Expected binary mode, got %v", s.Mode)
	}
	if s.BounceLimit != loaders.DefaultBounces {
		t.Errorf("Expected default bounce limit, got %d", s.BounceLimit)
	}
	if s.CameraConfig.Width != 8 || s.CameraConfig.Height != 16 {
		t.Errorf("Expected camera override width only, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
	}
}

func TestFromDocument_UnknownLight(t *testing.T) {
	doc := &loaders.SceneDocument{}
	doc.Camera.Width, doc.Camera.Height = 1, 1
	doc.Scene.Lights = []loaders.LightDocument{{Type: "spotlight"}}

	if _, err := FromDocument("bad", doc); !errors.Is(err, loaders.ErrMalformedScene) {
		t.Errorf("Expected ErrMalformedScene, got %v", err)
	}
}

func TestLoad_JSONPath(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "minimal.json", minimalDocument)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "minimal" || len(s.Shapes) != 1 {
		t.Errorf("Unexpected scene %q with %d shapes", s.Name, len(s.Shapes))
	}
}
