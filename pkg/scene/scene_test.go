package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func testCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Width:    16,
		Height:   8,
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
	}
}

func TestScene_AssignsIDsInOrder(t *testing.T) {
	s := New("ids", testCamera())
	m := material.NewPhong(core.NewVec3(1, 1, 1), 1, 0, 1)

	s.AddSphere(core.Vec3{}, 1, m)
	s.AddCylinder(core.Vec3{}, core.NewVec3(0, 1, 0), 1, 1, m)
	s.AddQuad(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), m)

	if s.GetPrimitiveCount() != 4 {
		t.Fatalf("Expected 4 primitives, got %d", s.GetPrimitiveCount())
	}
	for i, shape := range s.Shapes {
		if shape.ID() != i+1 {
			t.Errorf("Shape %d has id %d", i, shape.ID())
		}
	}
}

func TestScene_AddQuadFacesAlongUCrossV(t *testing.T) {
	s := New("quad", testCamera())
	s.AddQuad(core.NewVec3(-1, 0, -1), core.NewVec3(0, 0, 2), core.NewVec3(2, 0, 0), core.Material{})

	ray := core.NewRay(core.NewVec3(0.2, 1, 0.3), core.NewVec3(0, -1, 0))
	for _, shape := range s.Shapes {
		hit := shape.Intersect(ray, 0)
		if hit.IsHit() && hit.Normal.Y <= 0 {
			t.Errorf("Expected an upward normal, got %v", hit.Normal)
		}
	}
}

func TestScene_Preprocess(t *testing.T) {
	s := New("preprocess", testCamera())
	s.AddSphere(core.Vec3{}, 1, core.Material{})

	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if s.Camera == nil || s.BVH == nil {
		t.Fatal("Preprocess should build the camera and the BVH")
	}
	if len(s.Lights) != 1 || s.Lights[0].Intensity != (core.Vec3{}) || s.Lights[0].Type != lights.LightTypePoint {
		t.Errorf("Expected a single zero-intensity point light, got %+v", s.Lights)
	}
	if len(s.BVH.Shapes()) != 1 {
		t.Errorf("BVH should hold the scene shape")
	}
}

func TestScene_PreprocessRejectsInvalidCamera(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*geometry.CameraConfig)
	}{
		{"Zero width", func(c *geometry.CameraConfig) { c.Width = 0 }},
		{"Negative height", func(c *geometry.CameraConfig) { c.Height = -1 }},
		{"Looking at itself", func(c *geometry.CameraConfig) { c.LookAt = c.Position }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCamera()
			tt.modify(&config)
			err := New("invalid", config).Preprocess()
			if !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestBuiltinScenes(t *testing.T) {
	override := geometry.CameraConfig{Width: 32, Height: 18}

	for _, id := range BuiltinIDs() {
		t.Run(id, func(t *testing.T) {
			s, ok := Builtin(id, override)
			if !ok {
				t.Fatalf("Builtin(%q) not found", id)
			}
			if s.CameraConfig.Width != 32 || s.CameraConfig.Height != 18 {
				t.Errorf("Camera override not applied: %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
			}
			if err := s.Preprocess(); err != nil {
				t.Fatalf("Preprocess failed: %v", err)
			}
			if len(s.Shapes) == 0 || len(s.Lights) == 0 {
				t.Error("Built-in scene should have shapes and lights")
			}
		})
	}

	if _, ok := Builtin("missing"); ok {
		t.Error("Unknown scene id should not resolve")
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("no-such-scene"); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

func TestScene_PreprocessRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *Scene)
	}{
		{"Negative radius", func(s *Scene) {
			s.AddSphere(core.Vec3{}, -1, material.NewPhong(core.NewVec3(1, 0, 0), 0.8, 0.2, 16))
		}},
		{"NaN vertex", func(s *Scene) {
			s.AddTriangle(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.Material{})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("invalid", testCamera())
			s.AddSphere(core.NewVec3(0, 0, -2), 1, core.Material{})
			tt.build(s)
			if err := s.Preprocess(); !errors.Is(err, ErrInvalidShape) {
				t.Errorf("Expected ErrInvalidShape, got %v", err)
			}
		})
	}
}
