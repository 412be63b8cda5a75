package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Width:    200,
		Height:   100,
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      90,
	})

	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec3
	}{
		// Pixel coordinate 99.5 maps to the exact center of a 200 pixel row
		{"Center", 99.5, 49.5, core.NewVec3(0, 0, -1)},
		// The scene format is left handed: right is -(look x up)
		{"First column", -0.5, 49.5, core.NewVec3(1, 0, -1).Normalize()},
		{"Last column", 199.5, 49.5, core.NewVec3(-1, 0, -1).Normalize()},
		{"Top edge", 99.5, -0.5, core.NewVec3(0, 0.5, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.x, tt.y)
			if ray.Origin != core.NewVec3(0, 0, 5) {
				t.Errorf("Expected origin at camera, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-12 {
				t.Errorf("Direction not normalized: %v", ray.Direction)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{
		Width:    400,
		Height:   300,
		Position: core.NewVec3(0, 0, 5),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
	}

	merged := MergeCameraConfig(base, CameraConfig{Width: 64, Height: 48})
	if merged.Width != 64 || merged.Height != 48 {
		t.Errorf("Expected size override 64x48, got %dx%d", merged.Width, merged.Height)
	}
	if merged.Position != base.Position || merged.FOV != base.FOV || merged.Up != base.Up {
		t.Errorf("Fields without an override should keep their base value, got %+v", merged)
	}
}
