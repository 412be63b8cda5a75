package material

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// MockSurface for testing
type MockSurface struct {
	material core.Material
	uv       core.Vec2
}

func (m *MockSurface) ID() int { return 1 }

func (m *MockSurface) Material() *core.Material { return &m.material }

func (m *MockSurface) TextureCoordinate(point, normal core.Vec3, w, h int) core.Vec2 {
	return m.uv
}

func phongMaterial() core.Material {
	mat := core.NewMaterial()
	mat.Diffuse = 0.8
	mat.Specular = 0.2
	mat.SpecularExponent = 10
	mat.DiffuseColor = core.NewVec3(1, 0, 0)
	mat.SpecularColor = core.NewVec3(1, 1, 1)
	return mat
}

func TestShade_MissingMaterialUsesNormal(t *testing.T) {
	hit := core.Hit{T: 1, Normal: core.NewVec3(0, 1, 0), Surface: &MockSurface{}}
	got := Shade(hit, []lights.Light{lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1))}, core.NewVec3(0, -1, 0))
	expected := core.NewVec3(0.5, 1, 0.5)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestShade_Diffuse(t *testing.T) {
	surface := &MockSurface{material: phongMaterial()}
	hit := core.Hit{T: 1, Point: core.Vec3{}, Normal: core.NewVec3(0, 0, 1), Surface: surface}

	tests := []struct {
		name     string
		light    core.Vec3
		view     core.Vec3
		expected float64 // red channel
	}{
		// light straight above: diffuse 1 + 0.1 ambient, reflected light points into the surface
		{"Light overhead", core.NewVec3(0, 0, 5), core.NewVec3(1, 0, 0), math.Min(1, 0.8*1.1)},
		// light below the surface: only the ambient term survives
		{"Light behind", core.NewVec3(0, 0, -5), core.NewVec3(1, 0, 0), 0.8 * 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := lights.NewPointLight(tt.light, core.NewVec3(1, 1, 1))
			got := Shade(hit, []lights.Light{light}, tt.view)
			if math.Abs(got.X-tt.expected) > 1e-9 {
				t.Errorf("Expected red %v, got %v", tt.expected, got.X)
			}
			if got.Y != 0 || got.Z != 0 {
				t.Errorf("Expected no green/blue without highlight, got %v", got)
			}
		})
	}
}

func TestShade_SpecularHighlight(t *testing.T) {
	surface := &MockSurface{material: phongMaterial()}
	hit := core.Hit{T: 1, Normal: core.NewVec3(0, 0, 1), Surface: surface}
	light := lights.NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 1))

	// The light direction reflected about the normal is (0,0,-1)
	got := Shade(hit, []lights.Light{light}, core.NewVec3(0, 0, -1))
	if math.Abs(got.Y-0.2) > 1e-9 || math.Abs(got.Z-0.2) > 1e-9 {
		t.Errorf("Expected full specular 0.2 in green/blue, got %v", got)
	}
}

func TestShade_Texture(t *testing.T) {
	mat := phongMaterial()
	mat.Texture = NewImageTexture(2, 1, []core.Vec3{core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0)})
	mat.Specular = 0
	surface := &MockSurface{material: mat, uv: core.NewVec2(1.7, 0)}
	hit := core.Hit{T: 1, Normal: core.NewVec3(0, 0, 1), Surface: surface}
	light := lights.NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 1))

	got := Shade(hit, []lights.Light{light}, core.NewVec3(1, 0, 0))
	if got.X != 0 || got.Z != 0 || got.Y <= 0 {
		t.Errorf("Expected green from texture pixel (1,0), got %v", got)
	}
}

func TestShade_ClampsToUnitRange(t *testing.T) {
	surface := &MockSurface{material: phongMaterial()}
	hit := core.Hit{T: 1, Normal: core.NewVec3(0, 0, 1), Surface: surface}
	bright := lights.NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(10, 10, 10))

	got := Shade(hit, []lights.Light{bright, bright}, core.NewVec3(0, 0, -1))
	if got.X > 1 || got.Y > 1 || got.Z > 1 {
		t.Errorf("Expected clamped color, got %v", got)
	}
}
