package lights

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint LightType = "point"
	// LightTypeArea is lit exactly like a point light for now; it is kept
	// as its own tag so area sampling can be added without a format change.
	LightTypeArea LightType = "area"
)

// Light is a positional light source
type Light struct {
	Type      LightType
	Position  core.Vec3
	Intensity core.Vec3 // per-channel intensity
}

// NewPointLight creates a point light
func NewPointLight(position, intensity core.Vec3) Light {
	return Light{Type: LightTypePoint, Position: position, Intensity: intensity}
}

// NewAreaLight creates an area light
func NewAreaLight(position, intensity core.Vec3) Light {
	return Light{Type: LightTypeArea, Position: position, Intensity: intensity}
}

// ParseLightType maps the document names "pointlight" and "arealight" (or
// the bare tags) to a LightType.
func ParseLightType(name string) (LightType, error) {
	switch name {
	case "pointlight", string(LightTypePoint):
		return LightTypePoint, nil
	case "arealight", string(LightTypeArea):
		return LightTypeArea, nil
	}
	return "", fmt.Errorf("unknown light type %q", name)
}

// DirectionFrom returns the unit direction from point toward the light and the distance to it
func (l Light) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return toLight.Normalize(), distance
}

// EnsureLights substitutes a single zero-intensity point light at the origin
// when the list is empty, so lighting code never special-cases no lights.
func EnsureLights(list []Light) []Light {
	if len(list) > 0 {
		return list
	}
	return []Light{NewPointLight(core.Vec3{}, core.Vec3{})}
}
