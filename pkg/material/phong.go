package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// ambientTerm is spread across the lights and added to every diffuse factor
const ambientTerm = 0.1

// Shade computes the local Phong color of a surface hit, clamped to [0, 1].
// view is the direction used for the specular highlight. Surfaces without a
// material are colored by their normal.
func Shade(hit core.Hit, lightList []lights.Light, view core.Vec3) core.Vec3 {
	var m *core.Material
	if hit.Surface != nil {
		m = hit.Surface.Material()
	}
	if !m.Exists() {
		return NormalColor(hit.Normal)
	}

	diffuseColor := m.DiffuseColor
	if m.HasTexture() {
		uv := hit.Surface.TextureCoordinate(hit.Point, hit.Normal, m.Texture.Width(), m.Texture.Height())
		diffuseColor = m.Texture.At(int(uv.X), int(uv.Y))
	}

	ambient := ambientTerm / float64(max(1, len(lightList)))
	var intensity core.Vec3
	for _, light := range lightList {
		lightDir, _ := light.DirectionFrom(hit.Point)
		reflected := lightDir.Reflect(hit.Normal)

		diffuse := math.Max(0, hit.Normal.Dot(lightDir)) + ambient
		specular := math.Pow(math.Max(0, reflected.Dot(view)), m.SpecularExponent)

		intensity = intensity.
			Add(light.Intensity.MultiplyVec(diffuseColor).Multiply(m.Diffuse * diffuse)).
			Add(light.Intensity.MultiplyVec(m.SpecularColor).Multiply(m.Specular * specular))
	}

	return intensity.Clamp(0, 1)
}

// NormalColor maps a unit normal to a debug color in [0, 1]
func NormalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
