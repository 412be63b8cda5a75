package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewPhong creates an opaque Phong material with a white specular highlight
func NewPhong(diffuseColor core.Vec3, kd, ks, exponent float64) core.Material {
	m := core.NewMaterial()
	m.DiffuseColor = diffuseColor
	m.SpecularColor = core.NewVec3(1, 1, 1)
	m.Diffuse = kd
	m.Specular = ks
	m.SpecularExponent = exponent
	return m
}

// NewMirror creates a reflective material. reflectivity weights the bounce
// against the local color of tint.
func NewMirror(tint core.Vec3, reflectivity float64) core.Material {
	m := NewPhong(tint, 0.2, 0.8, 64)
	m.Reflective = true
	m.Reflectivity = reflectivity
	return m
}

// NewGlass creates a refractive material with the given index of refraction
func NewGlass(refractiveIndex float64) core.Material {
	m := NewPhong(core.NewVec3(1, 1, 1), 0.1, 0.9, 128)
	m.Refractive = true
	m.RefractiveIndex = refractiveIndex
	return m
}

// NewTextured creates a diffuse material that samples its color from texture
func NewTextured(texture core.Texture, kd, ks, exponent float64) core.Material {
	m := NewPhong(core.Vec3{}, kd, ks, exponent)
	m.Texture = texture
	return m
}

// NewCheckerTexture creates a width x height texture of square cells
// alternating between colors a and b, starting with a in the top-left cell.
func NewCheckerTexture(width, height, cell int, a, b core.Vec3) *ImageTexture {
	cell = max(1, cell)
	texture := NewImageTexture(width, height, make([]core.Vec3, width*height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				texture.Set(x, y, a)
			} else {
				texture.Set(x, y, b)
			}
		}
	}
	return texture
}
