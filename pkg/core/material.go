package core

// Material holds the Phong coefficients and bounce behavior of a surface.
// The zero value is the "does not exist" material: surfaces carrying it are
// colored by their normal instead of being shaded.
type Material struct {
	Specular         float64 // ks
	Diffuse          float64 // kd
	SpecularExponent float64
	DiffuseColor     Vec3
	SpecularColor    Vec3
	Texture          Texture

	Reflective      bool
	Reflectivity    float64
	Refractive      bool
	RefractiveIndex float64

	exists bool
}

// NewMaterial returns a material that exists, ready to be filled in
func NewMaterial() Material {
	return Material{exists: true}
}

// Exists reports whether m was defined for its surface
func (m *Material) Exists() bool {
	return m != nil && m.exists
}

// HasTexture reports whether m samples its diffuse color from a texture
func (m *Material) HasTexture() bool {
	return m.Exists() && m.Texture != nil && m.Texture.Width() > 0 && m.Texture.Height() > 0
}
