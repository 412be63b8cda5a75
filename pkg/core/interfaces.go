package core

// Surface is the shading-facing view of a primitive
type Surface interface {
	ID() int
	Material() *Material

	// TextureCoordinate maps a point on the surface to pixel coordinates in a
	// width x height texture. Results may fall outside the image; textures clamp.
	TextureCoordinate(point, normal Vec3, width, height int) Vec2
}

// Texture is a rectangular pixel buffer with colors in [0, 1]
type Texture interface {
	Width() int
	Height() int
	// At returns the color at (x, y), clamping out of range coordinates to the nearest edge pixel
	At(x, y int) Vec3
}
