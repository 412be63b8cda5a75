package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	width  int
	height int
	pixels []core.Vec3 // Row-major: pixels[y*width + x]
}

// NewImageTexture creates a new image texture. pixels must hold width*height colors.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		width:  width,
		height: height,
		pixels: pixels,
	}
}

// Width returns the texture width in pixels
func (t *ImageTexture) Width() int { return t.width }

// Height returns the texture height in pixels
func (t *ImageTexture) Height() int { return t.height }

// At returns the pixel at (x, y), clamping coordinates to the image bounds
func (t *ImageTexture) At(x, y int) core.Vec3 {
	if t.width == 0 || t.height == 0 {
		return core.Vec3{}
	}
	x = max(0, min(x, t.width-1))
	y = max(0, min(y, t.height-1))
	return t.pixels[y*t.width+x]
}

// Set stores a pixel; out of range coordinates are ignored
func (t *ImageTexture) Set(x, y int, c core.Vec3) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.pixels[y*t.width+x] = c
}
