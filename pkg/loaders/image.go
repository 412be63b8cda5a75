package loaders

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// LoadImage loads a PPM, PNG, JPEG or BMP image and converts it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	logger.Debugf("loaded %dx%d texture from %s", data.Width, data.Height, filename)
	return data, nil
}

// DecodeImage decodes any supported format, sniffing PPM by its magic number
func DecodeImage(r io.Reader) (*ImageData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(raw, []byte("P3")) || bytes.HasPrefix(raw, []byte("P6")) {
		return DecodePPM(bytes.NewReader(raw))
	}

	// image.Decode auto-detects PNG, JPEG and BMP from the file header
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image to normalized colors
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// SaveImage writes img to filename, choosing the encoder from the extension
// (.ppm, .png or .bmp). Parent directories are created as needed.
func SaveImage(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := EncodeImage(file, img, filepath.Ext(filename)); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	bounds := img.Bounds()
	logger.Infof("exported %dx%d image to %s", bounds.Dx(), bounds.Dy(), filename)
	return nil
}

// EncodeImage writes img in the format named by ext
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".ppm", "":
		return EncodePPM(w, img)
	}
	return fmt.Errorf("unsupported image format %q", ext)
}
