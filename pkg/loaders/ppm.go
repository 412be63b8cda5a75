package loaders

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DecodePPM reads an ASCII (P3) or binary (P6) PPM image. Channel values
// are normalized by the declared maximum value.
func DecodePPM(r io.Reader) (*ImageData, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}
	if magic != "P3" && magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrUnsupportedPPM, magic)
	}

	var header [3]int
	for i := range header {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read PPM header: %w", err)
		}
		header[i], err = strconv.Atoi(tok)
		if err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("%w: bad header value %q", ErrUnsupportedPPM, tok)
		}
	}
	width, height, maxVal := header[0], header[1], header[2]
	if maxVal > 255 && magic == "P6" {
		return nil, fmt.Errorf("%w: 16 bit P6 images are not supported", ErrUnsupportedPPM)
	}

	pixels := make([]core.Vec3, width*height)
	scale := 1.0 / float64(maxVal)

	if magic == "P6" {
		// Exactly one whitespace byte separates the header from the raster
		raster := make([]byte, 3*width*height)
		if _, err := io.ReadFull(br, raster); err != nil {
			return nil, fmt.Errorf("failed to read PPM pixels: %w", err)
		}
		for i := range pixels {
			pixels[i] = core.NewVec3(
				float64(raster[3*i])*scale,
				float64(raster[3*i+1])*scale,
				float64(raster[3*i+2])*scale,
			)
		}
	} else {
		for i := range pixels {
			var rgb [3]float64
			for c := range rgb {
				tok, err := ppmToken(br)
				if err != nil {
					return nil, fmt.Errorf("failed to read PPM pixel %d: %w", i, err)
				}
				v, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("%w: bad pixel value %q", ErrUnsupportedPPM, tok)
				}
				rgb[c] = float64(v) * scale
			}
			pixels[i] = core.NewVec3(rgb[0], rgb[1], rgb[2])
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// ppmToken returns the next whitespace separated token, skipping # comments.
// The single whitespace byte ending the token is consumed.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

// EncodePPM writes img as an ASCII (P3) PPM, one image row per line
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d ", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
