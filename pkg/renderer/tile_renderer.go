package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
)

// TileRenderer renders an interleaved set of rows into a private partial image
type TileRenderer struct {
	camera     *geometry.Camera
	integrator integrator.Integrator
	samples    int
	jitter     bool
	seed       uint64
}

// NewTileRenderer creates a tile renderer. With jitter disabled every
// sample goes through the pixel center.
func NewTileRenderer(camera *geometry.Camera, integratorInst integrator.Integrator, samples int, jitter bool, seed uint64) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		samples:    max(1, samples),
		jitter:     jitter,
		seed:       seed,
	}
}

// PartialHeight returns the number of rows each of threads partial images holds
func PartialHeight(height, threads int) int {
	return (height + threads - 1) / threads
}

// RenderRows renders rows y with y % threads == worker. Row y is stored at
// row y / threads of the returned partial image.
func (tr *TileRenderer) RenderRows(worker, threads int) (*image.RGBA, WorkerStats) {
	config := tr.camera.Config()
	width, height := config.Width, config.Height
	partial := image.NewRGBA(image.Rect(0, 0, width, PartialHeight(height, threads)))

	start := time.Now()
	var stats WorkerStats
	for y := worker; y < height; y += threads {
		sampler := core.NewRowSampler(tr.seed, y)
		for x := 0; x < width; x++ {
			r, g, b := core.Quantize(core.ToneMap(tr.samplePixel(x, y, sampler)))
			partial.SetRGBA(x, y/threads, color.RGBA{R: r, G: g, B: b, A: 255})
		}
		stats.Rows++
	}

	traced := tr.integrator.Stats()
	stats.Duration = time.Since(start)
	stats.PrimaryRays = traced.PrimaryRays
	stats.Rays = traced.Rays
	stats.Checks = traced.Checks
	return partial, stats
}

// samplePixel averages the colors of every sample through pixel (x, y)
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	var sum core.Vec3
	for i := 0; i < tr.samples; i++ {
		var offset core.Vec2
		if tr.jitter {
			offset = core.Jitter(sampler.Get2D())
		}
		ray := tr.camera.GetRay(float64(x)+offset.X, float64(y)+offset.Y)
		sum = sum.Add(tr.integrator.RayColor(ray))
	}
	return sum.Divide(float64(tr.samples))
}

// Composite reassembles partial images into the full image by inverting the
// row interleaving: row y comes from partial y % threads at row y / threads.
func Composite(partials []*image.RGBA, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	threads := len(partials)
	for y := 0; y < height; y++ {
		partial := partials[y%threads]
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, partial.RGBAAt(x, y/threads))
		}
	}
	return img
}
