package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// IntegratorFactory creates the integrator used by one worker. Boundary
// hits found by the worker are recorded in reshapes; bounceLimit is the
// effective recursion depth of the render.
type IntegratorFactory func(s *scene.Scene, reshapes *geometry.ReshapeLog, bounceLimit int) integrator.Integrator

// NewPhongIntegrator is the default IntegratorFactory
func NewPhongIntegrator(s *scene.Scene, reshapes *geometry.ReshapeLog, bounceLimit int) integrator.Integrator {
	return integrator.NewTracer(s, reshapes, bounceLimit)
}

// Raytracer renders a scene with a fork/join pool of row-interleaved workers
type Raytracer struct {
	scene         *scene.Scene
	options       Options
	newIntegrator IntegratorFactory
}

// NewRaytracer creates a raytracer for s
func NewRaytracer(s *scene.Scene, options Options) *Raytracer {
	return &Raytracer{
		scene:         s,
		options:       options,
		newIntegrator: NewPhongIntegrator,
	}
}

// SetIntegratorFactory replaces the integrator used by the workers
func (rt *Raytracer) SetIntegratorFactory(factory IntegratorFactory) {
	rt.newIntegrator = factory
}

// Render traces the whole image. The scene is preprocessed first if needed.
// Boundary reshapes found by the workers are applied to the BVH after they
// have all finished.
func (rt *Raytracer) Render() (*image.RGBA, *RenderStats, error) {
	s := rt.scene
	if s == nil {
		return nil, nil, ErrSceneNotDefined
	}
	threads, err := rt.options.threads()
	if err != nil {
		return nil, nil, err
	}
	width, height := s.CameraConfig.Width, s.CameraConfig.Height
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	if s.Camera == nil || s.BVH == nil {
		if err := s.Preprocess(); err != nil {
			return nil, nil, fmt.Errorf("failed to prepare scene %s: %w", s.Name, err)
		}
	}

	samples, jitter := rt.sampling()
	bounceLimit := s.BounceLimit
	if rt.options.BounceLimit > 0 {
		bounceLimit = rt.options.BounceLimit
	}
	logger.Noticef("rendering %s (%dx%d, %d samples, %d threads, %d bounces, %s mode)",
		s.Name, width, height, samples, threads, bounceLimit, s.Mode)

	start := time.Now()
	logs := make([]*geometry.ReshapeLog, threads)
	renderers := make([]*TileRenderer, threads)
	for i := range renderers {
		logs[i] = geometry.NewReshapeLog()
		renderers[i] = NewTileRenderer(s.Camera, rt.newIntegrator(s, logs[i], bounceLimit), samples, jitter, rt.options.Seed)
	}

	results := NewWorkerPool(renderers).Run()

	partials := make([]*image.RGBA, threads)
	stats := &RenderStats{
		Scene:   s.Name,
		Width:   width,
		Height:  height,
		Samples: samples,
		Threads: threads,
		Objects: s.GetPrimitiveCount(),
		Workers: make([]WorkerStats, threads),
	}
	for i, result := range results {
		partials[i] = result.Partial
		stats.Workers[i] = result.Stats
	}
	img := Composite(partials, width, height)

	stats.Reshaped = s.BVH.ApplyReshapes(logs...)
	stats.Elapsed = time.Since(start)
	logger.Noticef("rendered %s in %v", s.Name, stats.Elapsed)
	return img, stats, nil
}

// sampling returns the per-pixel sample count and whether samples are jittered
func (rt *Raytracer) sampling() (int, bool) {
	if rt.scene.Mode == core.ModeBinary || rt.options.SamplesPerPixel <= 0 {
		return 1, false
	}
	return rt.options.SamplesPerPixel, true
}
