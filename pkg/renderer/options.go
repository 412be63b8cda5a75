package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

// MaxThreads bounds the number of render workers
const MaxThreads = 64

var (
	// ErrInvalidThreadCount is returned when fewer than one worker is requested
	ErrInvalidThreadCount = errors.New("thread count must be at least 1")
	// ErrInvalidDimensions is returned for an image without pixels
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
	// ErrSceneNotDefined is returned when rendering without a scene
	ErrSceneNotDefined = errors.New("scene not defined")
)

// Options controls a render invocation
type Options struct {
	// SamplesPerPixel is the number of jittered rays per pixel. Values <= 0
	// disable antialiasing and trace one ray through each pixel center.
	SamplesPerPixel int

	// Threads is the number of workers; rows are interleaved between them
	Threads int

	// BounceLimit overrides the scene's bounce limit when positive
	BounceLimit int

	// Seed selects the jitter sequence. Each row derives its own generator
	// from it, so images do not depend on the thread count.
	Seed uint64
}

// DefaultOptions returns one worker per CPU and four samples per pixel
func DefaultOptions() Options {
	return Options{
		SamplesPerPixel: 4,
		Threads:         min(runtime.NumCPU(), MaxThreads),
		Seed:            42,
	}
}

// threads validates the requested worker count and bounds it by MaxThreads
func (o Options) threads() (int, error) {
	if o.Threads < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidThreadCount, o.Threads)
	}
	if o.Threads > MaxThreads {
		logger.Warningf("requested %d threads, using %d", o.Threads, MaxThreads)
		return MaxThreads, nil
	}
	return o.Threads, nil
}
