package loaders

import "errors"

var (
	// ErrUnsupportedPPM is returned for PPM variants other than P3 and P6
	ErrUnsupportedPPM = errors.New("loaders: unsupported PPM format")
	// ErrMalformedScene is returned when a scene document is missing required fields
	ErrMalformedScene = errors.New("loaders: malformed scene document")
	// ErrInvalidScenePath is returned for scene paths outside the scenes directory
	ErrInvalidScenePath = errors.New("loaders: invalid scene path")
)
