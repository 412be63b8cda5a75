package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Integrator computes the color seen along a primary ray. Implementations
// are not safe for concurrent use; each render worker owns one.
type Integrator interface {
	RayColor(ray core.Ray) core.Vec3
	Stats() TraceStats
}

// TraceStats counts the work done by an integrator
type TraceStats struct {
	PrimaryRays int64 // Rays started by RayColor
	Rays        int64 // Every ray traced through the BVH, shadow rays included
	Checks      int64 // Boxes and primitives tested
}
