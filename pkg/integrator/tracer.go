package integrator

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	// EscapeColor is returned for rays still bouncing at the bounce limit
	EscapeColor = core.NewVec3(1, 1, 1)
	// BinaryColor marks every hit in binary mode
	BinaryColor = core.NewVec3(1, 0, 0)
)

// shadowFactor is the total attenuation when every light is occluded
const shadowFactor = 0.5

// Tracer is the recursive Phong ray tracer: local shading with shadow
// attenuation, mirror reflection and refraction, bounded by the scene's
// bounce limit.
type Tracer struct {
	scene       *scene.Scene
	reshapes    *geometry.ReshapeLog
	bounceLimit int
	stats       TraceStats
}

// NewTracer creates a tracer over a preprocessed scene. Boundary hits found
// during traversal are recorded in reshapes, which may be nil. A positive
// bounceLimit replaces the scene's limit for this tracer only.
func NewTracer(s *scene.Scene, reshapes *geometry.ReshapeLog, bounceLimit int) *Tracer {
	if bounceLimit <= 0 {
		bounceLimit = s.BounceLimit
	}
	return &Tracer{scene: s, reshapes: reshapes, bounceLimit: bounceLimit}
}

// BounceLimit returns the recursion depth at which rays escape
func (t *Tracer) BounceLimit() int {
	return t.bounceLimit
}

// RayColor traces a primary ray, viewing along the camera look direction
func (t *Tracer) RayColor(ray core.Ray) core.Vec3 {
	t.stats.PrimaryRays++
	return t.Color(ray, 0, false, t.scene.Camera.Look())
}

// Stats returns the work counted since the tracer was created
func (t *Tracer) Stats() TraceStats {
	return t.stats
}

func (t *Tracer) intersect(ray core.Ray, threshold float64) core.Hit {
	hit := t.scene.BVH.Intersect(ray, threshold, t.reshapes)
	t.stats.Rays++
	t.stats.Checks += int64(hit.Checks)
	return hit
}

// Color returns the color seen along ray at the given bounce depth. inside
// reports whether the ray travels through a refractive medium; view is the
// direction used for specular highlights.
func (t *Tracer) Color(ray core.Ray, depth int, inside bool, view core.Vec3) core.Vec3 {
	if depth >= t.bounceLimit {
		return EscapeColor
	}

	// Rays leaving a surface carry the hit they left from
	threshold := 0.0
	if ray.LastHit != nil {
		threshold = t.scene.Epsilons.ShadowThreshold
	}
	hit := t.intersect(ray, threshold)
	if !hit.IsHit() {
		return t.scene.Background
	}
	if t.scene.Mode == core.ModeBinary {
		return BinaryColor
	}

	var reflectColor core.Vec3
	if hit.ShouldReflect && hit.Point != ray.Origin {
		reflectColor = t.Color(t.bounceRay(hit, ray.Direction.Reflect(hit.Normal)), depth+1, inside, hit.Normal)
	}

	shadows := t.Shadow(hit)
	rayColor := material.Shade(hit, t.scene.Lights, view)

	if hit.ShouldRefract {
		dir, ok := Refract(ray.Direction, hit.Normal, hit.RefractiveIndex, inside)
		if !ok {
			// Total internal reflection keeps the ray in the medium
			rayColor = t.Color(t.bounceRay(hit, ray.Direction.Reflect(hit.Normal)), depth+1, inside, hit.Normal)
		} else {
			rayColor = t.Color(t.bounceRay(hit, dir), depth+1, !inside, hit.Normal)
			shadows = 1
		}
	}

	weight := 0.0
	if hit.ShouldReflect {
		weight = hit.Reflectivity * hit.Reflectivity
	}
	return rayColor.Multiply(shadows * (1 - weight)).Add(reflectColor.Multiply(weight))
}

// bounceRay starts a secondary ray along dir, offset off the hit surface
func (t *Tracer) bounceRay(hit core.Hit, dir core.Vec3) core.Ray {
	dir = dir.Normalize()
	ray := core.NewRay(hit.Point.Add(dir.Multiply(t.scene.Epsilons.BounceOffset)), dir)
	ray.LastHit = &hit
	return ray
}

// Shadow returns the shadow multiplier at hit: 1 minus 0.5/n for each of
// the n lights blocked by a different shape. A shape never shadows itself.
func (t *Tracer) Shadow(hit core.Hit) float64 {
	lightList := t.scene.Lights
	multiplier := 1.0
	for _, light := range lightList {
		dir, distance := light.DirectionFrom(hit.Point)
		occluder := t.intersect(core.NewRay(hit.Point, dir), t.scene.Epsilons.ShadowThreshold)
		if occluder.ShapeID != hit.ShapeID && occluder.T > 0 && occluder.T <= distance {
			multiplier -= shadowFactor / float64(len(lightList))
		}
	}
	return multiplier
}

// Refract bends direction d through a surface with normal n using Snell's
// law. The ratio is 1/ior when entering and ior when inside the medium. It
// reports false on total internal reflection.
func Refract(d, n core.Vec3, ior float64, inside bool) (core.Vec3, bool) {
	if ior <= 0 {
		ior = 1
	}
	eta := 1 / ior
	if inside {
		eta = ior
	}

	d = d.Normalize()
	cosI := -d.Dot(n)
	if cosI < 0 {
		// Leaving through the surface: face the normal against the ray
		n = n.Negate()
		cosI = -cosI
	}

	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return d.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))), true
}
