package core

const (
	// NoShape is the shape id carried by a miss
	NoShape = -1
	// BoundingBoxID is reserved for hits against a BVH bounding box
	BoundingBoxID = 10001
)

// Hit is the result of testing a ray against geometry.
// T > 0 iff a genuine surface intersection occurred.
type Hit struct {
	T      float64
	Point  Vec3
	Normal Vec3
	Color  Vec3

	ShapeID int
	Surface Surface

	// Copied from the surface material so bounce decisions don't need to look it up
	Reflectivity    float64
	RefractiveIndex float64
	ShouldReflect   bool
	ShouldRefract   bool

	// BoundingBoxOnly hits come from the BVH proxy boxes. They carry no
	// shading data and never leave the traversal code.
	BoundingBoxOnly bool

	// Checks counts the boxes and primitives tested to produce this hit
	Checks int
}

// NoHit returns the miss sentinel
func NoHit() Hit {
	return Hit{T: -1, ShapeID: NoShape}
}

// IsHit reports whether h is a genuine surface intersection
func (h Hit) IsHit() bool {
	return h.T > 0 && !h.BoundingBoxOnly
}

// Closer selects between two candidate hits: the smaller non-negative t wins,
// and a side without a valid hit yields to the other. Checks are summed.
func Closer(left, right Hit) Hit {
	checks := left.Checks + right.Checks
	best := left
	if (right.T < left.T && right.T >= 0) || left.T < 0 {
		best = right
	}
	best.Checks = checks
	return best
}

// NewSurfaceHit fills a hit for surface s at parameter t along ray,
// copying the bounce properties of the surface material.
func NewSurfaceHit(s Surface, ray Ray, t float64, normal Vec3) Hit {
	hit := Hit{
		T:       t,
		Point:   ray.At(t),
		Normal:  normal,
		ShapeID: s.ID(),
		Surface: s,
		Checks:  1,
	}
	if m := s.Material(); m.Exists() {
		hit.Reflectivity = m.Reflectivity
		hit.RefractiveIndex = m.RefractiveIndex
		hit.ShouldReflect = m.Reflective
		hit.ShouldRefract = m.Refractive
	}
	return hit
}
