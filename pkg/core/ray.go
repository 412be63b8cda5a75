package core

// Ray represents a ray with an origin and a (near) unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3

	// LastHit optionally points at the intersection this ray was spawned from.
	// The ray never owns it; it is only valid for the trace call that set it.
	LastHit *Hit
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
