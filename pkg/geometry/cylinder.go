package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Cylinder is a closed cylinder: a lateral surface spanning [-HalfHeight, HalfHeight]
// along Axis from Center, with flat caps at both ends.
type Cylinder struct {
	surface
	Center     core.Vec3
	Axis       core.Vec3 // unit
	Radius     float64
	HalfHeight float64

	// Cached basis perpendicular to the axis, used for texture mapping
	u, v core.Vec3
}

// NewCylinder creates a new cylinder. axis is normalized; the caps sit at
// center ± halfHeight*axis.
func NewCylinder(id int, center, axis core.Vec3, radius, halfHeight float64, material core.Material) *Cylinder {
	axis = axis.Normalize()
	u, v := perpendicularBasis(axis)
	return &Cylinder{
		surface:    surface{id: id, material: material},
		Center:     center,
		Axis:       axis,
		Radius:     radius,
		HalfHeight: halfHeight,
		u:          u,
		v:          v,
	}
}

// Intersect returns the nearest of the lateral and cap intersections
func (c *Cylinder) Intersect(ray core.Ray, threshold float64) core.Hit {
	bestT := math.Inf(1)
	var bestNormal core.Vec3

	c.intersectLateral(ray, threshold, &bestT, &bestNormal)
	c.intersectCaps(ray, threshold, &bestT, &bestNormal)

	if math.IsInf(bestT, 1) {
		return core.NoHit()
	}
	return core.NewSurfaceHit(c, ray, bestT, bestNormal)
}

// intersectLateral solves the quadratic for the infinite cylinder, then keeps
// roots whose axial coordinate lies within the height.
func (c *Cylinder) intersectLateral(ray core.Ray, threshold float64, bestT *float64, bestNormal *core.Vec3) {
	oc := ray.Origin.Subtract(c.Center)

	// Project onto the plane perpendicular to the axis
	dPerp := ray.Direction.Subtract(c.Axis.Multiply(ray.Direction.Dot(c.Axis)))
	ocPerp := oc.Subtract(c.Axis.Multiply(oc.Dot(c.Axis)))

	a := dPerp.Dot(dPerp)
	if a < 1e-12 {
		// Ray parallel to the axis never crosses the lateral surface
		return
	}
	halfB := dPerp.Dot(ocPerp)
	cc := ocPerp.Dot(ocPerp) - c.Radius*c.Radius

	discriminant := halfB*halfB - a*cc
	if discriminant < 0 {
		return
	}
	sqrtD := math.Sqrt(discriminant)

	for _, t := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if t <= threshold || t >= *bestT {
			continue
		}
		rel := ray.At(t).Subtract(c.Center)
		z := rel.Dot(c.Axis)
		if math.Abs(z) > c.HalfHeight {
			continue
		}
		*bestT = t
		*bestNormal = rel.Subtract(c.Axis.Multiply(z)).Divide(c.Radius)
		return
	}
}

// intersectCaps tests the two end discs
func (c *Cylinder) intersectCaps(ray core.Ray, threshold float64, bestT *float64, bestNormal *core.Vec3) {
	denom := ray.Direction.Dot(c.Axis)
	if math.Abs(denom) < 1e-12 {
		return
	}

	for _, side := range [2]float64{1, -1} {
		capCenter := c.Center.Add(c.Axis.Multiply(side * c.HalfHeight))
		t := capCenter.Subtract(ray.Origin).Dot(c.Axis) / denom
		if t <= threshold || t >= *bestT {
			continue
		}
		if ray.At(t).Subtract(capCenter).LengthSquared() > c.Radius*c.Radius {
			continue
		}
		*bestT = t
		*bestNormal = c.Axis.Multiply(side)
	}
}

// TextureCoordinate unwraps the lateral surface around the axis; caps map
// their disc onto the whole image.
func (c *Cylinder) TextureCoordinate(point, normal core.Vec3, width, height int) core.Vec2 {
	rel := point.Subtract(c.Center)
	w, h := float64(width), float64(height)

	if side := normal.Dot(c.Axis); math.Abs(side) > 0.5 {
		capRel := rel.Subtract(c.Axis.Multiply(math.Copysign(c.HalfHeight, side)))
		x := (capRel.Dot(c.u)/c.Radius*0.5)*w + w/2
		y := (capRel.Dot(c.v)/c.Radius*0.5)*h + h/2
		return core.NewVec2(wrap(x, width), wrap(y, height))
	}

	theta := math.Atan2(rel.Dot(c.v), rel.Dot(c.u))
	x := (theta + math.Pi) / (2 * math.Pi) * w
	y := (c.HalfHeight - rel.Dot(c.Axis)) / c.HalfHeight / 2 * h
	return core.NewVec2(x, y)
}

// BoundingBox returns the tight box around both caps
func (c *Cylinder) BoundingBox() core.AABB {
	var extent core.Vec3
	for axis := 0; axis < 3; axis++ {
		a := c.Axis.Axis(axis)
		e := math.Abs(a)*c.HalfHeight + c.Radius*math.Sqrt(math.Max(0, 1-a*a))
		extent = extent.SetAxis(axis, e)
	}
	return core.NewAABB(c.Center.Subtract(extent), c.Center.Add(extent))
}

// Centroid returns the cylinder center
func (c *Cylinder) Centroid() core.Vec3 { return c.Center }

// Kind returns KindCylinder
func (c *Cylinder) Kind() Kind { return KindCylinder }
