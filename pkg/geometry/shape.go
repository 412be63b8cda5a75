package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Kind tags the primitive variant
type Kind string

const (
	KindSphere   Kind = "sphere"
	KindCylinder Kind = "cylinder"
	KindTriangle Kind = "triangle"
)

// Shape is a renderable primitive
type Shape interface {
	core.Surface

	// Intersect returns the nearest hit with t strictly greater than threshold,
	// or core.NoHit(). Only geometry is filled in; shading happens later.
	Intersect(ray core.Ray, threshold float64) core.Hit

	// BoundingBox returns a conservative box around the whole primitive
	BoundingBox() core.AABB
	Centroid() core.Vec3
	Kind() Kind
}

// surface carries the identity and material shared by every primitive
type surface struct {
	id       int
	material core.Material
}

// ID returns the primitive identifier
func (s *surface) ID() int { return s.id }

// Material returns the primitive material; it may not exist
func (s *surface) Material() *core.Material { return &s.material }

// wrap folds v into [0, size)
func wrap(v float64, size int) float64 {
	s := float64(size)
	v = math.Mod(v, s)
	if v < 0 {
		v += s
	}
	return v
}

// perpendicularBasis returns two unit vectors orthogonal to axis and each other
func perpendicularBasis(axis core.Vec3) (core.Vec3, core.Vec3) {
	var helper core.Vec3
	if math.Abs(axis.X) > 0.9 {
		helper = core.NewVec3(0, 0, 1)
	} else {
		helper = core.NewVec3(1, 0, 0)
	}
	u := helper.Cross(axis).Normalize()
	v := axis.Cross(u)
	return u, v
}
