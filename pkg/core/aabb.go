package core

import "math"

// AABB is an axis-aligned bounding box. It is the proxy volume tested by
// BVH traversal and is never a renderable primitive.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = MinVec(box.Min, point)
		box.Max = MaxVec(box.Max, point)
	}
	return box
}

// Intersect runs the slab test against the box. On success it returns a
// bounding-box-only hit with T=1 and the reserved BoundingBoxID, otherwise
// the miss sentinel. The result depends only on the three per-axis intervals.
func (aabb AABB) Intersect(ray Ray) Hit {
	rayMin := math.Inf(-1)
	rayMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)
		lo := aabb.Min.Axis(axis)
		hi := aabb.Max.Axis(axis)

		if direction == 0 {
			if origin < lo || origin > hi {
				return NoHit()
			}
			continue
		}

		invD := 1.0 / direction
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayMin {
			rayMin = t0
		}
		if t1 < rayMax {
			rayMax = t1
		}
		if rayMax < rayMin {
			return NoHit()
		}
	}

	// Box lies entirely behind the ray origin
	if rayMax < 0 {
		return NoHit()
	}

	return Hit{T: 1, ShapeID: BoundingBoxID, BoundingBoxOnly: true, Checks: 1}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: MinVec(aabb.Min, other.Min), Max: MaxVec(aabb.Max, other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// Ties go to the lower axis.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

// Contains reports whether other lies inside aabb (faces included)
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// BoundaryAxes returns a bit mask (bit 0=X, 1=Y, 2=Z) of the axes along which
// p lies exactly on one of the two faces of the box.
func (aabb AABB) BoundaryAxes(p Vec3) uint8 {
	var mask uint8
	for axis := 0; axis < 3; axis++ {
		v := p.Axis(axis)
		if v == aabb.Min.Axis(axis) || v == aabb.Max.Axis(axis) {
			mask |= 1 << axis
		}
	}
	return mask
}

// Nudge widens the box by eps on both faces of every axis in mask
func (aabb AABB) Nudge(mask uint8, eps float64) AABB {
	for axis := 0; axis < 3; axis++ {
		if mask&(1<<axis) == 0 {
			continue
		}
		aabb.Min = aabb.Min.SetAxis(axis, aabb.Min.Axis(axis)-eps)
		aabb.Max = aabb.Max.SetAxis(axis, aabb.Max.Axis(axis)+eps)
	}
	return aabb
}

// ReshapeOnBoundary widens the box along every axis where p sits on a face
func (aabb AABB) ReshapeOnBoundary(p Vec3, eps float64) AABB {
	return aabb.Nudge(aabb.BoundaryAxes(p), eps)
}

// PadFlat widens zero-thickness axes so flat primitives (axis aligned
// triangles) still produce a non-empty slab interval.
func (aabb AABB) PadFlat(eps float64) AABB {
	var mask uint8
	size := aabb.Size()
	for axis := 0; axis < 3; axis++ {
		if size.Axis(axis) <= 0 {
			mask |= 1 << axis
		}
	}
	return aabb.Nudge(mask, eps)
}
