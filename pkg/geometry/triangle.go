package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// parallelEpsilon rejects rays nearly parallel to the triangle plane
const parallelEpsilon = 1e-6

// Triangle represents a single triangle
type Triangle struct {
	surface
	V0, V1, V2 core.Vec3

	normal     core.Vec3 // cross(V1-V0, V2-V0), unnormalized
	unitNormal core.Vec3
}

// NewTriangle creates a triangle; the winding of the vertices sets the normal
func NewTriangle(id int, v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0))
	return &Triangle{
		surface:    surface{id: id, material: material},
		V0:         v0,
		V1:         v1,
		V2:         v2,
		normal:     normal,
		unitNormal: normal.Normalize(),
	}
}

// Intersect intersects the supporting plane, then checks the hit point lies
// on the inner side of all three edges.
func (tr *Triangle) Intersect(ray core.Ray, threshold float64) core.Hit {
	denom := tr.normal.Dot(ray.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return core.NoHit()
	}

	t := tr.normal.Dot(tr.V0.Subtract(ray.Origin)) / denom
	if t <= threshold {
		return core.NoHit()
	}

	p := ray.At(t)
	if !tr.sameSide(tr.V0, tr.V1, p) || !tr.sameSide(tr.V1, tr.V2, p) || !tr.sameSide(tr.V2, tr.V0, p) {
		return core.NoHit()
	}

	return core.NewSurfaceHit(tr, ray, t, tr.unitNormal)
}

// sameSide reports whether p is on the inner side of edge a->b
func (tr *Triangle) sameSide(a, b, p core.Vec3) bool {
	return b.Subtract(a).Cross(p.Subtract(a)).Dot(tr.normal) >= 0
}

// TextureCoordinate projects the point onto the triangle plane, centred on the centroid
func (tr *Triangle) TextureCoordinate(point, normal core.Vec3, width, height int) core.Vec2 {
	xAxis := tr.V1.Subtract(tr.V0).Normalize()
	yAxis := tr.unitNormal.Cross(xAxis)

	rel := point.Subtract(tr.Centroid())
	w, h := float64(width), float64(height)
	x := -rel.Dot(xAxis)*w + w/2
	y := rel.Dot(yAxis)*h + h/2
	return core.NewVec2(wrap(x, width), wrap(y, height))
}

// BoundingBox returns the box around the three vertices. Axis aligned
// triangles produce a flat box.
func (tr *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(tr.V0, tr.V1, tr.V2)
}

// Centroid returns the vertex average
func (tr *Triangle) Centroid() core.Vec3 {
	return tr.V0.Add(tr.V1).Add(tr.V2).Divide(3)
}

// Kind returns KindTriangle
func (tr *Triangle) Kind() Kind { return KindTriangle }
