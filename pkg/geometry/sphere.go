package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(id int, center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		surface: surface{id: id, material: material},
		Center:  center,
		Radius:  radius,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray, threshold float64) core.Hit {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return core.NoHit()
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= threshold {
		root = (-halfB + sqrtD) / a
		if root <= threshold {
			return core.NoHit()
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Divide(s.Radius)
	return core.NewSurfaceHit(s, ray, root, normal)
}

// TextureCoordinate projects the surface direction onto the image plane
func (s *Sphere) TextureCoordinate(point, normal core.Vec3, width, height int) core.Vec2 {
	dir := point.Subtract(s.Center).Normalize()
	x := dir.X*0.5*float64(width) + float64(width)/2
	y := -dir.Y*0.5*float64(height) + float64(height)/2
	return core.NewVec2(x, y)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// Centroid returns the sphere center
func (s *Sphere) Centroid() core.Vec3 { return s.Center }

// Kind returns KindSphere
func (s *Sphere) Kind() Kind { return KindSphere }
