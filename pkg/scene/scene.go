package scene

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/log"
)

var logger = log.New("scene")

var (
	// ErrInvalidCamera is returned when a scene camera cannot produce rays
	ErrInvalidCamera = errors.New("invalid camera configuration")
	// ErrInvalidShape is returned for shapes whose bounds are inverted or not finite
	ErrInvalidShape = errors.New("invalid shape")
)

// Scene contains all the elements needed for rendering. It must not be
// modified after Preprocess; render workers read it without locking.
type Scene struct {
	Name         string
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Background   core.Vec3
	Shapes       []geometry.Shape // Objects in the scene, ids 1..n in insertion order
	Lights       []lights.Light   // Lights in the scene
	BVH          *geometry.BVH    // Acceleration structure for ray-object intersection
	BounceLimit  int              // Maximum recursion depth for reflection and refraction
	Mode         core.RenderMode
	Epsilons     core.Epsilons
}

// New creates an empty scene with default bounce limit and tolerances
func New(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		BounceLimit:  loaders.DefaultBounces,
		Mode:         core.ModePhong,
		Epsilons:     core.DefaultEpsilons(),
	}
}

func (s *Scene) nextID() int {
	return len(s.Shapes) + 1
}

// AddSphere adds a sphere with the next shape id
func (s *Scene) AddSphere(center core.Vec3, radius float64, material core.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(s.nextID(), center, radius, material)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddCylinder adds a capped cylinder with the next shape id
func (s *Scene) AddCylinder(center, axis core.Vec3, radius, halfHeight float64, material core.Material) *geometry.Cylinder {
	cylinder := geometry.NewCylinder(s.nextID(), center, axis, radius, halfHeight, material)
	s.Shapes = append(s.Shapes, cylinder)
	return cylinder
}

// AddTriangle adds a triangle with the next shape id
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, material core.Material) *geometry.Triangle {
	triangle := geometry.NewTriangle(s.nextID(), v0, v1, v2, material)
	s.Shapes = append(s.Shapes, triangle)
	return triangle
}

// AddQuad adds the parallelogram corner, corner+u, corner+u+v, corner+v as two
// triangles. Both face along u x v.
func (s *Scene) AddQuad(corner, u, v core.Vec3, material core.Material) {
	s.AddTriangle(corner, corner.Add(u), corner.Add(u).Add(v), material)
	s.AddTriangle(corner, corner.Add(u).Add(v), corner.Add(v), material)
}

// AddPointLight adds a point light
func (s *Scene) AddPointLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// AddAreaLight adds an area light
func (s *Scene) AddAreaLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewAreaLight(position, intensity))
}

// Preprocess prepares the scene for rendering: it substitutes a zero light
// when none were added, builds the camera and builds the BVH.
func (s *Scene) Preprocess() error {
	if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidCamera, s.CameraConfig.Width, s.CameraConfig.Height)
	}
	if s.CameraConfig.LookAt == s.CameraConfig.Position {
		return fmt.Errorf("%w: camera looks at its own position", ErrInvalidCamera)
	}
	if s.BounceLimit <= 0 {
		s.BounceLimit = loaders.DefaultBounces
	}
	for _, shape := range s.Shapes {
		if box := shape.BoundingBox(); !box.IsValid() {
			return fmt.Errorf("%w: %s #%d has bounds %v to %v", ErrInvalidShape, shape.Kind(), shape.ID(), box.Min, box.Max)
		}
	}

	if len(s.Lights) == 0 {
		logger.Warningf("scene %s has no lights, adding a zero-intensity light", s.Name)
	}
	s.Lights = lights.EnsureLights(s.Lights)
	s.Camera = geometry.NewCamera(s.CameraConfig)

	// Create the BVH
	s.BVH = geometry.NewBVH(s.Shapes, s.CameraConfig.Position, s.Epsilons.BoundaryNudge)

	stats := s.BVH.Stats()
	logger.Infof("scene %s: %d shapes, %d lights, BVH with %d nodes (depth %d)",
		s.Name, len(s.Shapes), len(s.Lights), stats.Nodes, stats.MaxDepth)
	if log.Enabled(log.Debug) {
		var buf bytes.Buffer
		if err := s.BVH.Dump(&buf); err == nil {
			logger.Debugf("BVH of %s:\n%s", s.Name, buf.String())
		}
	}
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
