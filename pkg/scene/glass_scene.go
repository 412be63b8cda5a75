package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewGlassScene creates refractive spheres of increasing index in front of a
// checkered wall, so the bending of the pattern is visible.
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Width:    640,
		Height:   360,
		Position: core.NewVec3(0, 1, 5),
		LookAt:   core.NewVec3(0, 0.8, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      55,
	}, cameraOverrides)

	s := New("glass", cameraConfig)
	s.Background = core.NewVec3(0.3, 0.3, 0.35)

	checker := material.NewCheckerTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.1))
	wall := material.NewTextured(checker, 0.9, 0.0, 1)
	floor := material.NewPhong(core.NewVec3(0.7, 0.6, 0.5), 0.9, 0.1, 8)

	s.AddQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0), floor)
	// Wall behind the spheres, facing the camera
	s.AddQuad(core.NewVec3(-4, 0, -2), core.NewVec3(8, 0, 0), core.NewVec3(0, 4, 0), wall)

	for i, ior := range []float64{1.1, 1.5, 2.4} {
		x := -1.4 + 1.4*float64(i)
		s.AddSphere(core.NewVec3(x, 0.6, 0.5), 0.6, material.NewGlass(ior))
	}

	s.AddPointLight(core.NewVec3(0, 5, 5), core.NewVec3(1, 1, 1))
	return s
}
