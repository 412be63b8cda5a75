package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, a cylinder, ground and camera
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Width:    640,
		Height:   360,
		Position: core.NewVec3(0, 1, 5),
		LookAt:   core.NewVec3(0, 0.5, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
		Exposure: 0.1,
	}, cameraOverrides)

	s := New("default", cameraConfig)
	s.Background = core.NewVec3(0.25, 0.25, 0.3)

	// Create materials
	groundGreen := material.NewPhong(core.NewVec3(0.5, 0.7, 0.3), 0.9, 0.1, 10)
	diffuseRed := material.NewPhong(core.NewVec3(0.8, 0.2, 0.2), 0.9, 0.4, 20)
	diffuseBlue := material.NewPhong(core.NewVec3(0.2, 0.3, 0.8), 0.8, 0.5, 40)
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9), 0.8)
	glass := material.NewGlass(1.5)

	// Ground quad facing up
	s.AddQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0), groundGreen)

	s.AddSphere(core.NewVec3(-1.2, 0.5, 0), 0.5, diffuseRed)
	s.AddSphere(core.NewVec3(0, 0.6, -0.8), 0.6, mirror)
	s.AddSphere(core.NewVec3(1.2, 0.5, 0.4), 0.5, glass)
	s.AddCylinder(core.NewVec3(0.6, 0.4, 1.6), core.NewVec3(0, 1, 0), 0.25, 0.4, diffuseBlue)

	s.AddPointLight(core.NewVec3(3, 5, 4), core.NewVec3(0.8, 0.8, 0.8))
	s.AddAreaLight(core.NewVec3(-4, 4, 2), core.NewVec3(0.4, 0.4, 0.5))

	return s
}
