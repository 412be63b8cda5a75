package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewTexturedScene creates a scene showing the texture projection of each primitive kind
func NewTexturedScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Width:    640,
		Height:   360,
		Position: core.NewVec3(0, 1.2, 5),
		LookAt:   core.NewVec3(0, 0.7, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
	}, cameraOverrides)

	s := New("textured", cameraConfig)
	s.Background = core.NewVec3(0.2, 0.2, 0.2)

	warm := material.NewCheckerTexture(128, 128, 16, core.NewVec3(0.9, 0.5, 0.1), core.NewVec3(0.9, 0.9, 0.8))
	cool := material.NewCheckerTexture(128, 128, 8, core.NewVec3(0.1, 0.4, 0.8), core.NewVec3(0.9, 0.9, 0.9))
	floor := material.NewCheckerTexture(512, 512, 64, core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.7, 0.7, 0.7))

	s.AddQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0),
		material.NewTextured(floor, 0.9, 0.1, 8))

	s.AddSphere(core.NewVec3(-1.5, 0.7, 0), 0.7, material.NewTextured(warm, 0.9, 0.3, 20))
	s.AddCylinder(core.NewVec3(0, 0.7, 0), core.NewVec3(0, 1, 0), 0.5, 0.7, material.NewTextured(cool, 0.9, 0.3, 20))
	s.AddTriangle(core.NewVec3(1, 0, 0), core.NewVec3(2.4, 0, 0), core.NewVec3(1.7, 1.5, 0),
		material.NewTextured(warm, 0.9, 0.2, 10))

	s.AddPointLight(core.NewVec3(2, 5, 5), core.NewVec3(1, 1, 1))
	return s
}
