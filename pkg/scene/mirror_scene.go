package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewMirrorScene creates two parallel mirrors facing each other with a row of
// spheres between them, producing a long run of nested reflections.
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Width:    640,
		Height:   360,
		Position: core.NewVec3(0.8, 1.2, 4),
		LookAt:   core.NewVec3(-0.5, 0.8, 0),
		Up:       core.NewVec3(0, 1, 0),
		FOV:      60,
	}, cameraOverrides)

	s := New("mirrors", cameraConfig)
	s.Background = core.NewVec3(0.05, 0.05, 0.1)
	s.BounceLimit = 12

	floor := material.NewPhong(core.NewVec3(0.6, 0.6, 0.6), 0.9, 0.1, 8)
	mirror := material.NewMirror(core.NewVec3(0.8, 0.9, 1.0), 0.9)

	s.AddQuad(core.NewVec3(-10, 0, -10), core.NewVec3(0, 0, 20), core.NewVec3(20, 0, 0), floor)

	// Left mirror faces +x, right mirror faces -x
	s.AddQuad(core.NewVec3(-2, 0, -6), core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 12), mirror)
	s.AddQuad(core.NewVec3(2, 0, -6), core.NewVec3(0, 0, 12), core.NewVec3(0, 3, 0), mirror)

	colors := []core.Vec3{
		core.NewVec3(0.9, 0.2, 0.2),
		core.NewVec3(0.2, 0.9, 0.2),
		core.NewVec3(0.2, 0.2, 0.9),
	}
	for i, color := range colors {
		x := -1 + float64(i)
		s.AddSphere(core.NewVec3(x, 0.4, -1), 0.4, material.NewPhong(color, 0.8, 0.5, 30))
	}

	s.AddPointLight(core.NewVec3(0, 4, 3), core.NewVec3(1, 1, 1))
	return s
}
