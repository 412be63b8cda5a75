package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Width    int       // Image width in pixels
	Height   int       // Image height in pixels
	Position core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera looks at
	Up       core.Vec3 // Up direction
	FOV      float64   // Horizontal field of view in degrees
	Exposure float64   // Carried through from the scene description; unused by the pinhole model
}

// Camera generates primary rays through pixel coordinates. Scene documents
// are left handed, so the right axis is -(look x up).
type Camera struct {
	config     CameraConfig
	look       core.Vec3
	right      core.Vec3
	up         core.Vec3
	halfWidth  float64
	halfHeight float64
}

// NewCamera derives the viewing basis from config
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)
	halfWidth := math.Tan(config.FOV / 2 * math.Pi / 180)
	look := config.LookAt.Subtract(config.Position).Normalize()

	return &Camera{
		config:     config,
		look:       look,
		right:      look.Cross(config.Up).Negate().Normalize(),
		up:         config.Up,
		halfWidth:  halfWidth,
		halfHeight: halfWidth / aspectRatio,
	}
}

// GetRay returns the primary ray through continuous pixel coordinates (x, y),
// where (0, 0) is the top-left pixel and integer values address pixel corners.
func (c *Camera) GetRay(x, y float64) core.Ray {
	screenX := (2*(x+0.5)/float64(c.config.Width) - 1) * c.halfWidth
	screenY := (1 - 2*(y+0.5)/float64(c.config.Height)) * c.halfHeight

	direction := c.look.
		Add(c.right.Multiply(screenX)).
		Add(c.up.Multiply(screenY)).
		Normalize()
	return core.NewRay(c.config.Position, direction)
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 { return c.config.Position }

// Look returns the unit viewing direction
func (c *Camera) Look() core.Vec3 { return c.look }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.Exposure != 0 {
		result.Exposure = override.Exposure
	}
	return result
}
