package scene

import (
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Builder creates a built-in scene. The optional camera override is merged
// over the scene's default camera.
type Builder func(cameraOverrides ...geometry.CameraConfig) *Scene

type builtinScene struct {
	name        string
	description string
	build       Builder
}

var builtinScenes = map[string]builtinScene{
	"default":  {"Default Scene", "Diffuse, mirror and glass spheres with a cylinder on a ground plane", NewDefaultScene},
	"mirrors":  {"Mirror Corridor", "Two facing mirrors reflecting a row of spheres", NewMirrorScene},
	"glass":    {"Glass Spheres", "Refractive spheres in front of a checkered wall", NewGlassScene},
	"textured": {"Textured Shapes", "Checker textures mapped onto a sphere, a cylinder and a triangle", NewTexturedScene},
}

// Builtin creates the built-in scene registered under id
func Builtin(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, bool) {
	entry, ok := builtinScenes[id]
	if !ok {
		return nil, false
	}
	return entry.build(cameraOverrides...), true
}

// BuiltinIDs returns the ids of every built-in scene, sorted
func BuiltinIDs() []string {
	ids := make([]string, 0, len(builtinScenes))
	for id := range builtinScenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func mergeCamera(defaults geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}
