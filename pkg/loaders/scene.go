package loaders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/log"
)

var logger = log.New("loaders")

// DefaultBounces is used when a document does not set nbounces
const DefaultBounces = 8

// FOVScale is applied to the document field of view. Scene documents are
// authored against a narrower lens than the pinhole camera uses.
const FOVScale = 1.5

// SceneDocument is the parsed form of a JSON scene description
type SceneDocument struct {
	Bounces    *int           `json:"nbounces"`
	RenderMode string         `json:"rendermode"`
	Camera     CameraDocument `json:"camera"`
	Scene      struct {
		Background Vec3Doc         `json:"backgroundcolor"`
		Shapes     []ShapeDocument `json:"shapes"`
		Lights     []LightDocument `json:"lightsources"`
	} `json:"scene"`

	// Textures maps each diffusetexture path, as written in the document,
	// to its decoded image
	Textures map[string]*ImageData `json:"-"`
}

// CameraDocument describes the camera block
type CameraDocument struct {
	Type     string  `json:"type"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Position Vec3Doc `json:"position"`
	LookAt   Vec3Doc `json:"lookAt"`
	Up       Vec3Doc `json:"upVector"`
	FOV      float64 `json:"fov"`
	Exposure float64 `json:"exposure"`
}

// ShapeDocument describes one primitive; which fields apply depends on Type
type ShapeDocument struct {
	Type     string            `json:"type"`
	Center   Vec3Doc           `json:"center"`
	Radius   float64           `json:"radius"`
	Axis     Vec3Doc           `json:"axis"`
	Height   float64           `json:"height"`
	V0       Vec3Doc           `json:"v0"`
	V1       Vec3Doc           `json:"v1"`
	V2       Vec3Doc           `json:"v2"`
	Material *MaterialDocument `json:"material"`
}

// MaterialDocument describes a Phong material
type MaterialDocument struct {
	Ks               float64 `json:"ks"`
	Kd               float64 `json:"kd"`
	SpecularExponent float64 `json:"specularexponent"`
	DiffuseColor     Vec3Doc `json:"diffusecolor"`
	DiffuseTexture   string  `json:"diffusetexture"`
	SpecularColor    Vec3Doc `json:"specularcolor"`
	IsReflective     bool    `json:"isreflective"`
	Reflectivity     float64 `json:"reflectivity"`
	IsRefractive     bool    `json:"isrefractive"`
	RefractiveIndex  float64 `json:"refractiveindex"`
}

// HasTexture reports whether the material names a texture file
func (m *MaterialDocument) HasTexture() bool {
	return m != nil && m.DiffuseTexture != "" && m.DiffuseTexture != "null"
}

// LightDocument describes one light source
type LightDocument struct {
	Type      string  `json:"type"`
	Position  Vec3Doc `json:"position"`
	Intensity Vec3Doc `json:"intensity"`
}

// Vec3Doc is a JSON [x, y, z] array
type Vec3Doc [3]float64

// BounceLimit returns nbounces or the default
func (d *SceneDocument) BounceLimit() int {
	if d.Bounces == nil {
		return DefaultBounces
	}
	return *d.Bounces
}

// LoadSceneDocument reads and validates a JSON scene document and decodes
// every texture it references. Relative texture paths are tried as given,
// then relative to the document directory.
func LoadSceneDocument(filename string) (*SceneDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	doc, err := ParseSceneDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	for _, shape := range doc.Scene.Shapes {
		if !shape.Material.HasTexture() {
			continue
		}
		path := shape.Material.DiffuseTexture
		if _, seen := doc.Textures[path]; seen {
			continue
		}
		texture, err := LoadImage(resolvePath(filename, path))
		if err != nil {
			return nil, fmt.Errorf("failed to load texture for %s: %w", filename, err)
		}
		doc.Textures[path] = texture
	}

	logger.Infof("loaded scene document %s: %d shapes, %d lights, %d textures",
		filename, len(doc.Scene.Shapes), len(doc.Scene.Lights), len(doc.Textures))
	return doc, nil
}

// ParseSceneDocument decodes and validates a scene document without touching the filesystem
func ParseSceneDocument(data []byte) (*SceneDocument, error) {
	var doc SceneDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}
	doc.Textures = make(map[string]*ImageData)

	if doc.Camera.Width <= 0 || doc.Camera.Height <= 0 {
		return nil, fmt.Errorf("%w: camera width and height must be positive", ErrMalformedScene)
	}
	if doc.Bounces != nil && *doc.Bounces <= 0 {
		return nil, fmt.Errorf("%w: nbounces must be positive", ErrMalformedScene)
	}
	for i, shape := range doc.Scene.Shapes {
		switch shape.Type {
		case "sphere", "cylinder", "triangle":
		default:
			return nil, fmt.Errorf("%w: shape %d has unknown type %q", ErrMalformedScene, i, shape.Type)
		}
	}
	for i, light := range doc.Scene.Lights {
		switch light.Type {
		case "pointlight", "arealight":
		default:
			return nil, fmt.Errorf("%w: light %d has unknown type %q", ErrMalformedScene, i, light.Type)
		}
	}
	return &doc, nil
}

func resolvePath(docPath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(filepath.Dir(docPath), path)
}

// ListSceneDocuments returns the JSON documents in dir, sorted by name
func ListSceneDocuments(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	// Glob returns names in lexical order
	return files, nil
}

// ValidateScenePath accepts only .json files inside a scenes/ directory
func ValidateScenePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: filename cannot be empty", ErrInvalidScenePath)
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("%w: null bytes not allowed", ErrInvalidScenePath)
	}

	cleanPath := filepath.ToSlash(filepath.Clean(filename))
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("%w: directory traversal not allowed", ErrInvalidScenePath)
	}
	if !strings.HasPrefix(cleanPath, "scenes/") {
		return fmt.Errorf("%w: file path must be in scenes/ directory", ErrInvalidScenePath)
	}
	if !strings.HasSuffix(strings.ToLower(cleanPath), ".json") {
		return fmt.Errorf("%w: only .json files are allowed", ErrInvalidScenePath)
	}
	return nil
}
