package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
)

const (
	builtinGroup  = "Built-in Scenes"
	documentGroup = "Scene Documents"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Load
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene document (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete scene listing
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// FindScenesDir returns the first existing scenes directory, or "" when there is none
func FindScenesDir() string {
	// Try different possible paths for scenes directory
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListJSONScenes returns the scene documents in scenesDir sorted by display name
func ListJSONScenes(scenesDir string) ([]SceneInfo, error) {
	scenes := []SceneInfo{}
	if scenesDir == "" {
		return scenes, nil
	}

	files, err := loaders.ListSceneDocuments(scenesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	for _, filePath := range files {
		info, err := ParseSceneInfo(filePath)
		if err != nil {
			// Log warning but continue processing other files
			logger.Warningf("failed to read scene document %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseSceneInfo describes a scene document from its file name and contents
func ParseSceneInfo(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          filePath,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       documentGroup,
		Type:        "json",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}
	doc, err := loaders.ParseSceneDocument(data)
	if err != nil {
		return info, err
	}

	info.Description = fmt.Sprintf("%d shapes, %d lights, %dx%d, %s",
		len(doc.Scene.Shapes), len(doc.Scene.Lights), doc.Camera.Width, doc.Camera.Height, renderModeName(doc.RenderMode))
	return info, nil
}

func renderModeName(mode string) string {
	if mode == "" {
		return "phong"
	}
	return mode
}

// ListAllScenes returns both built-in scenes and the documents of the
// scenes directory, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	return listScenes(FindScenesDir())
}

func listScenes(scenesDir string) (ScenesResponse, error) {
	var response ScenesResponse

	builtIn := make([]SceneInfo, 0, len(builtinScenes))
	for _, id := range BuiltinIDs() {
		entry := builtinScenes[id]
		builtIn = append(builtIn, SceneInfo{
			ID:          id,
			Name:        entry.name,
			DisplayName: entry.name,
			Description: entry.description,
			Group:       builtinGroup,
			Type:        "builtin",
		})
	}
	response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: builtIn})

	documents, err := ListJSONScenes(scenesDir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene documents: %w", err)
	}
	if len(documents) > 0 {
		response.Groups = append(response.Groups, SceneGroup{Name: documentGroup, Scenes: documents})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-spheres" -> "Glass Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
