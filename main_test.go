package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const frameDocument = `{
  "nbounces": 2,
  "camera": {"width": 8, "height": 4, "position": [0, 0, 5], "lookAt": [0, 0, 0], "upVector": [0, 1, 0], "fov": 45},
  "scene": {
    "backgroundcolor": [0.1, 0.1, 0.1],
    "shapes": [{"type": "sphere", "center": [0, 0, 0], "radius": 1}],
    "lightsources": [{"type": "pointlight", "position": [0, 3, 3], "intensity": [1, 1, 1]}]
  }
}`

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	err := app.Run(append([]string{"raytracer"}, args...))
	return buf.String(), err
}

func TestApp_GlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"Version", []string{"--version"}, "raytracer version 0.1.0"},
		{"Verbose", []string{"-v", "scenes"}, "default"},
		{"Very verbose", []string{"-vv", "scenes"}, "default"},
	}
	defer log.SetLevel(log.Notice)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Output does not contain %q:\n%s", tt.contains, output)
			}
		})
	}
}

func TestRender_SingleScene(t *testing.T) {
	out := filepath.Join(t.TempDir(), "default.png")

	if _, err := runApp(t, "render", "--width", "16", "--height", "8", "--samples", "1", "--threads", "2", "--out", out, "default"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("Output is not a PNG")
	}
}

func TestRender_Batch(t *testing.T) {
	scenes := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "c.json"} {
		if err := os.WriteFile(filepath.Join(scenes, name), []byte(frameDocument), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	frames := t.TempDir()

	if _, err := runApp(t, "render", "--start", "1", "--mode", "binary", "--out", filepath.Join(frames, "frame.ppm"), scenes); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	tests := []struct {
		name   string
		exists bool
	}{
		{"00000.ppm", false},
		{"00001.ppm", true},
		{"00002.ppm", true},
		{"frame.ppm", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(frames, tt.name))
			if exists := err == nil; exists != tt.exists {
				t.Fatalf("Expected exists=%v, got %v", tt.exists, exists)
			}
			if tt.exists && !strings.HasPrefix(string(data), "P3\n8 4\n255\n") {
				t.Errorf("Unexpected PPM header in %s", tt.name)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"No scene", []string{"render"}},
		{"Unknown scene", []string{"render", "nothing"}},
		{"Start past the end", []string{"render", "--start", "1", "default"}},
		{"Zero threads", []string{"render", "--threads", "0", "--width", "8", "--height", "4", "default"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	output, err := runApp(t, "scenes")
	if err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, id := range []string{"default", "mirrors", "glass", "textured"} {
		if !strings.Contains(output, id) {
			t.Errorf("Listing does not mention %s", id)
		}
	}
}

func TestBVHCommand(t *testing.T) {
	output, err := runApp(t, "bvh", "default")
	if err != nil {
		t.Fatalf("bvh failed: %v", err)
	}
	if !strings.Contains(output, "Node - nonleaf") || !strings.Contains(output, "Node - contains [sphere") {
		t.Errorf("Missing tree dump in output:\n%s", output)
	}

	output, err = runApp(t, "bvh", "--stats-only", "default")
	if err != nil {
		t.Fatalf("bvh failed: %v", err)
	}
	if strings.Contains(output, "Node -") || !strings.Contains(output, "Primitive") {
		t.Errorf("Expected only the summary table:\n%s", output)
	}
}

func TestShippedScenes(t *testing.T) {
	documents, err := loaders.ListSceneDocuments("scenes")
	if err != nil {
		t.Fatalf("Failed to list scenes: %v", err)
	}
	if len(documents) == 0 {
		t.Fatal("No scene documents found")
	}

	for _, path := range documents {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := scene.NewJSONScene(path)
			if err != nil {
				t.Fatalf("Failed to load: %v", err)
			}
			if err := s.Preprocess(); err != nil {
				t.Fatalf("Failed to preprocess: %v", err)
			}
			if len(s.Lights) == 0 || s.BVH == nil {
				t.Error("Scene should have lights and a BVH after preprocessing")
			}
		})
	}
}
