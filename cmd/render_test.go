package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFrameFilename(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		index    int
		expected string
	}{
		{"Keeps extension", "render.png", 3, "00003.png"},
		{"Keeps directory", filepath.Join("frames", "out.ppm"), 12, filepath.Join("frames", "00012.ppm")},
		{"Defaults to PPM", "render", 0, "00000.ppm"},
		{"Wide index", "render.bmp", 123456, "123456.bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameFilename(tt.out, tt.index); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestExpandSceneArgs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	empty := t.TempDir()

	got, err := expandSceneArgs([]string{"default", dir, empty, "missing.json"})
	if err != nil {
		t.Fatalf("expandSceneArgs() error: %v", err)
	}
	expected := []string{
		"default",
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		"missing.json",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
