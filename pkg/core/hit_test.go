package core

import "testing"

func TestCloser(t *testing.T) {
	near := Hit{T: 1, ShapeID: 1, Checks: 2}
	far := Hit{T: 3, ShapeID: 2, Checks: 5}
	miss := NoHit()
	miss.Checks = 1

	tests := []struct {
		name     string
		left     Hit
		right    Hit
		expected int
	}{
		{"Left closer", near, far, 1},
		{"Right closer", far, near, 1},
		{"Left miss", miss, far, 2},
		{"Right miss", far, miss, 2},
		{"Both miss", miss, miss, NoShape},
		{"Tie keeps left", Hit{T: 2, ShapeID: 7}, Hit{T: 2, ShapeID: 8}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Closer(tt.left, tt.right)
			if got.ShapeID != tt.expected {
				t.Errorf("Expected shape %d, got %d", tt.expected, got.ShapeID)
			}
			if got.Checks != tt.left.Checks+tt.right.Checks {
				t.Errorf("Expected checks %d, got %d", tt.left.Checks+tt.right.Checks, got.Checks)
			}
		})
	}
}

func TestNoHit(t *testing.T) {
	h := NoHit()
	if h.IsHit() || h.T > 0 || h.ShapeID != NoShape {
		t.Errorf("Unexpected miss sentinel %+v", h)
	}
}

func TestMaterial_Exists(t *testing.T) {
	var missing Material
	if missing.Exists() {
		t.Error("Zero material should not exist")
	}
	var nilMaterial *Material
	if nilMaterial.Exists() || nilMaterial.HasTexture() {
		t.Error("Nil material should not exist")
	}
	m := NewMaterial()
	if !m.Exists() || m.HasTexture() {
		t.Error("New material should exist without a texture")
	}
}
