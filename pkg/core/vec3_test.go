package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, 7, 9)},
		{"Subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, 2.5, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Normalize", NewVec3(0, 3, 4).Normalize(), NewVec3(0, 0.6, 0.8)},
		{"Normalize zero", Vec3{}.Normalize(), Vec3{}},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
		{"Reflect", NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0)), NewVec3(1, 1, 0)},
		{"SetAxis", a.SetAxis(1, 9), NewVec3(1, 9, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if tt.got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_ScalarOperations(t *testing.T) {
	v := NewVec3(1, 2, 2)

	if v.Dot(NewVec3(1, 1, 1)) != 5 {
		t.Errorf("Expected dot 5, got %v", v.Dot(NewVec3(1, 1, 1)))
	}
	if math.Abs(v.Length()-3) > 1e-12 {
		t.Errorf("Expected length 3, got %v", v.Length())
	}
	for axis, expected := range []float64{1, 2, 2} {
		if v.Axis(axis) != expected {
			t.Errorf("Axis(%d): expected %v, got %v", axis, expected, v.Axis(axis))
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))
	if got := ray.At(4); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected (0,0,1), got %v", got)
	}
}
