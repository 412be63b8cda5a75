package core

import (
	"math"
	"testing"
)

func TestHSLRoundTrip(t *testing.T) {
	colors := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0.2, 0.6, 0.3),
		NewVec3(0.9, 0.8, 0.1),
		NewVec3(0.1, 0.2, 0.7),
		NewVec3(0.5, 0.5, 0.5),
	}

	for _, c := range colors {
		h, s, l := RGBToHSL(c)
		got := HSLToRGB(h, s, l)
		if got.Subtract(c).Length() > 1e-9 {
			t.Errorf("Round trip of %v gave %v", c, got)
		}
	}
}

func TestSaturate(t *testing.T) {
	t.Run("Gray is unchanged", func(t *testing.T) {
		gray := NewVec3(0.4, 0.4, 0.4)
		if got := Saturate(gray, SaturationBoost); got.Subtract(gray).Length() > 1e-12 {
			t.Errorf("Expected %v, got %v", gray, got)
		}
	})

	t.Run("Saturation increases", func(t *testing.T) {
		c := NewVec3(0.6, 0.4, 0.4)
		_, before, _ := RGBToHSL(c)
		_, after, _ := RGBToHSL(Saturate(c, SaturationBoost))
		if math.Abs(after-math.Min(1, before*1.5)) > 1e-9 {
			t.Errorf("Expected saturation %v, got %v", before*1.5, after)
		}
	})

	t.Run("Saturation caps at one", func(t *testing.T) {
		_, s, _ := RGBToHSL(Saturate(NewVec3(1, 0, 0), SaturationBoost))
		if s > 1 {
			t.Errorf("Saturation above 1: %v", s)
		}
	})
}

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec3
		expected Vec3
	}{
		{"Black", Vec3{}, Vec3{}},
		{"Overexposed white clamps", NewVec3(2, 2, 2), NewVec3(1, 1, 1)},
		{"Gray scales", NewVec3(0.4, 0.4, 0.4), NewVec3(0.5, 0.5, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.in); got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestQuantize(t *testing.T) {
	r, g, b := Quantize(NewVec3(1, 0.5, -1))
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("Expected (255,127,0), got (%d,%d,%d)", r, g, b)
	}
}
