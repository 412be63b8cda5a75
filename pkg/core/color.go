package core

import "math"

const (
	// ToneMapScale is the linear exposure applied before clamping
	ToneMapScale = 1.25
	// SaturationBoost is the relative saturation increase applied after tone mapping
	SaturationBoost = 0.5
)

// ToneMap scales c linearly by ToneMapScale, clamps to [0, 1] and boosts saturation
func ToneMap(c Vec3) Vec3 {
	return Saturate(c.Multiply(ToneMapScale).Clamp(0, 1), SaturationBoost)
}

// Saturate scales the HSL saturation of c by (1 + factor), capped at 1
func Saturate(c Vec3, factor float64) Vec3 {
	h, s, l := RGBToHSL(c)
	s = math.Min(1, s*(1+factor))
	return HSLToRGB(h, s, l)
}

// RGBToHSL converts a color in [0, 1] to hue, saturation and lightness, each in [0, 1]
func RGBToHSL(c Vec3) (h, s, l float64) {
	maxC := math.Max(c.X, math.Max(c.Y, c.Z))
	minC := math.Min(c.X, math.Min(c.Y, c.Z))
	l = (maxC + minC) / 2

	if maxC == minC {
		return 0, 0, l
	}

	delta := maxC - minC
	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}

	switch maxC {
	case c.X:
		h = (c.Y - c.Z) / delta
		if c.Y < c.Z {
			h += 6
		}
	case c.Y:
		h = (c.Z-c.X)/delta + 2
	default:
		h = (c.X-c.Y)/delta + 4
	}
	return h / 6, s, l
}

// HSLToRGB is the inverse of RGBToHSL
func HSLToRGB(h, s, l float64) Vec3 {
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Vec3{
		X: hueToChannel(p, q, h+1.0/3.0),
		Y: hueToChannel(p, q, h),
		Z: hueToChannel(p, q, h-1.0/3.0),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// Quantize converts a [0, 1] color to 8 bit channels, truncating
func Quantize(c Vec3) (r, g, b uint8) {
	c = c.Clamp(0, 1)
	return uint8(c.X * 255), uint8(c.Y * 255), uint8(c.Z * 255)
}
