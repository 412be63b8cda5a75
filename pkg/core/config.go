package core

// Epsilons are the scene-scale tolerances used to avoid self intersection
// and degenerate box classification.
type Epsilons struct {
	// ShadowThreshold is the minimum t accepted for shadow and secondary rays
	ShadowThreshold float64
	// BounceOffset moves a bounce ray origin off the surface it left
	BounceOffset float64
	// BoundaryNudge widens a BVH box when a point lies exactly on its face
	BoundaryNudge float64
}

// DefaultEpsilons returns tolerances suited to scenes of roughly unit scale
func DefaultEpsilons() Epsilons {
	return Epsilons{
		ShadowThreshold: 1e-4,
		BounceOffset:    1e-4,
		BoundaryNudge:   1e-3,
	}
}

// RenderMode selects how a hit is turned into a color
type RenderMode int

const (
	// ModePhong shades hits with Phong lighting, shadows, reflection and refraction
	ModePhong RenderMode = iota
	// ModeBinary paints every hit with a fixed color
	ModeBinary
)

// ParseRenderMode maps a mode name to a RenderMode. Unknown names fall back to phong.
func ParseRenderMode(name string) RenderMode {
	if name == "binary" {
		return ModeBinary
	}
	return ModePhong
}

func (m RenderMode) String() string {
	if m == ModeBinary {
		return "binary"
	}
	return "phong"
}
