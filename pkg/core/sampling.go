package core

import "math/rand/v2"

// Sampler yields the jitter offsets of one image row
type Sampler interface {
	Get2D() Vec2
}

// RowSampler draws from a PCG stream seeded per row
type RowSampler struct {
	random *rand.Rand
}

// NewRowSampler returns a sampler whose sequence depends only on seed and row,
// so a row renders identically no matter which worker picks it up.
func NewRowSampler(seed uint64, row int) *RowSampler {
	return &RowSampler{random: rand.New(rand.NewPCG(seed, uint64(row)))}
}

// Get2D returns two values in [0, 1)
func (r *RowSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Jitter maps a 2D sample in [0, 1)^2 to a pixel offset in [-0.5, 0.5)^2
func Jitter(sample Vec2) Vec2 {
	return NewVec2(sample.X-0.5, sample.Y-0.5)
}
