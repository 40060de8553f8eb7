// Package random provides the seeded uniform source used to build populations.
package random

import (
	"math"
	"math/rand"
)

// Uniform draws float32 values from a seeded, deterministic sequence.
// It is not safe for concurrent use; each engine owns its own.
type Uniform struct {
	rng *rand.Rand
}

// New creates a uniform source for the given seed
func New(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Float32 returns a value in [lo, hi).
func (u *Uniform) Float32(lo, hi float32) float32 {
	v := lo + float32((hi-lo)*u.rng.Float32())
	// lo + (hi-lo)*f can round up to hi for f close to 1
	if v >= hi {
		v = math.Nextafter32(hi, lo)
	}
	return v
}
