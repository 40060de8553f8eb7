package ecs

import (
	"github.com/younwookim/layoutbench/internal/domain/entity"
	"github.com/younwookim/layoutbench/internal/infrastructure/random"
)

// ParticleWorld holds the kinematics population as nine parallel columns
type ParticleWorld struct {
	// Position
	X, Y, Z []float32
	// Velocity
	VX, VY, VZ []float32
	// Acceleration
	AX, AY, AZ []float32
}

// NewParticleWorld creates an empty world. Call Initialize before use.
func NewParticleWorld() *ParticleWorld {
	return &ParticleWorld{}
}

// Initialize allocates n particles at rest. Positions are drawn x, y, z per
// index from [0,100).
func (w *ParticleWorld) Initialize(n int, seed int64) {
	src := random.New(seed)

	w.X = make([]float32, n)
	w.Y = make([]float32, n)
	w.Z = make([]float32, n)
	w.VX = make([]float32, n)
	w.VY = make([]float32, n)
	w.VZ = make([]float32, n)
	w.AX = make([]float32, n)
	w.AY = make([]float32, n)
	w.AZ = make([]float32, n)

	for i := 0; i < n; i++ {
		w.X[i] = src.Float32(entity.PositionMin, entity.PositionMax)
		w.Y[i] = src.Float32(entity.PositionMin, entity.PositionMax)
		w.Z[i] = src.Float32(entity.PositionMin, entity.PositionMax)
	}
}

// Len returns the population size
func (w *ParticleWorld) Len() int {
	return len(w.X)
}

// Sentinels returns the position of particle 0
func (w *ParticleWorld) Sentinels() []entity.Sentinel {
	if len(w.X) == 0 {
		return nil
	}
	return []entity.Sentinel{
		{Label: "First particle x", Value: w.X[0]},
		{Label: "First particle y", Value: w.Y[0]},
		{Label: "First particle z", Value: w.Z[0]},
	}
}

// Footprint returns the bytes needed for n particles
func (w *ParticleWorld) Footprint(n int) uint64 {
	return uint64(n) * 9 * 4
}
