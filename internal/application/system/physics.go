package system

import (
	"unsafe"

	"github.com/younwookim/layoutbench/internal/domain/entity"
	"github.com/younwookim/layoutbench/internal/infrastructure/random"
)

// ParticleSystem runs the kinematics scenario over one slice of records
type ParticleSystem struct {
	Particles []entity.Particle
}

// NewParticleSystem creates an empty system. Call Initialize before use.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Initialize allocates n particles at rest, drawing x, y, z per particle
// from [0,100).
func (s *ParticleSystem) Initialize(n int, seed int64) {
	src := random.New(seed)

	s.Particles = make([]entity.Particle, n)
	for i := range s.Particles {
		x := src.Float32(entity.PositionMin, entity.PositionMax)
		y := src.Float32(entity.PositionMin, entity.PositionMax)
		z := src.Float32(entity.PositionMin, entity.PositionMax)
		s.Particles[i] = entity.NewParticle(x, y, z)
	}
}

// Len returns the population size
func (s *ParticleSystem) Len() int {
	return len(s.Particles)
}

// RunIteration applies gravity to every particle, then updates every particle
func (s *ParticleSystem) RunIteration(dt float32) {
	particles := s.Particles

	for i := range particles {
		particles[i].ApplyGravity()
	}
	for i := range particles {
		particles[i].Update(dt)
	}
}

// Sentinels returns the position of particle 0
func (s *ParticleSystem) Sentinels() []entity.Sentinel {
	if len(s.Particles) == 0 {
		return nil
	}
	p := s.Particles[0]
	return []entity.Sentinel{
		{Label: "First particle x", Value: p.X},
		{Label: "First particle y", Value: p.Y},
		{Label: "First particle z", Value: p.Z},
	}
}

// Footprint returns the bytes needed for n particles
func (s *ParticleSystem) Footprint(n int) uint64 {
	return uint64(n) * uint64(unsafe.Sizeof(entity.Particle{}))
}
