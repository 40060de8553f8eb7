package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParticle(t *testing.T) {
	p := NewParticle(1, 2, 3)

	assert.Equal(t, Particle{X: 1, Y: 2, Z: 3}, p)
}

func TestParticle_ApplyGravity(t *testing.T) {
	p := Particle{AX: 0, AY: 42, AZ: 0}
	p.ApplyGravity()

	assert.Equal(t, Gravity, p.AY)
	assert.Equal(t, float32(0), p.AX)
	assert.Equal(t, float32(0), p.AZ)
}

// TestParticle_Update_OneStep follows a particle at rest in the middle of the box
func TestParticle_Update_OneStep(t *testing.T) {
	p := NewParticle(50, 50, 50)
	p.ApplyGravity()
	p.Update(0.016)

	assert.InDelta(t, -0.1568, p.VY, 1e-6)
	assert.InDelta(t, 49.99749, p.Y, 1e-4)
	assert.Equal(t, float32(50), p.X)
	assert.Equal(t, float32(50), p.Z)
	assert.Equal(t, float32(0), p.VX)
	assert.Equal(t, float32(0), p.VZ)
}

func TestParticle_Update_Reflects(t *testing.T) {
	tests := []struct {
		name    string
		p       Particle
		wantVX  float32
		checkVX bool
		wantVY  float32
		checkVY bool
	}{
		{
			name:    "crosses upper x bound",
			p:       Particle{X: 99.99, Y: 50, Z: 50, VX: 10},
			wantVX:  10 * Restitution,
			checkVX: true,
		},
		{
			name:    "crosses lower y bound",
			p:       Particle{X: 50, Y: 0.0001, Z: 50, AY: Gravity},
			wantVY:  Integrate(0, Gravity, 0.016) * Restitution,
			checkVY: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			p.Update(0.016)
			if tt.checkVX {
				assert.Equal(t, tt.wantVX, p.VX)
				assert.Greater(t, p.X, UpperBound, "position is not clamped")
			}
			if tt.checkVY {
				assert.Equal(t, tt.wantVY, p.VY)
				assert.Less(t, p.Y, LowerBound, "position is not clamped")
			}
		})
	}
}
