package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeResult(t *testing.T) {
	tests := []struct {
		name        string
		value       float32
		coefficient float32
		want        float32
	}{
		{"positive", 2, 1, 2 + float32(math.Sqrt2)},
		{"zero", 0, 1, 0},
		{"negative uses abs for sqrt", -4, 1, -2},
		{"perfect square", 9, 3, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeResult(tt.value, tt.coefficient), 1e-5)
		})
	}
}

func TestBlendResult(t *testing.T) {
	// 3.4142135*0.5 + sin(0.02)
	got := BlendResult(2+float32(math.Sqrt2), 2)
	assert.InDelta(t, 1.7271, got, 1e-4)

	assert.Equal(t, float32(0), BlendResult(0, 0))
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		pos  float32
		vel  float32
		want float32
	}{
		{"inside", 50, 3, 3},
		{"on lower bound", 0, 3, 3},
		{"on upper bound", 100, 3, 3},
		{"below", -0.001, -2, -2 * Restitution},
		{"above", 100.5, 10, 10 * Restitution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reflect(tt.pos, tt.vel))
		})
	}
}

func TestIntegrate(t *testing.T) {
	assert.InDelta(t, -0.1568, Integrate(0, Gravity, 0.016), 1e-6)
	assert.Equal(t, float32(5), Integrate(5, 0, 0.016))
}

func TestAbs32(t *testing.T) {
	assert.Equal(t, float32(4), Abs32(-4))
	assert.Equal(t, float32(4), Abs32(4))
	assert.Equal(t, math.Float32bits(0), math.Float32bits(Abs32(float32(math.Copysign(0, -1)))))
	assert.True(t, math.IsNaN(float64(Abs32(float32(math.NaN())))))
}

func TestSquare(t *testing.T) {
	assert.InDelta(t, 15.6816, Square(-3.96), 1e-4)
	assert.Equal(t, float32(0), Square(0))
}
