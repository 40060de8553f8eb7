package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/layoutbench/internal/ecs"
)

func bits(v float32) uint32 { return math.Float32bits(v) }

// =============================================================================
// Scalar field: ecs.ScalarWorld (SoA) vs ElementSystem (AoS)
// =============================================================================

func TestScalarLayouts_SameInitialPopulation(t *testing.T) {
	soa := ecs.NewScalarWorld()
	aos := NewElementSystem()
	soa.Initialize(1000, 42)
	aos.Initialize(1000, 42)

	for i, e := range aos.Elements {
		require.Equal(t, bits(soa.Values[i]), bits(e.Value), "value %d", i)
		require.Equal(t, bits(soa.Coefficients[i]), bits(e.Coefficient), "coefficient %d", i)
	}
}

func TestScalarLayouts_EquivalentEveryIteration(t *testing.T) {
	const n = 2000

	soa := ecs.NewScalarWorld()
	aos := NewElementSystem()
	soa.Initialize(n, 42)
	aos.Initialize(n, 42)

	for k := 1; k <= 5; k++ {
		soa.RunIteration(0)
		aos.RunIteration(0)

		s, a := soa.Sentinels(), aos.Sentinels()
		require.Len(t, a, len(s))
		for j := range s {
			assert.Equal(t, s[j].Label, a[j].Label)
			assert.Equal(t, bits(s[j].Value), bits(a[j].Value), "iteration %d sentinel %q", k, s[j].Label)
		}

		for i, e := range aos.Elements {
			require.Equal(t, bits(soa.Values[i]), bits(e.Value), "iteration %d value %d", k, i)
			require.Equal(t, bits(soa.Results[i]), bits(e.Result), "iteration %d result %d", k, i)
		}
	}
}

// =============================================================================
// Kinematics: ecs.ParticleWorld (SoA) vs ParticleSystem (AoS)
// =============================================================================

func TestParticleLayouts_EquivalentEveryIteration(t *testing.T) {
	const n = 2000

	soa := ecs.NewParticleWorld()
	aos := NewParticleSystem()
	soa.Initialize(n, 42)
	aos.Initialize(n, 42)

	done := 0
	for _, k := range []int{1, 2, 5, 50, 400} {
		for ; done < k; done++ {
			soa.RunIteration(testDT)
			aos.RunIteration(testDT)
		}

		for i, p := range aos.Particles {
			require.Equal(t, bits(soa.X[i]), bits(p.X), "iteration %d x %d", k, i)
			require.Equal(t, bits(soa.Y[i]), bits(p.Y), "iteration %d y %d", k, i)
			require.Equal(t, bits(soa.Z[i]), bits(p.Z), "iteration %d z %d", k, i)
			require.Equal(t, bits(soa.VX[i]), bits(p.VX), "iteration %d vx %d", k, i)
			require.Equal(t, bits(soa.VY[i]), bits(p.VY), "iteration %d vy %d", k, i)
			require.Equal(t, bits(soa.VZ[i]), bits(p.VZ), "iteration %d vz %d", k, i)
			require.Equal(t, bits(soa.AY[i]), bits(p.AY), "iteration %d ay %d", k, i)
		}
	}
}
