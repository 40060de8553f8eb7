// Package ecs holds the column-oriented (structure of arrays) engines.
// Every attribute lives in its own slice and every pass is a full traversal
// of the slices it touches before the next pass begins.
package ecs

import (
	"github.com/younwookim/layoutbench/internal/domain/entity"
	"github.com/younwookim/layoutbench/internal/infrastructure/random"
)

// ScalarWorld holds the scalar-field population as three parallel columns
type ScalarWorld struct {
	Values       []float32
	Coefficients []float32
	Results      []float32
}

// NewScalarWorld creates an empty world. Call Initialize before use.
func NewScalarWorld() *ScalarWorld {
	return &ScalarWorld{}
}

// Initialize allocates n entities. Value and coefficient are drawn in that
// order for each index from [1,100); results start at zero.
func (w *ScalarWorld) Initialize(n int, seed int64) {
	src := random.New(seed)

	w.Values = make([]float32, n)
	w.Coefficients = make([]float32, n)
	w.Results = make([]float32, n)
	for i := 0; i < n; i++ {
		w.Values[i] = src.Float32(entity.ValueMin, entity.ValueMax)
		w.Coefficients[i] = src.Float32(entity.ValueMin, entity.ValueMax)
	}
}

// Len returns the population size
func (w *ScalarWorld) Len() int {
	return len(w.Values)
}

// RunIteration runs compute, scale, reduction and normalize. dt is unused.
func (w *ScalarWorld) RunIteration(dt float32) {
	w.Compute()
	w.Scale(entity.ScaleFactor)
	w.Normalize(w.MaxSquared())
}

// Compute fills Results in two passes
func (w *ScalarWorld) Compute() {
	values, coefficients, results := w.Values, w.Coefficients, w.Results

	for i := range results {
		results[i] = entity.ComputeResult(values[i], coefficients[i])
	}
	for i := range results {
		results[i] = entity.BlendResult(results[i], values[i])
	}
}

// Scale multiplies every value by factor
func (w *ScalarWorld) Scale(factor float32) {
	values := w.Values
	for i := range values {
		values[i] *= factor
	}
}

// MaxSquared returns the largest squared value, or 0 for an empty world.
func (w *ScalarWorld) MaxSquared() float32 {
	var maxSq float32
	for _, v := range w.Values {
		if sq := entity.Square(v); sq > maxSq {
			maxSq = sq
		}
	}
	return maxSq
}

// Normalize divides every value by sqrt(maxSquared).
// Nothing happens unless maxSquared > 0.
func (w *ScalarWorld) Normalize(maxSquared float32) {
	if !(maxSquared > 0) {
		return
	}
	divisor := entity.Sqrt32(maxSquared)
	values := w.Values
	for i := range values {
		values[i] /= divisor
	}
}

// Sentinels returns result and value of entity 0
func (w *ScalarWorld) Sentinels() []entity.Sentinel {
	if len(w.Values) == 0 {
		return nil
	}
	return []entity.Sentinel{
		{Label: "First element result", Value: w.Results[0]},
		{Label: "First element value", Value: w.Values[0]},
	}
}

// Footprint returns the bytes needed for n entities
func (w *ScalarWorld) Footprint(n int) uint64 {
	return uint64(n) * 3 * 4
}
