// Package bench times repeated iterations of a layout engine.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/layoutbench/internal/application/layout"
	"github.com/younwookim/layoutbench/internal/domain/entity"
)

// ErrInvalidParams is returned by Params.Validate
var ErrInvalidParams = errors.New("invalid benchmark parameters")

// Engine is one scenario implemented in one layout
type Engine interface {
	// Initialize allocates and fills a population of n from seed
	Initialize(n int, seed int64)
	// RunIteration performs one full update of the population
	RunIteration(dt float32)
	// Sentinels reads final values from entity 0
	Sentinels() []entity.Sentinel
	// Footprint returns the storage bytes for n entities
	Footprint(n int) uint64
}

// Params are the fixed inputs of a run
type Params struct {
	Scenario   string
	Title      string
	Noun       string
	Layout     layout.Layout
	Population int
	Iterations int
	Seed       int64
	DT         float32
}

// Validate checks population and iteration counts
func (p Params) Validate() error {
	if p.Population <= 0 {
		return fmt.Errorf("%w: population must be positive, got %d", ErrInvalidParams, p.Population)
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidParams, p.Iterations)
	}
	return nil
}

// Result is the outcome of a run
type Result struct {
	Params       Params
	StartTime    time.Time
	Elapsed      time.Duration
	PerIteration time.Duration
	Sentinels    []entity.Sentinel
}

// ElapsedMs returns the total time in milliseconds
func (r Result) ElapsedMs() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// PerIterationMs returns the time per iteration in milliseconds
func (r Result) PerIterationMs() float64 {
	return float64(r.PerIteration) / float64(time.Millisecond)
}

// Run initializes e once and times exactly p.Iterations calls to RunIteration.
// p must be valid.
func Run(e Engine, p Params) Result {
	e.Initialize(p.Population, p.Seed)

	start := time.Now()
	for i := 0; i < p.Iterations; i++ {
		e.RunIteration(p.DT)
	}
	elapsed := time.Since(start)

	return Result{
		Params:       p,
		StartTime:    start,
		Elapsed:      elapsed,
		PerIteration: elapsed / time.Duration(p.Iterations),
		Sentinels:    e.Sentinels(),
	}
}
