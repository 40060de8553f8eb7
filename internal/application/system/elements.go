package system

import (
	"unsafe"

	"github.com/younwookim/layoutbench/internal/domain/entity"
	"github.com/younwookim/layoutbench/internal/infrastructure/random"
)

// ElementSystem runs the scalar-field scenario over one slice of records
type ElementSystem struct {
	Elements []entity.Element
}

// NewElementSystem creates an empty system. Call Initialize before use.
func NewElementSystem() *ElementSystem {
	return &ElementSystem{}
}

// Initialize allocates n elements, drawing value then coefficient for each
// from [1,100).
func (s *ElementSystem) Initialize(n int, seed int64) {
	src := random.New(seed)

	s.Elements = make([]entity.Element, n)
	for i := range s.Elements {
		value := src.Float32(entity.ValueMin, entity.ValueMax)
		coefficient := src.Float32(entity.ValueMin, entity.ValueMax)
		s.Elements[i] = entity.NewElement(value, coefficient)
	}
}

// Len returns the population size
func (s *ElementSystem) Len() int {
	return len(s.Elements)
}

// RunIteration makes four traversals: compute, scale, max squared, normalize.
// dt is unused.
func (s *ElementSystem) RunIteration(dt float32) {
	elements := s.Elements

	for i := range elements {
		elements[i].Compute()
	}

	for i := range elements {
		elements[i].Scale(entity.ScaleFactor)
	}

	var maxSq float32
	for i := range elements {
		if sq := elements[i].Squared(); sq > maxSq {
			maxSq = sq
		}
	}

	if !(maxSq > 0) {
		return
	}
	divisor := entity.Sqrt32(maxSq)
	for i := range elements {
		elements[i].NormalizeBy(divisor)
	}
}

// Sentinels returns result and value of element 0
func (s *ElementSystem) Sentinels() []entity.Sentinel {
	if len(s.Elements) == 0 {
		return nil
	}
	e := s.Elements[0]
	return []entity.Sentinel{
		{Label: "First element result", Value: e.Result},
		{Label: "First element value", Value: e.Value},
	}
}

// Footprint returns the bytes needed for n elements
func (s *ElementSystem) Footprint(n int) uint64 {
	return uint64(n) * uint64(unsafe.Sizeof(entity.Element{}))
}
