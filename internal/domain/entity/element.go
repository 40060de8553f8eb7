package entity

// Element is one scalar-field entity stored as a single record (AoS).
type Element struct {
	Value       float32
	Coefficient float32
	Result      float32
}

// NewElement creates an element with a zero result
func NewElement(value, coefficient float32) Element {
	return Element{Value: value, Coefficient: coefficient}
}

// Compute recomputes Result from Value and Coefficient.
func (e *Element) Compute() {
	e.Result = ComputeResult(e.Value, e.Coefficient)
	e.Result = BlendResult(e.Result, e.Value)
}

// Scale multiplies Value by factor
func (e *Element) Scale(factor float32) {
	e.Value *= factor
}

// Squared returns Value squared
func (e *Element) Squared() float32 {
	return Square(e.Value)
}

// NormalizeBy divides Value by divisor. Callers guard against a zero divisor.
func (e *Element) NormalizeBy(divisor float32) {
	e.Value /= divisor
}
