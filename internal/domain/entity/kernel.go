package entity

import "math"

// Scalar-field constants
const (
	ValueMin    float32 = 1
	ValueMax    float32 = 100
	ScaleFactor float32 = 0.99
)

// Kinematics constants
const (
	PositionMin float32 = 0
	PositionMax float32 = 100
	Gravity     float32 = -9.8
	Restitution float32 = -0.9

	// Bounds of the reflecting box. Position is never clamped to them.
	LowerBound float32 = 0
	UpperBound float32 = 100
)

// Every product below is wrapped in an explicit float32 conversion so the
// compiler may not fuse it into a multiply-add. Both layouts share these
// helpers and therefore round identically.

// ComputeResult is the first result formula: value*coefficient + sqrt(|value|)
func ComputeResult(value, coefficient float32) float32 {
	return float32(value*coefficient) + Sqrt32(Abs32(value))
}

// BlendResult is the second result formula: result*0.5 + sin(value*0.01)
func BlendResult(result, value float32) float32 {
	return float32(result*0.5) + Sin32(float32(value*0.01))
}

// Square returns v*v rounded to float32
func Square(v float32) float32 {
	return float32(v * v)
}

// Integrate returns x + rate*dt
func Integrate(x, rate, dt float32) float32 {
	return x + float32(rate*dt)
}

// Reflect returns the velocity after the boundary check for one axis.
func Reflect(pos, vel float32) float32 {
	if pos < LowerBound || pos > UpperBound {
		return vel * Restitution
	}
	return vel
}

// Sqrt32 is a correctly rounded float32 square root.
func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin32 evaluates sine in float64 and rounds to float32.
func Sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Abs32 clears the sign bit.
func Abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
