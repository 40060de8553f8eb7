package entity

// Sentinel is a final value read back after a run so the work cannot be
// elided. Values are always taken from entity index 0.
type Sentinel struct {
	Label string
	Value float32
}
