package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned by Parse for unrecognized names
var ErrUnknownLayout = errors.New("unknown layout")

// Layout is the storage strategy under test
type Layout int

const (
	SoA Layout = iota // structure of arrays
	AoS               // array of structures
)

// String returns the short name of the layout
func (l Layout) String() string {
	switch l {
	case SoA:
		return "soa"
	case AoS:
		return "aos"
	default:
		return "unknown"
	}
}

// Description returns the long name used in reports
func (l Layout) Description() string {
	switch l {
	case SoA:
		return "Structure of Arrays"
	case AoS:
		return "Array of Structures"
	default:
		return "Unknown"
	}
}

// Parse converts a short name back to a Layout
func Parse(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soa":
		return SoA, nil
	case "aos":
		return AoS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}
