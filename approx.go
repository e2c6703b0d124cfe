package tcolour

import "math"

// Approximate equality for tests and tolerance-sensitive callers. Plain ==
// on Colour stays exact field-wise comparison; these methods compare every
// channel, alpha included, under an absolute, relative or ULP tolerance.

// Default tolerances.
const (
	Epsilon     = 1e-6
	MaxRelative = 1e-6
	MaxUlps     = 4
)

// AbsDiffEq reports whether every channel of the two colours differs by at
// most epsilon.
func (c Colour) AbsDiffEq(other Colour, epsilon float64) bool {
	return c.AllRGBAWith(other, func(a, b float64) bool {
		return absDiffEq(a, b, epsilon)
	})
}

// RelativeEq reports whether every channel pair is within epsilon absolute
// difference or within maxRelative of the larger magnitude.
func (c Colour) RelativeEq(other Colour, epsilon, maxRelative float64) bool {
	return c.AllRGBAWith(other, func(a, b float64) bool {
		return relativeEq(a, b, epsilon, maxRelative)
	})
}

// UlpsEq reports whether every channel pair is within epsilon absolute
// difference or within maxUlps representable floats of each other.
func (c Colour) UlpsEq(other Colour, epsilon float64, maxUlps uint32) bool {
	return c.AllRGBAWith(other, func(a, b float64) bool {
		return ulpsEq(a, b, epsilon, maxUlps)
	})
}

func absDiffEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func relativeEq(a, b, epsilon, maxRelative float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	if absDiffEq(a, b, epsilon) {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= largest*maxRelative
}

func ulpsEq(a, b, epsilon float64, maxUlps uint32) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if absDiffEq(a, b, epsilon) {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	diff := ia - ib
	if diff < 0 {
		diff = -diff
	}
	return diff <= int64(maxUlps)
}
