package tcolour

import "math"

// BlendMode selects the channel formula used by Blend before alpha
// compositing. The set is closed; dispatch in Blend is exhaustive.
type BlendMode uint8

const (
	// BlendNormal does not blend, it just composes the colours.
	BlendNormal BlendMode = iota

	BlendMultiply
	BlendDivide
	BlendAddition
	BlendSubtract

	BlendScreen
	BlendOverlay
	BlendHardLight
	BlendSoftLight

	BlendDarken
	BlendLighten
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendDivide:
		return "Divide"
	case BlendAddition:
		return "Addition"
	case BlendSubtract:
		return "Subtract"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	}
	return "Unknown"
}

// Blend combines two colours with the given blend mode, then composites the
// blended colour onto the base using "over" alpha compositing.
//
// The receiver is the base layer and other the blend layer; use BlendOnto to
// swap the roles. Channel values are not normalised on return if either input
// is out of range. The blended channels are cleaned before compositing to
// suppress divide artifacts from modes like Divide and the inversions in
// Screen; the composite quotient itself is not re-cleaned, so a zero
// composite alpha leaks non-finite channels to the caller.
func (c Colour) Blend(other Colour, mode BlendMode) Colour {
	var blended Colour
	switch mode {
	case BlendNormal:
		blended = other
	case BlendAddition:
		blended = c.Add(other)
	case BlendSubtract:
		blended = c.Sub(other)
	case BlendMultiply:
		blended = c.Mul(other)
	case BlendDivide:
		blended = c.Div(other)
	case BlendDarken:
		blended = c.MapWith(other, math.Min)
	case BlendLighten:
		blended = c.MapWith(other, math.Max)
	case BlendScreen:
		blended = c.Inverted().Mul(other.Inverted()).Inverted()
	case BlendOverlay:
		blended = c.MapWith(other, overlayChannel)
	case BlendHardLight:
		blended = other.Blend(c, BlendOverlay)
	case BlendSoftLight:
		blended = c.Mul(other.Inverted().Mul(other.Inverted()).Inverted()).
			Add(c.Inverted().Mul(other))
	}
	blended = blended.Cleaned()

	alpha := other.A + c.A*(1-other.A)
	return blended.MulScalar(other.A).
		Add(c.MulScalar(c.A).MulScalar(1 - other.A)).
		DivScalar(alpha).
		WithAlpha(alpha)
}

// overlayChannel darkens below mid-grey (multiply) and lightens above it
// (screen), keyed on the base channel.
func overlayChannel(base, blend float64) float64 {
	if base < 0.5 {
		return 2 * blend * base
	}
	return 1 - 2*(1-base)*(1-blend)
}

// BlendOnto blends with the roles swapped: the receiver is the blend layer
// and other the base.
func (c Colour) BlendOnto(other Colour, mode BlendMode) Colour {
	return other.Blend(c, mode)
}

// Compose alpha-composites other over the receiver. Identical to blending
// with BlendNormal.
func (c Colour) Compose(other Colour) Colour {
	return c.Blend(other, BlendNormal)
}

// ComposeOnto alpha-composites the receiver over other. Identical to
// blending onto with BlendNormal.
func (c Colour) ComposeOnto(other Colour) Colour {
	return c.BlendOnto(other, BlendNormal)
}
