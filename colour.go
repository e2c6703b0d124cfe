package tcolour

import "math"

// Colour is a four-channel RGBA colour with float64 channels.
//
// Channels carry no inherent range invariant: values may exceed [0,1] or go
// negative during arithmetic. Validity is enforced on demand via Clamped,
// Normalised or Cleaned, never automatically.
type Colour struct {
	R, G, B, A float64
}

// New creates a colour from explicit channel values.
func New(r, g, b, a float64) Colour {
	return Colour{R: r, G: g, B: b, A: a}
}

// Solid creates a fully opaque colour (alpha 1).
func Solid(r, g, b float64) Colour {
	return New(r, g, b, 1)
}

// Grey creates a solid greyscale colour.
func Grey(grey float64) Colour {
	return Solid(grey, grey, grey)
}

// Red creates a solid red colour.
func Red(red float64) Colour {
	return Solid(red, 0, 0)
}

// Green creates a solid green colour.
func Green(green float64) Colour {
	return Solid(0, green, 0)
}

// Blue creates a solid blue colour.
func Blue(blue float64) Colour {
	return Solid(0, 0, blue)
}

// Transparent returns RGBA(0, 0, 0, 0).
func Transparent() Colour {
	return Colour{}
}

// FromUint8 creates an opaque colour by normalising 8-bit channels.
func FromUint8(r, g, b uint8) Colour {
	return Solid(float64(r)/255, float64(g)/255, float64(b)/255)
}

// FromUint8RGBA creates a colour by normalising 8-bit channels including alpha.
func FromUint8RGBA(r, g, b, a uint8) Colour {
	return FromUint8(r, g, b).WithAlpha(float64(a) / 255)
}

// WithRed returns the colour with red set to the given value.
func (c Colour) WithRed(red float64) Colour {
	c.R = red
	return c
}

// WithGreen returns the colour with green set to the given value.
func (c Colour) WithGreen(green float64) Colour {
	c.G = green
	return c
}

// WithBlue returns the colour with blue set to the given value.
func (c Colour) WithBlue(blue float64) Colour {
	c.B = blue
	return c
}

// WithAlpha returns the colour with alpha set to the given value.
func (c Colour) WithAlpha(alpha float64) Colour {
	c.A = alpha
	return c
}

// Apply changes each colour channel in place, excluding alpha.
func (c *Colour) Apply(fn func(v *float64)) {
	fn(&c.R)
	fn(&c.G)
	fn(&c.B)
}

// ApplyRGBA changes each channel in place, including alpha.
func (c *Colour) ApplyRGBA(fn func(v *float64)) {
	c.Apply(fn)
	fn(&c.A)
}

// Map returns a colour with each colour channel transformed, alpha kept.
func (c Colour) Map(fn func(v float64) float64) Colour {
	return New(fn(c.R), fn(c.G), fn(c.B), c.A)
}

// MapRGBA returns a colour with each channel transformed, including alpha.
func (c Colour) MapRGBA(fn func(v float64) float64) Colour {
	return New(fn(c.R), fn(c.G), fn(c.B), fn(c.A))
}

// MapWith combines the colour channels of two colours pairwise, keeping the
// receiver's alpha.
func (c Colour) MapWith(other Colour, fn func(a, b float64) float64) Colour {
	return New(fn(c.R, other.R), fn(c.G, other.G), fn(c.B, other.B), c.A)
}

// MapRGBAWith combines all channels of two colours pairwise, including alpha.
func (c Colour) MapRGBAWith(other Colour, fn func(a, b float64) float64) Colour {
	return New(fn(c.R, other.R), fn(c.G, other.G), fn(c.B, other.B), fn(c.A, other.A))
}

// All reports whether the predicate holds for every colour channel.
func (c Colour) All(pred func(v float64) bool) bool {
	return pred(c.R) && pred(c.G) && pred(c.B)
}

// AllRGBA reports whether the predicate holds for every channel including alpha.
func (c Colour) AllRGBA(pred func(v float64) bool) bool {
	return c.All(pred) && pred(c.A)
}

// AllWith reports whether the predicate holds pairwise for the colour
// channels of both colours.
func (c Colour) AllWith(other Colour, pred func(a, b float64) bool) bool {
	return pred(c.R, other.R) && pred(c.G, other.G) && pred(c.B, other.B)
}

// AllRGBAWith reports whether the predicate holds pairwise for all channels
// of both colours, including alpha.
func (c Colour) AllRGBAWith(other Colour, pred func(a, b float64) bool) bool {
	return c.AllWith(other, pred) && pred(c.A, other.A)
}

// MaxChannel returns the highest channel value, alpha included.
func (c Colour) MaxChannel() float64 {
	return math.Max(c.R, math.Max(c.G, math.Max(c.B, c.A)))
}

// MinChannel returns the lowest channel value, alpha included.
func (c Colour) MinChannel() float64 {
	return math.Min(c.R, math.Min(c.G, math.Min(c.B, c.A)))
}

// Inverted flips each colour channel by 1-v, alpha untouched.
func (c Colour) Inverted() Colour {
	return c.ScalarSub(1)
}

// Invert flips each colour channel by 1-v in place, alpha untouched.
func (c *Colour) Invert() {
	*c = c.Inverted()
}

// isNormal reports whether v is a normal float: not zero, subnormal, NaN or
// infinite. Mirrors the exponent-field check so subnormals are caught without
// a magnitude compare.
func isNormal(v float64) bool {
	exp := math.Float64bits(v) >> 52 & 0x7ff
	return exp != 0 && exp != 0x7ff
}

// Cleaned replaces every non-normal channel value (zero, subnormal, NaN,
// infinite) with 1, the usual intended result for divisions by zero.
func (c Colour) Cleaned() Colour {
	return c.MapRGBA(func(v float64) float64 {
		if !isNormal(v) {
			return 1
		}
		return v
	})
}

// Clean replaces every non-normal channel value with 1 in place.
func (c *Colour) Clean() {
	c.ApplyRGBA(func(v *float64) {
		if !isNormal(*v) {
			*v = 1
		}
	})
}

// Clamped clamps all channels, alpha included, to [0,1].
func (c Colour) Clamped() Colour {
	return c.MapRGBA(clamp01)
}

// Clamp clamps all channels to [0,1] in place.
func (c *Colour) Clamp() {
	c.ApplyRGBA(func(v *float64) { *v = clamp01(*v) })
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalise rescales all channels, alpha included, by the colour's own
// range. The range only ever stretches outward: the observed maximum is
// raised to at least 1 and the minimum lowered to at most 0, so a colour
// already inside [0,1] is untouched and out-of-range channels are compressed
// in without shifting in-range ones artificially.
func (c *Colour) Normalise() {
	max := math.Max(c.MaxChannel(), 1)
	min := math.Min(c.MinChannel(), 0)
	if min >= 0 && max <= 1 {
		return
	}
	c.ApplyRGBA(func(v *float64) { *v = (*v - min) / (max - min) })
}

// Normalised returns the colour rescaled by its own channel range, a no-op
// for colours already inside [0,1]. See Normalise.
func (c Colour) Normalised() Colour {
	c.Normalise()
	return c
}

// Lerp linearly interpolates between two colours, every channel including
// alpha, using the same t.
func (c Colour) Lerp(other Colour, t float64) Colour {
	return c.MapRGBAWith(other, func(a, b float64) float64 {
		return a + (b-a)*t
	})
}
