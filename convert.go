package tcolour

import (
	"errors"
	"fmt"
)

// Slice construction errors. A colour needs 3 channels (alpha defaults to 1)
// or 4 (explicit alpha); anything else is rejected.
var (
	ErrTooManyElements   = errors.New("too many elements")
	ErrNotEnoughElements = errors.New("not enough elements")
)

// FromFloats builds a colour from a variable-length float slice. Three
// elements default alpha to 1, four set it explicitly.
func FromFloats(values []float64) (Colour, error) {
	switch {
	case len(values) > 4:
		return Colour{}, fmt.Errorf("colour from %d floats: %w", len(values), ErrTooManyElements)
	case len(values) < 3:
		return Colour{}, fmt.Errorf("colour from %d floats: %w", len(values), ErrNotEnoughElements)
	case len(values) == 3:
		return Solid(values[0], values[1], values[2]), nil
	}
	return New(values[0], values[1], values[2], values[3]), nil
}

// FromBytes builds a colour from a variable-length 8-bit slice, normalising
// each channel by 255. Three elements default alpha to 1, four set it
// explicitly.
func FromBytes(values []uint8) (Colour, error) {
	switch {
	case len(values) > 4:
		return Colour{}, fmt.Errorf("colour from %d bytes: %w", len(values), ErrTooManyElements)
	case len(values) < 3:
		return Colour{}, fmt.Errorf("colour from %d bytes: %w", len(values), ErrNotEnoughElements)
	case len(values) == 3:
		return FromUint8(values[0], values[1], values[2]), nil
	}
	return FromUint8RGBA(values[0], values[1], values[2], values[3]), nil
}

// FromArray3 builds an opaque colour from a fixed RGB array.
func FromArray3(values [3]float64) Colour {
	return Solid(values[0], values[1], values[2])
}

// FromArray4 builds a colour from a fixed RGBA array.
func FromArray4(values [4]float64) Colour {
	return New(values[0], values[1], values[2], values[3])
}

// FromByteArray3 builds an opaque colour from a fixed 8-bit RGB array.
func FromByteArray3(values [3]uint8) Colour {
	return FromUint8(values[0], values[1], values[2])
}

// FromByteArray4 builds a colour from a fixed 8-bit RGBA array.
func FromByteArray4(values [4]uint8) Colour {
	return FromUint8RGBA(values[0], values[1], values[2], values[3])
}

// channelUint8 scales a channel to 8-bit, saturating outside [0,1].
// NaN maps to 0.
func channelUint8(v float64) uint8 {
	v *= 255
	if v >= 255 {
		return 255
	}
	if v > 0 {
		return uint8(v)
	}
	return 0
}

// Uint8 converts the colour channels to 8-bit values.
//
// The alpha is not composited into the channels; use Uint8RGBA to retrieve
// it alongside them.
func (c Colour) Uint8() (r, g, b uint8) {
	return channelUint8(c.R), channelUint8(c.G), channelUint8(c.B)
}

// Uint8RGBA converts all channels, alpha included, to 8-bit values.
func (c Colour) Uint8RGBA() (r, g, b, a uint8) {
	r, g, b = c.Uint8()
	return r, g, b, channelUint8(c.A)
}

// Array4 returns the channels as a fixed RGBA array.
func (c Colour) Array4() [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

// Floats returns the channels as an RGBA slice.
func (c Colour) Floats() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// Bytes returns the channels as an 8-bit RGBA slice.
func (c Colour) Bytes() []uint8 {
	r, g, b, a := c.Uint8RGBA()
	return []uint8{r, g, b, a}
}
