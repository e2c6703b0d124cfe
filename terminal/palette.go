// Package terminal adapts tcolour values to and from tcell's colour model:
// named colours, the xterm-256 indexed palette (ANSI 0-15, the 6x6x6 colour
// cube and the greyscale ramp) and direct 24-bit RGB.
//
// The RGB direction round-trips exactly; the indexed direction is lossy and
// reconstructs via nearest-palette matching.
package terminal

import (
	"github.com/lixenwraith/tcolour"
	"github.com/lucasb-eyer/go-colorful"
)

// xterm 256-colour layout:
//
//	0-15    ANSI colours (bit 0 red, bit 1 green, bit 2 blue; 8-15 bright)
//	16-231  colour cube, index = 16 + 36*r + 6*g + b with r,g,b in [0,5]
//	232-255 greyscale ramp, level = 8 + 10*(index-232)

// grayscaleStart is the first greyscale ramp index.
const grayscaleStart = 232

// Cube256 returns the palette index for a colour cube coordinate.
// r, g, b must be in [0,5]; values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the cube coordinates for a colour cube index.
// Index must be in [16,231]; out-of-range indices return (0,0,0).
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	return n / 36, (n % 36) / 6, n % 6
}

// Gray256 returns the palette index for a greyscale ramp step.
// step must be in [0,23]; larger steps are clamped.
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return grayscaleStart + step
}

// ansiChannel resolves one channel of an ANSI 0-15 entry: off, on, or the
// bright base level when the bright bit is set.
func ansiChannel(on bool, bright bool) uint8 {
	switch {
	case on:
		return 255
	case bright:
		return 128
	}
	return 0
}

// FromPalette256 decodes an xterm-256 palette index to a colour.
//
// ANSI 0-7 are the primaries plus gray (169), 8-15 their bright variants,
// 16-231 the colour cube with channel levels of coord*51, and 232-255 the
// greyscale ramp.
func FromPalette256(index uint8) tcolour.Colour {
	switch {
	case index == 7:
		return tcolour.FromUint8(169, 169, 169)
	case index < 8:
		return tcolour.FromUint8(
			ansiChannel(index&0b001 != 0, false),
			ansiChannel(index&0b010 != 0, false),
			ansiChannel(index&0b100 != 0, false),
		)
	case index < 16:
		return tcolour.FromUint8(
			ansiChannel(index&0b001 != 0, true),
			ansiChannel(index&0b010 != 0, true),
			ansiChannel(index&0b100 != 0, true),
		)
	case index < grayscaleStart:
		r, g, b := CubeRGB256(index)
		return tcolour.FromUint8(r*51, g*51, b*51)
	}
	gray := 8 + (index-grayscaleStart)*10
	return tcolour.FromUint8(gray, gray, gray)
}

// ToPalette256 returns the nearest palette index in [16,255] for a colour,
// by RGB distance against the decoded palette. The ANSI 0-15 block is
// skipped since the cube and ramp cover the same colours; the mapping is the
// lossy direction of the adapter.
func ToPalette256(c tcolour.Colour) uint8 {
	target := toColorful(c)
	best := uint8(16)
	bestDist := target.DistanceRgb(toColorful(FromPalette256(16)))
	for i := 17; i < 256; i++ {
		d := target.DistanceRgb(toColorful(FromPalette256(uint8(i))))
		if d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// toColorful converts to a go-colorful colour for distance math, clamping
// into the unit range colorful expects. Alpha is dropped.
func toColorful(c tcolour.Colour) colorful.Color {
	c = c.Clamped()
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex formats the colour as a #rrggbb string, clamped, alpha dropped.
func Hex(c tcolour.Colour) string {
	return toColorful(c).Hex()
}
