package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tcolour"
)

// FromTcell converts a tcell colour to a Colour.
//
// RGB colours convert directly. Palette numbers below 256 (the ANSI block,
// colour cube and greyscale ramp) decode with FromPalette256. tcell numbers
// its named colours into the same space, so a named constant decodes as the
// palette entry it aliases. Invalid or default colours map to opaque black.
func FromTcell(c tcell.Color) tcolour.Colour {
	if !c.Valid() {
		return tcolour.FromUint8(0, 0, 0)
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcolour.FromUint8(uint8(r), uint8(g), uint8(b))
	}
	num := int64(c &^ (tcell.ColorValid | tcell.ColorSpecial))
	if num < 256 {
		return FromPalette256(uint8(num))
	}
	if hex := c.Hex(); hex >= 0 {
		return tcolour.FromUint8(uint8(hex>>16), uint8(hex>>8), uint8(hex))
	}
	return tcolour.FromUint8(0, 0, 0)
}

// ToTcell converts a colour to a direct 24-bit tcell colour. The colour is
// clamped into range first; this direction round-trips exactly through
// FromTcell for in-range colours.
func ToTcell(c tcolour.Colour) tcell.Color {
	r, g, b := c.Uint8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// PaletteColor converts a colour to the nearest xterm-256 palette entry as a
// tcell colour. This is the lossy direction; use ToTcell on terminals with
// truecolor support.
func PaletteColor(c tcolour.Colour) tcell.Color {
	return tcell.PaletteColor(int(ToPalette256(c)))
}
