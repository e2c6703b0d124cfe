package tcolour

import "cogentcore.org/core/math32"

// Vector4 returns the colour as an (R, G, B, A) homogeneous vector.
// The conversion narrows to float32 and is lossy.
func (c Colour) Vector4() math32.Vector4 {
	return math32.Vec4(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

// FromVector4 builds a colour from an (X, Y, Z, W) vector read as RGBA.
func FromVector4(v math32.Vector4) Colour {
	return New(float64(v.X), float64(v.Y), float64(v.Z), float64(v.W))
}
