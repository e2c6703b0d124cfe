package tcolour

// Named channel arithmetic. Colour-with-colour operations combine the RGB
// channels pairwise and keep the receiver's alpha; scalar operations
// broadcast over RGB and leave alpha untouched.

// Add adds the colour channels of other, keeping the receiver's alpha.
func (c Colour) Add(other Colour) Colour {
	return New(c.R+other.R, c.G+other.G, c.B+other.B, c.A)
}

// Sub subtracts the colour channels of other, keeping the receiver's alpha.
func (c Colour) Sub(other Colour) Colour {
	return New(c.R-other.R, c.G-other.G, c.B-other.B, c.A)
}

// Mul multiplies the colour channels pairwise, keeping the receiver's alpha.
func (c Colour) Mul(other Colour) Colour {
	return New(c.R*other.R, c.G*other.G, c.B*other.B, c.A)
}

// Div divides the colour channels pairwise, keeping the receiver's alpha.
// Division by zero is tolerated; call Cleaned to recover the artifacts.
func (c Colour) Div(other Colour) Colour {
	return New(c.R/other.R, c.G/other.G, c.B/other.B, c.A)
}

// AddScalar adds s to each colour channel, alpha untouched.
func (c Colour) AddScalar(s float64) Colour {
	return New(c.R+s, c.G+s, c.B+s, c.A)
}

// SubScalar subtracts s from each colour channel, alpha untouched.
func (c Colour) SubScalar(s float64) Colour {
	return New(c.R-s, c.G-s, c.B-s, c.A)
}

// MulScalar multiplies each colour channel by s, alpha untouched.
func (c Colour) MulScalar(s float64) Colour {
	return New(c.R*s, c.G*s, c.B*s, c.A)
}

// DivScalar divides each colour channel by s, alpha untouched.
// Division by zero is tolerated; call Cleaned to recover the artifacts.
func (c Colour) DivScalar(s float64) Colour {
	return New(c.R/s, c.G/s, c.B/s, c.A)
}

// ScalarSub subtracts each colour channel from s (s-v), alpha untouched.
func (c Colour) ScalarSub(s float64) Colour {
	return New(s-c.R, s-c.G, s-c.B, c.A)
}

// ScalarDiv divides s by each colour channel (s/v), alpha untouched.
func (c Colour) ScalarDiv(s float64) Colour {
	return New(s/c.R, s/c.G, s/c.B, c.A)
}
