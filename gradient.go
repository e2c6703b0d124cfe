package tcolour

// GradientStop anchors a colour at a position along a gradient. Positions
// are not required to lie in [0,1].
type GradientStop struct {
	Position float64
	Colour   Colour
}

// Gradient is an ordered sequence of stops, sorted ascending by position
// with at most one stop per distinct position. Sampling operations require
// at least one stop and panic on an empty gradient.
type Gradient []GradientStop

// Interpolator combines the two bracketing stop colours for a local t
// normalised to [0,1] within the bracket.
type Interpolator func(from, to Colour, t float64) Colour

// Insert places a stop at the given position, keeping the sequence sorted.
// Inserting at an existing exact position replaces that stop's colour
// instead of adding a second entry.
func (g *Gradient) Insert(position float64, colour Colour) {
	stops := *g
	for i := range stops {
		if stops[i].Position < position {
			continue
		}
		if stops[i].Position == position {
			stops[i].Colour = colour
			return
		}
		stops = append(stops, GradientStop{})
		copy(stops[i+1:], stops[i:])
		stops[i] = GradientStop{Position: position, Colour: colour}
		*g = stops
		return
	}
	*g = append(stops, GradientStop{Position: position, Colour: colour})
}

// Subgradient returns the two stops that bracket t.
//
// A position before the first stop returns the first stop twice, and one at
// or beyond the last stop returns the last stop twice; interpolating such a
// bracket always yields that stop's colour regardless of t. A single-stop
// gradient therefore brackets every position to its only stop.
func (g Gradient) Subgradient(t float64) (from, to GradientStop) {
	if len(g) == 0 {
		panic("tcolour: subgradient of empty gradient")
	}
	for i, stop := range g {
		if stop.Position > t {
			if i == 0 {
				return stop, stop
			}
			return g[i-1], stop
		}
	}
	last := g[len(g)-1]
	return last, last
}

// Interpolate finds the bracket containing t and applies the given
// interpolator to its colours.
//
// t is normalised within the bracket by (t-from)/(to-from). Whenever that
// quotient is not a normal float — including the same-stop bracket where the
// spread is zero — it is forced to 1, selecting the upper colour.
func (g Gradient) Interpolate(t float64, fn Interpolator) Colour {
	from, to := g.Subgradient(t)
	local := (t - from.Position) / (to.Position - from.Position)
	if !isNormal(local) {
		local = 1
	}
	return fn(from.Colour, to.Colour, local)
}

// Sample returns the colour at t using linear interpolation over every
// channel, alpha included. Use Interpolate for a custom interpolator and
// Select or SelectUpper for discrete lookup.
func (g Gradient) Sample(t float64) Colour {
	return g.Interpolate(t, Colour.Lerp)
}

// Select returns the lower bracket colour at t without interpolating.
func (g Gradient) Select(t float64) Colour {
	from, _ := g.Subgradient(t)
	return from.Colour
}

// SelectUpper returns the upper bracket colour at t without interpolating.
func (g Gradient) SelectUpper(t float64) Colour {
	_, to := g.Subgradient(t)
	return to.Colour
}
