package tcolour

import "testing"

func testGradient() Gradient {
	return Gradient{
		{Position: 0.5, Colour: Solid(1, 0, 0)},
		{Position: 0.7, Colour: Solid(0, 1, 0)},
		{Position: 0.8, Colour: Solid(0, 0, 1)},
	}
}

func TestSubgradient(t *testing.T) {
	g := testGradient()
	tests := []struct {
		name     string
		t        float64
		from, to GradientStop
	}{
		{"BeforeFirst", 0.1, g[0], g[0]},
		{"FirstBracket", 0.6, g[0], g[1]},
		{"SecondBracket", 0.75, g[1], g[2]},
		{"AtLast", 0.8, g[2], g[2]},
		{"BeyondLast", 0.9, g[2], g[2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := g.Subgradient(tt.t)
			if from != tt.from || to != tt.to {
				t.Errorf("got (%v, %v), want (%v, %v)", from, to, tt.from, tt.to)
			}
		})
	}
}

func TestSubgradientSingleStop(t *testing.T) {
	g := Gradient{{Position: 0.5, Colour: Grey(0.5)}}
	for _, pos := range []float64{-1, 0.5, 2} {
		from, to := g.Subgradient(pos)
		if from != g[0] || to != g[0] {
			t.Errorf("t=%v: got (%v, %v), want the only stop twice", pos, from, to)
		}
	}
}

func TestSubgradientEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty gradient")
		}
	}()
	var g Gradient
	g.Subgradient(0.5)
}

func TestInsert(t *testing.T) {
	g := testGradient()

	g.Insert(0.3, Grey(0.5))
	if g[0].Colour != Grey(0.5) {
		t.Errorf("front insert: got %v", g[0])
	}
	g.Insert(0.9, Grey(0.2))
	if g[len(g)-1].Colour != Grey(0.2) {
		t.Errorf("append: got %v", g[len(g)-1])
	}
	g.Insert(0.6, Red(0.8))
	if g[2].Colour != Red(0.8) {
		t.Errorf("middle insert: got %v", g[2])
	}
	g.Insert(0.85, Transparent())
	if g[5].Colour != Transparent() || g[6].Colour != Grey(0.2) {
		t.Errorf("insert before last: got %v, %v", g[5], g[6])
	}

	// Exact position collision replaces without growing.
	lenBefore := len(g)
	g.Insert(0.5, Red(1.0).WithBlue(1.0))
	if len(g) != lenBefore {
		t.Errorf("replace changed length: %d -> %d", lenBefore, len(g))
	}

	want := Gradient{
		{0.3, Grey(0.5)},
		{0.5, Red(1.0).WithBlue(1.0)},
		{0.6, Red(0.8)},
		{0.7, Green(1.0)},
		{0.8, Blue(1.0)},
		{0.85, Transparent()},
		{0.9, Grey(0.2)},
	}
	if len(g) != len(want) {
		t.Fatalf("got %d stops, want %d", len(g), len(want))
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("stop %d: got %v, want %v", i, g[i], want[i])
		}
	}
}

func TestSample(t *testing.T) {
	g := testGradient()
	fade := Gradient{
		{Position: 0.4, Colour: Grey(1.0)},
		{Position: 0.6, Colour: Transparent()},
	}

	tests := []struct {
		name string
		g    Gradient
		t    float64
		want Colour
	}{
		{"Midpoint", g, 0.6, Solid(0.5, 0.5, 0)},
		{"Quarter", g, 0.65, Solid(0.25, 0.75, 0)},
		{"BeforeFirst", g, 0.1, Red(1.0)},
		{"BeyondLast", g, 0.9, Blue(1.0)},
		{"AlphaFade", fade, 0.5, Grey(0.5).WithAlpha(0.5)},
		{"AlphaFadeEnd", fade, 0.8, Transparent()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.g.Sample(tt.t)
			if !got.RelativeEq(tt.want, Epsilon, MaxRelative) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleAtStopSelectsUpper(t *testing.T) {
	// Exactly at an interior stop the local t is 0, which is not a normal
	// float and is forced to 1, selecting the upper bracket colour.
	g := testGradient()
	if got := g.Sample(0.7); got != Blue(1.0) {
		t.Errorf("got %v, want %v", got, Blue(1.0))
	}
}

func TestInterpolateCustom(t *testing.T) {
	g := testGradient()
	// Step interpolator: lower colour until the bracket midpoint.
	step := func(from, to Colour, t float64) Colour {
		if t < 0.5 {
			return from
		}
		return to
	}
	if got := g.Interpolate(0.55, step); got != Red(1.0) {
		t.Errorf("below midpoint: got %v", got)
	}
	if got := g.Interpolate(0.65, step); got != Green(1.0) {
		t.Errorf("above midpoint: got %v", got)
	}
}

func TestSelect(t *testing.T) {
	g := testGradient()
	tests := []struct {
		name        string
		t           float64
		lower, uppr Colour
	}{
		{"BeforeFirst", 0.1, Red(1.0), Red(1.0)},
		{"Bracketed", 0.6, Red(1.0), Green(1.0)},
		{"BeyondLast", 0.9, Blue(1.0), Blue(1.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Select(tt.t); got != tt.lower {
				t.Errorf("Select: got %v, want %v", got, tt.lower)
			}
			if got := g.SelectUpper(tt.t); got != tt.uppr {
				t.Errorf("SelectUpper: got %v, want %v", got, tt.uppr)
			}
		})
	}
}
