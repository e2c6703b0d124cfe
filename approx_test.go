package tcolour

import (
	"math"
	"testing"
)

func TestAbsDiffEq(t *testing.T) {
	a := Grey(0.5)
	if !a.AbsDiffEq(Grey(0.5+1e-7), Epsilon) {
		t.Error("difference below epsilon should compare equal")
	}
	if a.AbsDiffEq(Grey(0.5+1e-5), Epsilon) {
		t.Error("difference above epsilon should compare unequal")
	}
	if a.AbsDiffEq(Grey(0.5).WithAlpha(0.9), Epsilon) {
		t.Error("alpha must participate in the comparison")
	}
}

func TestRelativeEq(t *testing.T) {
	// Large magnitudes need the relative term; the absolute epsilon alone
	// would reject them.
	a := Grey(1e6)
	b := Grey(1e6 * (1 + 1e-7))
	if !a.RelativeEq(b, Epsilon, MaxRelative) {
		t.Error("within relative tolerance should compare equal")
	}
	if a.RelativeEq(Grey(1e6*1.001), Epsilon, MaxRelative) {
		t.Error("outside relative tolerance should compare unequal")
	}
	if !Grey(math.Inf(1)).RelativeEq(Grey(math.Inf(1)), Epsilon, MaxRelative) {
		t.Error("equal infinities should compare equal")
	}
}

func TestUlpsEq(t *testing.T) {
	next := math.Nextafter(0.5, 1)
	if !Grey(0.5).UlpsEq(Grey(next), 0, MaxUlps) {
		t.Error("adjacent floats should be within 4 ulps")
	}
	far := 0.5
	for i := 0; i < 10; i++ {
		far = math.Nextafter(far, 1)
	}
	if Grey(0.5).UlpsEq(Grey(far), 0, MaxUlps) {
		t.Error("10 ulps apart should compare unequal")
	}
	if Grey(1e-12).UlpsEq(Grey(-1e-12), 0, MaxUlps) {
		t.Error("sign mismatch should compare unequal")
	}
	if Grey(math.NaN()).UlpsEq(Grey(math.NaN()), Epsilon, MaxUlps) {
		t.Error("NaN should never compare equal")
	}
}
