package rk4

import "math"

// rangeTol snaps (tEnd-t0)/h ratios that are within rounding noise of an
// integer, so that e.g. a span of 0.3 with h=0.1 yields 3 steps and never 4.
const rangeTol = 1e-9

// StepCount returns the number of step markers in the half-open range
// [t0, tEnd) stepped by h. The sign of h sets the integration direction; a
// span of zero or of the wrong sign yields zero steps.
//
// The count is derived up front rather than by accumulating t, so rounding
// error cannot change the number of iterations and h=0 cannot loop forever.
func StepCount(t0, tEnd, h float64) (int, error) {
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, ErrInvalidStep
	}
	r := (tEnd - t0) / h
	if math.IsNaN(r) || r <= 0 {
		return 0, nil
	}
	n := math.Ceil(r)
	if rounded := math.Round(r); n != rounded && math.Abs(r-rounded) <= rangeTol*math.Max(1, rounded) {
		n = rounded
	}
	return int(n), nil
}
