package rk4

import "math"

// SlopeFunc is the right-hand side of a first-order equation dy/dt = f(t, y).
type SlopeFunc func(t, y float64) float64

// Scalar integrates a single first-order equation with fixed-step RK4.
type Scalar struct {
	f  SlopeFunc
	ts []float64
	ys []float64
}

func NewScalar(f SlopeFunc) *Scalar {
	return &Scalar{f: f}
}

// Solve advances y from (t0, y0) across the half-open range [t0, tEnd)
// stepped by h and returns the final y. One (t, y) pair is appended to the
// trajectory per completed step; history from earlier Solve calls is kept
// until Reset. A step either completes fully or fails before any of its
// values are recorded.
func (s *Scalar) Solve(t0, y0, tEnd, h float64) (float64, error) {
	steps, err := StepCount(t0, tEnd, h)
	if err != nil {
		return y0, err
	}

	y := y0
	for i := 0; i < steps; i++ {
		t := t0 + float64(i)*h

		k1 := s.f(t, y)
		k2 := s.f(t+h/2, y+k1*h/2)
		k3 := s.f(t+h/2, y+k2*h/2)
		k4 := s.f(t+h, y+k3*h)

		next := y + (h/6)*(k1+2*k2+2*k3+k4)
		if !finite(k1) || !finite(k2) || !finite(k3) || !finite(k4) || !finite(next) {
			return y, &StepError{Step: i, Time: t, Err: ErrNonFiniteSlope}
		}

		y = next
		s.ys = append(s.ys, y)
		s.ts = append(s.ts, t0+float64(i+1)*h)
	}

	return y, nil
}

// Trajectory returns copies of the accumulated time and value histories.
// Both are empty before the first Solve call.
func (s *Scalar) Trajectory() (ts, ys []float64) {
	return cloneFloats(s.ts), cloneFloats(s.ys)
}

// Steps reports the number of accumulated trajectory entries.
func (s *Scalar) Steps() int {
	return len(s.ts)
}

// Reset discards all accumulated history. The slope function is kept.
func (s *Scalar) Reset() {
	s.ts = nil
	s.ys = nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func cloneFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
