package rk4

import (
	"math"
	"testing"
)

func BenchmarkScalarSolve(b *testing.B) {
	s := NewScalar(func(t, y float64) float64 { return 2*t - 3*y + 1 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Solve(0.0, 5.0, 10.0, 0.01)
		s.Reset()
	}
}

func BenchmarkCoupledSolve(b *testing.B) {
	c := NewCoupled(
		func(v float64) float64 { return v },
		func(v, u, t float64) float64 { return -u - 0.1*v },
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Solve(0.0, 1.0, 0.0, 10.0, 0.01)
		c.Reset()
	}
}

func BenchmarkScalarStep(b *testing.B) {
	s := NewScalar(func(t, y float64) float64 { return math.Sin(t) - y })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Solve(0.0, 0.0, 0.01, 0.01)
		s.Reset()
	}
}
