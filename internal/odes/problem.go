package odes

import "github.com/san-kum/odelab/internal/rk4"

// ScalarProblem describes a first-order equation dy/dt = F(t, y) together
// with default initial conditions. Exact is nil when no closed-form
// solution is known.
type ScalarProblem struct {
	Name  string
	F     rk4.SlopeFunc
	T0    float64
	Y0    float64
	TEnd  float64
	H     float64
	Exact func(t float64) float64
}

// CoupledProblem describes a second-order equation reduced to the pair
// du/dt = F(v), dv/dt = G(v, u, t). ExactU/ExactV are nil when no
// closed-form solution is known.
type CoupledProblem struct {
	Name   string
	F      rk4.VelocityFunc
	G      rk4.AccelFunc
	T0     float64
	U0     float64
	V0     float64
	TEnd   float64
	H      float64
	ExactU func(t float64) float64
	ExactV func(t float64) float64
}
