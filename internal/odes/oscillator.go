package odes

import "math"

// NewHarmonic builds u'' = -omega^2 * u as the reduced pair u' = v,
// v' = -omega^2 * u, with initial condition (t0, u0, v0) and the cos/sin
// closed-form solution.
func NewHarmonic(omega, t0, u0, v0 float64) CoupledProblem {
	return CoupledProblem{
		Name: "harmonic",
		F: func(v float64) float64 {
			return v
		},
		G: func(v, u, t float64) float64 {
			return -omega * omega * u
		},
		T0:   t0,
		U0:   u0,
		V0:   v0,
		TEnd: t0 + 2*math.Pi/omega,
		H:    0.01,
		ExactU: func(t float64) float64 {
			tau := t - t0
			return u0*math.Cos(omega*tau) + (v0/omega)*math.Sin(omega*tau)
		},
		ExactV: func(t float64) float64 {
			tau := t - t0
			return -u0*omega*math.Sin(omega*tau) + v0*math.Cos(omega*tau)
		},
	}
}

// NewDamped builds the damped oscillator u'' = -2*zeta*omega*u' - omega^2*u
// as a reduced pair. No closed form is attached; it exists but the catalog
// only needs the RHS for plotting and live runs.
func NewDamped(omega, zeta, t0, u0, v0 float64) CoupledProblem {
	return CoupledProblem{
		Name: "damped",
		F: func(v float64) float64 {
			return v
		},
		G: func(v, u, t float64) float64 {
			return -2*zeta*omega*v - omega*omega*u
		},
		T0:   t0,
		U0:   u0,
		V0:   v0,
		TEnd: t0 + 4*math.Pi/omega,
		H:    0.01,
	}
}
