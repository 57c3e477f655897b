package odes

import "math"

// NewExponentialForced builds u'' - 4u' = 6e^(3t) - 3e^(-t) as the reduced
// pair u' = v, v' = 4v + 6e^(3t) - 3e^(-t), starting at t0 = 0 with the
// given (u0, v0). The closed form is
//
//	v(t) = -6e^(3t) + (3/5)e^(-t) + C*e^(4t),   C = v0 + 27/5
//	u(t) = u0 + 2 - 2e^(3t) + 3/5 - (3/5)e^(-t) + (C/4)(e^(4t) - 1)
func NewExponentialForced(u0, v0 float64) CoupledProblem {
	c := v0 + 27.0/5.0

	return CoupledProblem{
		Name: "forced",
		F: func(v float64) float64 {
			return v
		},
		G: func(v, u, t float64) float64 {
			return 4*v + 6*math.Exp(3*t) - 3*math.Exp(-t)
		},
		T0:   0,
		U0:   u0,
		V0:   v0,
		TEnd: 1.5,
		H:    0.1,
		ExactU: func(t float64) float64 {
			return u0 + 2 - 2*math.Exp(3*t) + 3.0/5.0 - (3.0/5.0)*math.Exp(-t) + (c/4)*(math.Exp(4*t)-1)
		},
		ExactV: func(t float64) float64 {
			return -6*math.Exp(3*t) + (3.0/5.0)*math.Exp(-t) + c*math.Exp(4*t)
		},
	}
}
