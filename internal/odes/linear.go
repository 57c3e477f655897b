package odes

import "math"

// NewLinear builds dy/dt = a*t + b*y + c with initial condition (t0, y0).
// For b != 0 the closed-form solution is attached:
//
//	y(t) = alpha*t + beta + K*e^(b*(t-t0))
//
// with alpha = -a/b, beta = (alpha-c)/b and K fixed by the initial condition.
func NewLinear(a, b, c, t0, y0 float64) ScalarProblem {
	p := ScalarProblem{
		Name: "linear",
		F: func(t, y float64) float64 {
			return a*t + b*y + c
		},
		T0:   t0,
		Y0:   y0,
		TEnd: t0 + 0.5,
		H:    0.1,
	}

	if b != 0 {
		alpha := -a / b
		beta := (alpha - c) / b
		k := y0 - (alpha*t0 + beta)
		p.Exact = func(t float64) float64 {
			return alpha*t + beta + k*math.Exp(b*(t-t0))
		}
	}

	return p
}

// NewLogistic builds the logistic equation dy/dt = r*y*(1 - y/limit) with
// initial condition (0, y0) and its closed-form solution.
func NewLogistic(r, limit, y0 float64) ScalarProblem {
	return ScalarProblem{
		Name: "logistic",
		F: func(t, y float64) float64 {
			return r * y * (1 - y/limit)
		},
		T0:   0,
		Y0:   y0,
		TEnd: 10,
		H:    0.05,
		Exact: func(t float64) float64 {
			return limit / (1 + (limit/y0-1)*math.Exp(-r*t))
		},
	}
}
