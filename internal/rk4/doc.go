// Package rk4 implements the classical fourth-order Runge-Kutta method
// with a fixed step size.
//
// Two solvers are provided:
//
//   - [Scalar]: first-order equations dy/dt = f(t, y)
//   - [Coupled]: second-order equations reduced to the pair
//     du/dt = f(v), dv/dt = g(v, u, t)
//
// Both accumulate the trajectory of every completed step; repeated Solve
// calls concatenate onto the existing history until Reset is called.
//
// # Thread Safety
//
// Solver instances are NOT thread-safe. At most one Solve or Reset may be
// in flight per instance at a time.
package rk4
