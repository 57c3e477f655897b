// Package odes is a catalog of ready-made differential equations with
// sensible default initial conditions and, where available, closed-form
// solutions used by the tests and the CLI.
package odes
