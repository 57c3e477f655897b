package odes

import (
	"math"
	"testing"
)

// checkScalarExact verifies dExact/dt == F(t, Exact(t)) by central difference.
func checkScalarExact(t *testing.T, p ScalarProblem, at float64) {
	t.Helper()

	const eps = 1e-6
	numeric := (p.Exact(at+eps) - p.Exact(at-eps)) / (2 * eps)
	analytic := p.F(at, p.Exact(at))

	scale := math.Max(1, math.Abs(analytic))
	if math.Abs(numeric-analytic)/scale > 1e-4 {
		t.Errorf("%s: exact solution does not satisfy ODE at t=%.2f: d/dt=%.6f, F=%.6f",
			p.Name, at, numeric, analytic)
	}
}

func TestLinearExact(t *testing.T) {
	p := NewLinear(2, -3, 1, 1.0, 5.0)

	if math.Abs(p.Exact(1.0)-5.0) > 1e-12 {
		t.Errorf("exact solution misses initial condition: %f", p.Exact(1.0))
	}
	for _, at := range []float64{1.0, 1.2, 1.5, 2.0} {
		checkScalarExact(t, p, at)
	}
}

func TestLinearNoExactWhenDegenerate(t *testing.T) {
	p := NewLinear(1, 0, 0, 0, 1)
	if p.Exact != nil {
		t.Error("expected no closed form for b=0")
	}
}

func TestLogisticExact(t *testing.T) {
	p := NewLogistic(1.0, 10.0, 0.5)

	if math.Abs(p.Exact(0)-0.5) > 1e-12 {
		t.Errorf("exact solution misses initial condition: %f", p.Exact(0))
	}
	for _, at := range []float64{0.5, 2.0, 5.0} {
		checkScalarExact(t, p, at)
	}
	// Saturates at the carrying capacity.
	if math.Abs(p.Exact(50)-10.0) > 1e-6 {
		t.Errorf("logistic should saturate at 10, got %f", p.Exact(50))
	}
}

func TestHarmonicExact(t *testing.T) {
	p := NewHarmonic(2.0, 0, 1.0, -0.5)

	if math.Abs(p.ExactU(0)-1.0) > 1e-12 || math.Abs(p.ExactV(0)+0.5) > 1e-12 {
		t.Error("exact solution misses initial conditions")
	}

	// v must be du/dt.
	const eps = 1e-6
	for _, at := range []float64{0.3, 1.0, 2.5} {
		numeric := (p.ExactU(at+eps) - p.ExactU(at-eps)) / (2 * eps)
		if math.Abs(numeric-p.ExactV(at)) > 1e-4 {
			t.Errorf("ExactV is not dExactU/dt at t=%.2f: %.6f vs %.6f", at, numeric, p.ExactV(at))
		}
	}

	// u'' = -omega^2 u.
	for _, at := range []float64{0.3, 1.0} {
		numeric := (p.ExactV(at+eps) - p.ExactV(at-eps)) / (2 * eps)
		if math.Abs(numeric-p.G(p.ExactV(at), p.ExactU(at), at)) > 1e-3 {
			t.Errorf("exact solution does not satisfy u''=-w^2 u at t=%.2f", at)
		}
	}
}

func TestExponentialForcedExact(t *testing.T) {
	p := NewExponentialForced(1.0, -1.0)

	if math.Abs(p.ExactU(0)-1.0) > 1e-12 || math.Abs(p.ExactV(0)+1.0) > 1e-12 {
		t.Errorf("exact solution misses initial conditions: u(0)=%f v(0)=%f", p.ExactU(0), p.ExactV(0))
	}

	const eps = 1e-7
	for _, at := range []float64{0.2, 0.7, 1.2} {
		dv := (p.ExactV(at+eps) - p.ExactV(at-eps)) / (2 * eps)
		want := p.G(p.ExactV(at), p.ExactU(at), at)
		scale := math.Max(1, math.Abs(want))
		if math.Abs(dv-want)/scale > 1e-4 {
			t.Errorf("exact v does not satisfy v'=g at t=%.2f: %.6f vs %.6f", at, dv, want)
		}

		du := (p.ExactU(at+eps) - p.ExactU(at-eps)) / (2 * eps)
		scale = math.Max(1, math.Abs(p.ExactV(at)))
		if math.Abs(du-p.ExactV(at))/scale > 1e-4 {
			t.Errorf("exact u' is not v at t=%.2f", at)
		}
	}
}

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	p, err := r.Scalar("linear")
	if err != nil {
		t.Fatalf("linear lookup failed: %v", err)
	}
	if p.T0 != 1.0 || p.Y0 != 5.0 || p.TEnd != 1.5 {
		t.Errorf("linear defaults wrong: t0=%f y0=%f tEnd=%f", p.T0, p.Y0, p.TEnd)
	}

	if _, err := r.Scalar("nope"); err == nil {
		t.Error("expected error for unknown scalar problem")
	}

	c, err := r.Coupled("forced")
	if err != nil {
		t.Fatalf("forced lookup failed: %v", err)
	}
	if c.U0 != 1.0 || c.V0 != -1.0 {
		t.Errorf("forced defaults wrong: u0=%f v0=%f", c.U0, c.V0)
	}

	if !r.IsCoupled("harmonic") || r.IsCoupled("linear") {
		t.Error("IsCoupled misclassifies problems")
	}

	if got := r.ListScalar(); len(got) != 2 {
		t.Errorf("expected 2 scalar problems, got %v", got)
	}
	if got := r.ListCoupled(); len(got) != 3 {
		t.Errorf("expected 3 coupled problems, got %v", got)
	}
}
