package odes

import (
	"fmt"
	"sort"
)

// Registry maps problem names to catalog entries with their default
// parameters.
type Registry struct {
	scalar  map[string]func() ScalarProblem
	coupled map[string]func() CoupledProblem
}

func NewRegistry() *Registry {
	r := &Registry{
		scalar:  make(map[string]func() ScalarProblem),
		coupled: make(map[string]func() CoupledProblem),
	}

	r.scalar["linear"] = func() ScalarProblem {
		p := NewLinear(2, -3, 1, 1.0, 5.0)
		p.TEnd = 1.5
		return p
	}
	r.scalar["logistic"] = func() ScalarProblem { return NewLogistic(1.0, 10.0, 0.5) }

	r.coupled["harmonic"] = func() CoupledProblem { return NewHarmonic(1.0, 0, 1.0, 0) }
	r.coupled["damped"] = func() CoupledProblem { return NewDamped(2.0, 0.15, 0, 1.0, 0) }
	r.coupled["forced"] = func() CoupledProblem { return NewExponentialForced(1.0, -1.0) }

	return r
}

func (r *Registry) Scalar(name string) (ScalarProblem, error) {
	fn, ok := r.scalar[name]
	if !ok {
		return ScalarProblem{}, fmt.Errorf("unknown scalar problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) Coupled(name string) (CoupledProblem, error) {
	fn, ok := r.coupled[name]
	if !ok {
		return CoupledProblem{}, fmt.Errorf("unknown coupled problem: %s", name)
	}
	return fn(), nil
}

// IsCoupled reports whether name resolves to a coupled problem.
func (r *Registry) IsCoupled(name string) bool {
	_, ok := r.coupled[name]
	return ok
}

func (r *Registry) ListScalar() []string {
	names := make([]string, 0, len(r.scalar))
	for name := range r.scalar {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListCoupled() []string {
	names := make([]string, 0, len(r.coupled))
	for name := range r.coupled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
