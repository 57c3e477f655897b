package rk4

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep indicates a step size of zero (or NaN/Inf), for which
	// no finite step count exists.
	ErrInvalidStep = errors.New("rk4: invalid step size")

	// ErrNonFiniteSlope indicates a slope function produced NaN or Inf.
	ErrNonFiniteSlope = errors.New("rk4: slope function returned non-finite value")
)

// StepError wraps an error with the step index and time at which it occurred.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
