package rootfind

import (
	"errors"
	"fmt"
)

// Domain errors for root finding.
var (
	// ErrNoConvergence indicates the iteration budget ran out before the tolerance was met.
	ErrNoConvergence = errors.New("rootfind: solver did not converge")

	// ErrNoRootInBracket indicates f(a) and f(b) have the same sign.
	ErrNoRootInBracket = errors.New("rootfind: no root in bracket")

	// ErrInvalidBracket indicates a bracket with a >= b or non-finite endpoints.
	ErrInvalidBracket = errors.New("rootfind: invalid bracket")

	// ErrLeftDomain indicates an iterate fell outside the admissible domain.
	ErrLeftDomain = errors.New("rootfind: iterate left the admissible domain")

	// ErrNotFinite indicates the function returned NaN or Inf.
	ErrNotFinite = errors.New("rootfind: function value not finite")
)

// SolveError wraps an error with the solver state at the point of failure.
type SolveError struct {
	Method     string
	Iterations int
	Last       float64
	Residual   float64
	Wrapped    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v (%s, %d iterations, last x=%g, f=%g)",
		e.Wrapped, e.Method, e.Iterations, e.Last, e.Residual)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
