package threshold

import (
	"errors"
	"fmt"
)

var (
	// ErrBelowThreshold indicates sqrt(s_NN) <= 2 m_N, which leaves no energy to thermalise.
	ErrBelowThreshold = errors.New("threshold: collision energy at or below 2 m_N")

	// ErrInvalidInput indicates a non-finite or out-of-range argument.
	ErrInvalidInput = errors.New("threshold: invalid input")
)

// InputError names the argument that failed validation.
type InputError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s=%g", e.Wrapped, e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
