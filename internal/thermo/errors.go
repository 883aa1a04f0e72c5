package thermo

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveTemperature indicates a temperature <= 0 or not finite.
	ErrNonPositiveTemperature = errors.New("thermo: temperature must be positive and finite")

	// ErrInvalidConstant indicates a constant outside its physical range.
	ErrInvalidConstant = errors.New("thermo: constant out of valid range")

	ErrUnknownPhase = errors.New("thermo: unknown phase")
)

// ConstantError names the offending field of a ConstantSet.
type ConstantError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConstantError) Error() string {
	return fmt.Sprintf("%v: %s=%g", e.Wrapped, e.Field, e.Value)
}

func (e *ConstantError) Unwrap() error {
	return e.Wrapped
}
