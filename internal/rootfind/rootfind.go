// Package rootfind solves f(x) = 0 in one dimension.
//
// Newton starts from a single guess and is used where the function is smooth
// and monotone. Brent needs a sign-changing bracket and never leaves it.
// Both report failure through errors instead of returning a best guess.
package rootfind

import "math"

const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 100
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

// Options controls convergence. Zero values select the defaults.
type Options struct {
	Tolerance     float64
	MaxIterations int

	// Derivative, if set, replaces the finite-difference slope in Newton.
	Derivative Func

	// Positive restricts Newton iterates to x > 0.
	Positive bool
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Root is a converged solution.
type Root struct {
	X          float64
	Iterations int
	Residual   float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
