package rootfind

import "math"

// Newton runs Newton-Raphson from x0. Convergence is |dx| <= tol*(1+|x|)
// or an exact zero.
func Newton(f Func, x0 float64, opts Options) (Root, error) {
	opts = opts.withDefaults()

	x := x0
	fx := f(x)
	if !finite(x0) || !finite(fx) {
		return Root{}, &SolveError{Method: "newton", Last: x0, Residual: fx, Wrapped: ErrNotFinite}
	}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		if fx == 0 {
			return Root{X: x, Iterations: iter - 1, Residual: 0}, nil
		}

		slope := derivative(f, opts.Derivative, x)
		if slope == 0 || !finite(slope) {
			return Root{}, &SolveError{Method: "newton", Iterations: iter, Last: x, Residual: fx, Wrapped: ErrNoConvergence}
		}

		dx := fx / slope
		next := x - dx
		if !finite(next) {
			return Root{}, &SolveError{Method: "newton", Iterations: iter, Last: x, Residual: fx, Wrapped: ErrNotFinite}
		}
		if opts.Positive && next <= 0 {
			return Root{}, &SolveError{Method: "newton", Iterations: iter, Last: next, Residual: fx, Wrapped: ErrLeftDomain}
		}

		x = next
		fx = f(x)
		if !finite(fx) {
			return Root{}, &SolveError{Method: "newton", Iterations: iter, Last: x, Residual: fx, Wrapped: ErrNotFinite}
		}

		if math.Abs(dx) <= opts.Tolerance*(1+math.Abs(x)) {
			return Root{X: x, Iterations: iter, Residual: fx}, nil
		}
	}

	return Root{}, &SolveError{Method: "newton", Iterations: opts.MaxIterations, Last: x, Residual: fx, Wrapped: ErrNoConvergence}
}

// derivative uses the analytic slope when given, else a central difference
// with a step relative to |x|.
func derivative(f, df Func, x float64) float64 {
	if df != nil {
		return df(x)
	}
	h := 1e-6 * math.Max(math.Abs(x), 1)
	return (f(x+h) - f(x-h)) / (2 * h)
}
