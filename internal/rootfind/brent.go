package rootfind

import "math"

// Brent finds a root of f in [a, b] by the Brent-Dekker method.
// f(a) and f(b) must differ in sign; otherwise ErrNoRootInBracket.
func Brent(f Func, a, b float64, opts Options) (Root, error) {
	opts = opts.withDefaults()

	if !finite(a) || !finite(b) || a >= b {
		return Root{}, &SolveError{Method: "brent", Last: a, Wrapped: ErrInvalidBracket}
	}

	fa, fb := f(a), f(b)
	if !finite(fa) || !finite(fb) {
		return Root{}, &SolveError{Method: "brent", Last: a, Residual: fa, Wrapped: ErrNotFinite}
	}
	if fa == 0 {
		return Root{X: a}, nil
	}
	if fb == 0 {
		return Root{X: b}, nil
	}
	if (fa > 0) == (fb > 0) {
		return Root{}, &SolveError{Method: "brent", Last: b, Residual: fb, Wrapped: ErrNoRootInBracket}
	}

	c, fc := b, fb
	var d, e float64

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*epsilon*math.Abs(b) + 0.5*opts.Tolerance
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return Root{X: b, Iterations: iter, Residual: fb}, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				// secant
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if !finite(fb) {
			return Root{}, &SolveError{Method: "brent", Iterations: iter, Last: b, Residual: fb, Wrapped: ErrNotFinite}
		}
	}

	return Root{}, &SolveError{Method: "brent", Iterations: opts.MaxIterations, Last: b, Residual: fb, Wrapped: ErrNoConvergence}
}

const epsilon = 2.220446049250313e-16
