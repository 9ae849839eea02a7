package fract

import (
	"math"
	"math/cmplx"
)

// NewtonTol is the convergence tolerance for NewtonRoot: the iteration stops
// as soon as |p(x)| drops below it.
const NewtonTol = 1e-6

// NotConverged is the iteration-count sentinel recorded for a pixel whose
// Newton iteration hit a zero derivative or exhausted its budget without
// satisfying the tolerance. It is the maximum value representable in the
// 32-bit counts the buffers are exchanged as, so it can never collide with
// a real iteration count.
const NotConverged = math.MaxInt32

// nonConvergedPoint is the point value paired with NotConverged.
var nonConvergedPoint = complex(math.Inf(1), math.Inf(1))

// PolynomialAndDeriv evaluates a polynomial and its derivative at x in a
// single Horner pass. Coefficients are ordered by ascending power:
// coeffs[i] multiplies x^i, and coeffs[len(coeffs)-1] is the leading
// coefficient.
func PolynomialAndDeriv(x complex128, coeffs []float64) (p, dp complex128) {
	n := len(coeffs) - 1
	p = complex(coeffs[n], 0)
	for i := n - 1; i >= 0; i-- {
		dp = x*dp + p
		p = x*p + complex(coeffs[i], 0)
	}
	return p, dp
}

// NewtonRoot refines x0 toward a root of the polynomial using Newton's
// method. It returns the converged point and the iteration index at which
// |p(x)| first dropped below NewtonTol.
//
// Non-convergence is a first-class outcome, not an error: if the derivative
// vanishes exactly (the Newton step is undefined) or maxItr is exhausted,
// NewtonRoot returns an infinite point value and the NotConverged count.
// A zero derivative additionally logs an advisory naming the starting point.
func NewtonRoot(coeffs []float64, x0 complex128, maxItr int) (complex128, int) {
	x := x0
	for k := 0; k < maxItr; k++ {
		f, df := PolynomialAndDeriv(x, coeffs)
		if cmplx.Abs(f) < NewtonTol {
			return x, k
		}
		if df == 0 {
			Logger().Warn("fract: zero derivative in Newton iteration", "start", x0)
			return nonConvergedPoint, NotConverged
		}
		x -= f / df
	}
	return nonConvergedPoint, NotConverged
}
