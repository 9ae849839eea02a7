// Package solve finds the roots of real-coefficient polynomials by solving
// the eigenproblem of the companion matrix: the matrix whose eigenvalues are
// exactly the polynomial's roots.
//
// The package exists to feed fract.AssignRoots, which needs the full root
// list of the polynomial whose Newton basins were sampled:
//
//	coeffs := []float64{-1, 0, 0, 1} // z^3 - 1
//	roots, err := solve.Roots(coeffs)
package solve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Package errors.
var (
	// ErrDegreeTooSmall is returned for polynomials below degree 2; the
	// companion matrix is only defined from degree 2 upward.
	ErrDegreeTooSmall = errors.New("solve: polynomial degree must be at least 2")

	// ErrZeroLeadingCoefficient is returned when the highest-order
	// coefficient is zero, which would make the stated degree a lie.
	ErrZeroLeadingCoefficient = errors.New("solve: leading coefficient is zero")
)

// CompanionMatrix builds the companion matrix of the polynomial with the
// given ascending-power coefficients (coeffs[i] multiplies x^i). The
// polynomial is normalized to monic form, ones are placed on the
// subdiagonal, and the negated normalized coefficients fill the last column.
//
// Degree must be at least 2 and the leading coefficient non-zero; violations
// fail before any allocation.
func CompanionMatrix(coeffs []float64) (*mat.Dense, error) {
	n := len(coeffs) - 1
	if n < 2 {
		return nil, ErrDegreeTooSmall
	}
	lead := coeffs[n]
	if lead == 0 {
		return nil, ErrZeroLeadingCoefficient
	}

	m := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}
	for i := 0; i < n; i++ {
		m.Set(i, n-1, -coeffs[i]/lead)
	}
	return m, nil
}

// Roots returns all complex roots of the polynomial with the given
// ascending-power coefficients, computed as the eigenvalues of its
// companion matrix. The returned slice has length equal to the polynomial
// degree; root order follows the eigenvalue decomposition and is not
// otherwise specified.
func Roots(coeffs []float64) ([]complex128, error) {
	m, err := CompanionMatrix(coeffs)
	if err != nil {
		return nil, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, fmt.Errorf("solve: eigendecomposition failed for degree %d polynomial", len(coeffs)-1)
	}
	return eig.Values(nil), nil
}
