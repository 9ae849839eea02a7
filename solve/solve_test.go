package solve

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

// verifyRoots checks that got and want match as sets within epsilon,
// comparing after sorting by real then imaginary part.
func verifyRoots(t *testing.T, got, want []complex128, epsilon float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d roots, want %d: %v", len(got), len(want), got)
	}

	byValue := func(s []complex128) func(i, j int) bool {
		return func(i, j int) bool {
			if real(s[i]) != real(s[j]) {
				return real(s[i]) < real(s[j])
			}
			return imag(s[i]) < imag(s[j])
		}
	}
	sortedGot := append([]complex128(nil), got...)
	sortedWant := append([]complex128(nil), want...)
	sort.Slice(sortedGot, byValue(sortedGot))
	sort.Slice(sortedWant, byValue(sortedWant))

	for i := range sortedGot {
		if cmplx.Abs(sortedGot[i]-sortedWant[i]) > epsilon {
			t.Errorf("root[%d] = %v, want %v (got=%v, want=%v)",
				i, sortedGot[i], sortedWant[i], sortedGot, sortedWant)
		}
	}
}

func TestCompanionMatrixShape(t *testing.T) {
	// x^2 - 1: 2x2 matrix [[0 1] [1 0]].
	m, err := CompanionMatrix([]float64{-1, 0, 1})
	if err != nil {
		t.Fatalf("CompanionMatrix() = %v", err)
	}
	r, c := m.Dims()
	if r != 2 || c != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", r, c)
	}
	want := [][]float64{{0, 1}, {1, 0}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := m.At(i, j); got != want[i][j] {
				t.Errorf("m[%d][%d] = %g, want %g", i, j, got, want[i][j])
			}
		}
	}
}

func TestCompanionMatrixNormalizes(t *testing.T) {
	// 2x^2 - 2 has the same companion matrix as x^2 - 1.
	m, err := CompanionMatrix([]float64{-2, 0, 2})
	if err != nil {
		t.Fatalf("CompanionMatrix() = %v", err)
	}
	if got := m.At(0, 1); got != 1 {
		t.Errorf("m[0][1] = %g, want 1 after monic normalization", got)
	}
}

func TestCompanionMatrixValidation(t *testing.T) {
	tests := []struct {
		name    string
		coeffs  []float64
		wantErr error
	}{
		{"degree 1", []float64{1, 2}, ErrDegreeTooSmall},
		{"constant", []float64{5}, ErrDegreeTooSmall},
		{"empty", nil, ErrDegreeTooSmall},
		{"zero leading", []float64{1, 2, 0}, ErrZeroLeadingCoefficient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CompanionMatrix(tt.coeffs); !errors.Is(err, tt.wantErr) {
				t.Errorf("CompanionMatrix(%v) error = %v, want %v", tt.coeffs, err, tt.wantErr)
			}
		})
	}
}

func TestRootsQuadratic(t *testing.T) {
	// x^2 - 1 = 0 -> ±1.
	roots, err := Roots([]float64{-1, 0, 1})
	if err != nil {
		t.Fatalf("Roots() = %v", err)
	}
	verifyRoots(t, roots, []complex128{1, -1}, 1e-10)
}

func TestRootsComplexPair(t *testing.T) {
	// x^2 + 1 = 0 -> ±i.
	roots, err := Roots([]float64{1, 0, 1})
	if err != nil {
		t.Fatalf("Roots() = %v", err)
	}
	verifyRoots(t, roots, []complex128{complex(0, 1), complex(0, -1)}, 1e-10)
}

func TestRootsCubicUnity(t *testing.T) {
	// x^3 - 1 = 0 -> the three cube roots of unity.
	roots, err := Roots([]float64{-1, 0, 0, 1})
	if err != nil {
		t.Fatalf("Roots() = %v", err)
	}
	third := 2 * math.Pi / 3
	verifyRoots(t, roots, []complex128{
		1,
		cmplx.Rect(1, third),
		cmplx.Rect(1, 2*third),
	}, 1e-10)
}

func TestRootsNonMonic(t *testing.T) {
	// 3x^2 - 12 = 0 -> ±2.
	roots, err := Roots([]float64{-12, 0, 3})
	if err != nil {
		t.Fatalf("Roots() = %v", err)
	}
	verifyRoots(t, roots, []complex128{2, -2}, 1e-10)
}

func TestRootsPropagatesValidation(t *testing.T) {
	if _, err := Roots([]float64{1, 2}); !errors.Is(err, ErrDegreeTooSmall) {
		t.Errorf("Roots(linear) error = %v, want ErrDegreeTooSmall", err)
	}
}
