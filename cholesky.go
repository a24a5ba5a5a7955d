package montecarlo

import "gonum.org/v1/gonum/mat"

// CorrelationTransform is the lower-triangular Cholesky factor L of the
// covariance matrix, with L·Lᵗ = Cov. Multiplying independent standard
// normal draws by Lᵗ imposes the empirical correlation and volatility
// structure onto them. Computed once per run and immutable thereafter.
type CorrelationTransform struct {
	l *mat.TriDense // N x N, lower
}

// Factorize computes the Cholesky factor of the covariance matrix.
//
// It fails with *NonPositiveDefiniteError when the matrix is not positive
// definite (numerically singular covariance, e.g. duplicate or perfectly
// collinear assets). The failure is surfaced to the caller, never coerced.
func Factorize(cov *mat.SymDense) (*CorrelationTransform, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, &NonPositiveDefiniteError{Size: cov.SymmetricDim()}
	}
	l := mat.NewTriDense(cov.SymmetricDim(), mat.Lower, nil)
	chol.LTo(l)
	return &CorrelationTransform{l: l}, nil
}

// L returns the lower-triangular factor.
func (t *CorrelationTransform) L() mat.Matrix { return t.l }

// Dim returns the dimension N of the factor.
func (t *CorrelationTransform) Dim() int {
	n, _ := t.l.Dims()
	return n
}
