// SPDX-License-Identifier: MIT
// Package matrix: builders and checks for symmetric square matrices.
//
// Distance matrices of undirected metric instances are symmetric with an
// exact zero diagonal. NewSymmetric evaluates the fill function only on the
// strict upper triangle and mirrors every value, so symmetry holds bit-for-bit
// rather than within a tolerance.
package matrix

import "math"

// NewSymmetric builds an n×n Dense matrix with a[i][i]=0 and
// a[i][j]=a[j][i]=fn(i,j) for every i<j.
//
// Returns ErrInvalidDimensions for n<=0, ErrNilFunc for a nil fn and
// ErrNaNInf (wrapped with the offending cell) when fn yields NaN or ±Inf.
//
// Complexity: O(n²) time, n*(n-1)/2 calls to fn.
func NewSymmetric(n int, fn func(i, j int) float64) (*Dense, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int     // upper-triangle indices
		v    float64 // fn(i, j)
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = fn(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewSymmetric", i, j, ErrNaNInf)
			}
			m.data[i*n+j] = v
			m.data[j*n+i] = v
		}
	}

	return m, nil
}

// IsSymmetric reports whether m is square and |a_ij − a_ji| ≤ tol for all i<j.
// A negative tol is treated as zero.
//
// Complexity: O(n²) on the upper triangle only.
func IsSymmetric(m Matrix, tol float64) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	if tol < 0 {
		tol = 0
	}

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return false
			}
			if aji, err = m.At(j, i); err != nil {
				return false
			}
			if math.Abs(aij-aji) > tol {
				return false
			}
		}
	}

	return true
}
