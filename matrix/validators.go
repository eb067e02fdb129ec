// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf tags a sentinel with the validator name and, when
// i >= 0, the offending coordinates.
func validatorErrorf(tag string, i, j int, err error) error {
	if i < 0 {
		return fmt.Errorf("%s: %w", tag, err)
	}

	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateSquare ensures m is non-nil and square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", -1, -1, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", -1, -1, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric ensures |A[i,j] − A[j,i]| ≤ tol for every pair.
// A negative tol is used by absolute value.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²) over the strict upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", -1, -1, ErrNaNInf)
	}
	tol = math.Abs(tol)
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures |A[i,i]| ≤ tol.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal.
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		v, _ := m.At(i, i)
		if math.Abs(v) > math.Abs(tol) {
			return validatorErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative ensures every entry is ≥ 0 and not NaN.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegativeEntry.
func ValidateNonNegative(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNonNegative", -1, -1, ErrNilMatrix)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if math.IsNaN(v) {
				return validatorErrorf("ValidateNonNegative", i, j, ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf("ValidateNonNegative", i, j, ErrNegativeEntry)
			}
		}
	}

	return nil
}

// ValidateDissimilarity runs the checks every dissimilarity matrix must
// pass: square, zero diagonal, symmetric within tol, non-negative.
func ValidateDissimilarity(m Matrix, tol float64) error {
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return err
	}

	return ValidateNonNegative(m)
}
