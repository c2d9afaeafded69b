// SPDX-License-Identifier: MIT

package cloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks that m is a usable point cloud.
//
// Stage 1 (NotNil): nil interface or typed-nil *mat.Dense → ErrNilPoints.
// Stage 2 (Shape):  zero rows or zero columns → ErrEmpty.
// Stage 3 (Finite): any NaN/±Inf coordinate → ErrNaNInf (wrapped with its position).
//
// Complexity: O(n·d).
func Validate(m mat.Matrix) error {
	if isNil(m) {
		return ErrNilPoints
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrEmpty
	}
	for i := 0; i < r; i++ {
		for k := 0; k < c; k++ {
			v := m.At(i, k)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("point %d coord %d: %w", i, k, ErrNaNInf)
			}
		}
	}

	return nil
}

// SameDimension reports ErrDimensionMismatch when a and b live in different R^d.
// Both inputs must already be validated.
func SameDimension(a, b mat.Matrix) error {
	_, da := a.Dims()
	_, db := b.Dims()
	if da != db {
		return fmt.Errorf("dimension %d vs %d: %w", da, db, ErrDimensionMismatch)
	}

	return nil
}

// isNil catches both a nil interface and a typed-nil *mat.Dense, whose Dims would panic.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return true
	}

	return false
}
