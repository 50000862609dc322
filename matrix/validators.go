// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and index checks.
//  - Return sentinels wrapped with a validator tag so call sites stay uniform.
//
// All checks are pure and allocate nothing beyond the error value.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures rows describe a V×V matrix.
//
// A nil slice is rejected with ErrNilMatrix; an empty, non-nil slice is the
// valid 0×0 matrix. Every row must have exactly len(rows) entries.
// Complexity: O(V).
func ValidateSquare(rows [][]int64) error {
	if rows == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf(
				fmt.Sprintf("ValidateSquare: row %d has %d columns, want %d", i, len(row), n),
				ErrNonSquare,
			)
		}
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex: %d not in [0,%d)", i, n), ErrOutOfRange)
	}

	return nil
}
