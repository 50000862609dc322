// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Constructors and validators return these sentinels, optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX). Callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrNilMatrix is returned when a nil row set (or nil *Adjacency) is used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that the rows do not form a V×V matrix
	// (a row count that differs from a row length, or ragged rows).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a vertex index is outside [0, V).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidWeight is returned when an edge weight collides with the
	// absent sentinel and therefore cannot be stored.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrInvalidDimensions indicates a negative vertex count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")
)
