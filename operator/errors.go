// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...)); callers match with errors.Is. No public API
// panics on user-triggered conditions.

package operator

import "errors"

var (
	// ErrBadDimension is returned when a requested dimension is not a
	// positive power of two (operator spaces are qubit spaces).
	ErrBadDimension = errors.New("operator: dimension must be a positive power of two")

	// ErrOutOfRange indicates a row or column index outside matrix bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("operator: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul or EqualApprox on different shapes, or an operator
	// whose dimension does not match its declared qubit count.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrBadUniverse indicates a malformed qubit list passed to Embed:
	// unsorted or duplicated universe, duplicated acted qubits, or an acted
	// qubit absent from the universe.
	ErrBadUniverse = errors.New("operator: malformed qubit universe")
)
