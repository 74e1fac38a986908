// SPDX-License-Identifier: MIT

// Package operator - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex buffer with the explicit
//     index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Hot algebra (Mul, Embed, EqualApprox in ops.go) operates on the flat
//     data slice directly; keep the offset formula in sync if storage changes.
//   - Dimensions are always powers of two: use Qubits() when you need the
//     qubit count instead of recomputing log2.

package operator

import (
	"fmt"
	"math/bits"
	"strings"
)

// Dense is a concrete row-major square complex matrix of qubit dimension.
//   - n holds the dimension (a positive power of two).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int          // dimension (power of two, >= 1)
	data []complex128 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// New creates an n×n zero matrix. The dimension must be a positive power of
// two, matching a whole number of qubits.
// Complexity: O(n^2) zero-init.
func New(n int) (*Dense, error) {
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadDimension)
	}

	return &Dense{n: n, data: make([]complex128, n*n)}, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n^2).
func Identity(n int) (*Dense, error) {
	m, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadDimension)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows creates a matrix from explicit row data. Rows must form a square
// matrix whose dimension is a positive power of two; the input is copied.
// Complexity: O(n^2).
func FromRows(rows [][]complex128) (*Dense, error) {
	n := len(rows)
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("FromRows: %d rows: %w", n, ErrBadDimension)
	}
	m := &Dense{n: n, data: make([]complex128, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Dim returns the matrix dimension.
func (m *Dense) Dim() int { return m.n }

// Qubits returns the number of qubits this operator acts on (log2 of Dim).
func (m *Dense) Qubits() int { return bits.TrailingZeros(uint(m.n)) }

// At returns the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.n+col], nil
}

// Set assigns the element at (row, col), or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.n+col] = v

	return nil
}

// Clone returns an independent deep copy of the matrix.
// Complexity: O(n^2).
func (m *Dense) Clone() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// String renders the matrix one row per line, for diagnostics and tests.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
