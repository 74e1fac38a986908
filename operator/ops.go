// SPDX-License-Identifier: MIT

// Package operator - algebra on Dense matrices: Mul, Dagger, Kron,
// tolerance-based comparison, and identity-padded embedding.

package operator

import (
	"fmt"
	"math/cmplx"
	"sort"
)

// Mul returns the matrix product a·b.
// Complexity: O(n^3).
func Mul(a, b *Dense) (*Dense, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.n, a.n, b.n, b.n, ErrDimensionMismatch)
	}
	n := a.n
	out := &Dense{n: n, data: make([]complex128, n*n)}
	// ikj loop order keeps the inner walk contiguous in both b and out.
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.data[i*n+j] += aik * b.data[k*n+j]
			}
		}
	}

	return out, nil
}

// Dagger returns the conjugate transpose of m.
// Complexity: O(n^2).
func Dagger(m *Dense) *Dense {
	n := m.n
	out := &Dense{n: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[j*n+i] = cmplx.Conj(m.data[i*n+j])
		}
	}

	return out
}

// Kron returns the Kronecker product a⊗b, with a supplying the high-order
// basis bits. Complexity: O((Dim(a)*Dim(b))^2).
func Kron(a, b *Dense) *Dense {
	n := a.n * b.n
	out := &Dense{n: n, data: make([]complex128, n*n)}
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			aij := a.data[i*a.n+j]
			if aij == 0 {
				continue
			}
			for k := 0; k < b.n; k++ {
				for l := 0; l < b.n; l++ {
					out.data[(i*b.n+k)*n+(j*b.n+l)] = aij * b.data[k*b.n+l]
				}
			}
		}
	}

	return out
}

// EqualApprox reports whether a and b agree element-wise within tol
// (absolute difference). Matrices of different dimension never compare equal.
// Complexity: O(n^2).
func EqualApprox(a, b *Dense, tol float64) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}

	return true
}

// IsUnitary reports whether m·m† equals the identity within tol.
// Complexity: O(n^3).
func IsUnitary(m *Dense, tol float64) bool {
	md, err := Mul(m, Dagger(m))
	if err != nil {
		return false
	}
	id, err := Identity(m.n)
	if err != nil {
		return false
	}

	return EqualApprox(md, id, tol)
}

// Embed expands an operator m acting on the qubits listed in acted into the
// full space of universe, acting as identity on every other universe qubit.
//
// Contract:
//   - universe must be strictly ascending and contain every acted qubit;
//   - acted must be duplicate-free and satisfy Dim(m) == 2^len(acted);
//   - universe[0] carries the most significant basis bit, and acted[0]
//     the most significant bit of m's own basis (see package doc).
//
// The result is Dense of dimension 2^len(universe). Two operators embedded
// over the same universe are directly comparable element-wise.
// Complexity: O(4^len(universe)).
func Embed(m *Dense, acted, universe []int) (*Dense, error) {
	nu := len(universe)
	if nu == 0 || !sort.IntsAreSorted(universe) {
		return nil, fmt.Errorf("Embed: universe %v: %w", universe, ErrBadUniverse)
	}
	for i := 1; i < nu; i++ {
		if universe[i] == universe[i-1] {
			return nil, fmt.Errorf("Embed: duplicate universe qubit %d: %w", universe[i], ErrBadUniverse)
		}
	}
	if m.n != 1<<len(acted) {
		return nil, fmt.Errorf("Embed: %d acted qubits vs dimension %d: %w", len(acted), m.n, ErrDimensionMismatch)
	}

	// significance[q] = bit position of universe qubit q in the joint index.
	significance := make(map[int]uint, nu)
	for pos, q := range universe {
		significance[q] = uint(nu - 1 - pos)
	}

	// actedBits[p] = joint-index bit carrying acted[p]; actedMask covers them all.
	actedBits := make([]uint, len(acted))
	seen := make(map[int]struct{}, len(acted))
	actedMask := 0
	for p, q := range acted {
		sig, ok := significance[q]
		if !ok {
			return nil, fmt.Errorf("Embed: acted qubit %d not in universe: %w", q, ErrBadUniverse)
		}
		if _, dup := seen[q]; dup {
			return nil, fmt.Errorf("Embed: duplicate acted qubit %d: %w", q, ErrBadUniverse)
		}
		seen[q] = struct{}{}
		actedBits[p] = sig
		actedMask |= 1 << sig
	}

	// subIndex projects a joint basis index onto m's own basis, acted[0] first.
	subIndex := func(i int) int {
		sub := 0
		for _, sig := range actedBits {
			sub = sub<<1 | (i>>sig)&1
		}

		return sub
	}

	dim := 1 << nu
	restMask := (dim - 1) &^ actedMask
	out := &Dense{n: dim, data: make([]complex128, dim*dim)}
	for i := 0; i < dim; i++ {
		si := subIndex(i)
		for j := 0; j < dim; j++ {
			// Non-acted qubits must agree between row and column; the
			// operator is identity there.
			if i&restMask != j&restMask {
				continue
			}
			out.data[i*dim+j] = m.data[si*m.n+subIndex(j)]
		}
	}

	return out, nil
}
