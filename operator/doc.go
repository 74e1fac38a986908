// Package operator provides dense complex128 matrix algebra for quantum
// operators: construction, multiplication, adjoints, Kronecker products, and
// the identity-padded embedding of a small operator into a larger joint
// qubit space.
//
// What:
//
//   - Dense: a row-major 2^k x 2^k complex matrix with safe accessors.
//   - Mul, Dagger, Kron: the algebra needed to compose operators.
//   - Embed: expand an operator acting on a subset of qubits to the full
//     Hilbert space of a sorted qubit universe (identity elsewhere).
//   - EqualApprox, IsUnitary: tolerance-based comparisons.
//
// Why:
//
//	The commutation oracle decides whether two gates commute by comparing
//	A·B against B·A over the union of their qubits. Everything it needs from
//	linear algebra lives here, behind error-returning APIs that never panic
//	on user input.
//
// Conventions:
//
//	Basis indices are bit strings over the qubit universe with universe[0]
//	as the most significant bit; an operation's own matrix uses the same
//	rule over its declared qubit order. Embed preserves this convention, so
//	any two operators embedded over the same universe are directly
//	comparable.
//
// Complexity:
//
//   - Mul:   O(n^3) for n x n operands
//   - Kron:  O((n*m)^2)
//   - Embed: O(N^2) for N = 2^len(universe)
//
// Errors:
//
//   - ErrBadDimension       non-positive or non-power-of-two dimension
//   - ErrOutOfRange         index outside matrix bounds
//   - ErrDimensionMismatch  incompatible operand shapes
//   - ErrBadUniverse        malformed acted/universe qubit lists
package operator
