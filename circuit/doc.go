// Package circuit defines the operation-record model consumed by the
// dependency-graph layers: an immutable description of one circuit
// instruction with its kind, qubit/clbit supports, parameters, and (for
// unitary gates) a lazily computed matrix.
//
// What:
//
//   - Operation: name, Kind, ordered qubit/clbit supports (with mapset
//     views for set algebra), parameters, and a memoized Matrix() accessor.
//   - Kind: Unitary, Measurement, Barrier, Reset, Conditional, Other.
//   - Constructors for the standard gate set (H, X, CX, RZ, CCX, ...),
//     plus Measure, Reset, Barrier, and Conditional wrapping.
//
// Why:
//
//	The commutation oracle and graph builder treat instructions as opaque
//	records with known resource supports; only the exact matrix check ever
//	looks inside, via Matrix(). Parsing, register management, and
//	instruction-set validation stay with the surrounding circuit
//	representation.
//
// Errors:
//
//   - ErrNotApplicable   Matrix() on a non-unitary operation
//   - ErrUnknownGate     unitary operation whose name has no matrix entry
//   - ErrBadParams       wrong parameter count for a gate
//   - ErrNoQubits        gate-like operation with an empty qubit support
//   - ErrDuplicateQubit  repeated qubit in a support list
//   - ErrBadResource     negative qubit or clbit identifier
package circuit
