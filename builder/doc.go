// Package builder constructs a dependency graph from an ordered sequence of
// circuit operations by pairwise commutation testing.
//
// What:
//
//	Build processes operations in program order. For each new operation it
//	scans already-inserted nodes in reverse insertion order and records an
//	edge from every non-commuting predecessor that is not already implied
//	transitively: a candidate that reaches the new node through recorded
//	edges is skipped, every other overlapping candidate is tested. The
//	result is the transitively reduced dependency graph, with node order
//	matching input order.
//
// Why:
//
//	Downstream passes (gate cancellation, scheduling, depth reduction) need
//	the minimal ordering constraints, not the full program order; computing
//	them once at insertion keeps every later query cheap.
//
// Determinism:
//
//	Same sequence, options, and oracle produce the identical graph. The
//	oracle must be pure (see commute.Func); the default is the package
//	commute predicate at its default tolerance.
//
// Construction is all-or-nothing: any oracle or validation error aborts and
// no partially built graph is returned.
//
// Errors:
//
//   - ErrNilOperation     a nil operation in the sequence
//   - ErrInvalidSequence  an operation touches a resource outside the
//     configured universe (only when WithUniverse is set)
//   - oracle errors, wrapped with the offending pair's positions
package builder
