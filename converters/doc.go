// Package converters provides two-way adapters between circuit
// representations and the dependency graph:
//   - linear operation sequence ⇄ dependency graph
//   - execution DAG (full-precedence) ⇄ dependency graph
//
// The sequence converters delegate to the graph builder and to the graph's
// deterministic linearization, so the round trip preserves original program
// order wherever no dependency forces a change.
//
// External execution DAGs plug in through the ExecutionDAG interface: any
// structure exposing a deterministic topological traversal whose nodes can
// produce operation records. A node that cannot be represented (e.g. a
// control-flow subroutine boundary) fails the conversion with
// ErrUnsupportedNode. WireDAG is the bundled reference implementation: a
// per-wire full-precedence DAG of a linear sequence.
package converters
