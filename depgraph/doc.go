// Package depgraph implements the dependency graph of circuit operations: a
// DAG whose nodes are operation records in insertion order and whose edges
// record only the ordering constraints between non-commuting operations.
//
// What:
//
//   - Graph: append-only node storage with direct predecessor/successor
//     sets per node and a per-resource frontier of the most recent
//     blocking node.
//   - Node: an operation record plus its stable insertion index.
//   - TopologicalOrder: deterministic linearization (Kahn's algorithm with
//     a min-index ready queue), reproducing original program order wherever
//     no edge forces otherwise.
//   - Ancestors, Descendants, Depth: reachability and longest-path queries
//     for downstream passes.
//
// Invariants:
//
//   - Edges always point from a lower to a higher index (AddEdge rejects
//     anything else with ErrBackEdge), so the graph is acyclic by
//     construction and needs no cycle detection.
//   - Nodes are appended only, never deleted; a node's index never changes
//     and is never reused. RemoveEdge exists for downstream optimization
//     passes; nothing in this module calls it during construction.
//
// Complexity:
//
//   - Append/AddEdge/RemoveEdge: O(1) beyond frontier upkeep
//   - TopologicalOrder:          O(V log V + E)
//   - Ancestors/Descendants:     O(V + E)
//   - Depth:                     O(V + E)
//
// Errors:
//
//   - ErrNilOperation  Append of a nil operation
//   - ErrNodeNotFound  index outside the node range
//   - ErrBackEdge      edge not strictly forward in insertion order
//   - ErrEdgeNotFound  RemoveEdge on an absent edge
package depgraph
