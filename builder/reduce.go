// SPDX-License-Identifier: MIT
// Package builder: the reverse-scan reduction rule.
//
// For a newly inserted node, candidate predecessors are visited in reverse
// insertion order. A candidate that already reaches the node through
// recorded edges is transitively ordered and is skipped without an oracle
// call; a non-commuting candidate gets an edge, which also orders every
// ancestor of that candidate. An edge is therefore recorded exactly when no
// path enforces the constraint yet, so the surviving edge set is the
// transitive reduction of the non-commutation relation.

package builder

import (
	"fmt"

	"github.com/quantakit/qdag/commute"
	"github.com/quantakit/qdag/depgraph"
)

// wireEdges records the dependency edges of the freshly appended node.
func wireEdges(g *depgraph.Graph, node *depgraph.Node, oracle commute.Func) error {
	if len(node.Resources()) == 0 {
		return nil
	}
	// ordered holds the indices already constrained to precede node through
	// recorded edges: each blocker plus everything that reaches it.
	ordered := make(map[int]struct{})

	for i := node.Index() - 1; i >= 0; i-- {
		if _, done := ordered[i]; done {
			continue
		}
		prev, err := g.Node(i)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		if !sharesResource(node, prev) {
			continue
		}

		ok, err := oracle(node.Op(), prev.Op())
		if err != nil {
			return fmt.Errorf("Build: operations %d and %d: %w", i, node.Index(), err)
		}
		if ok {
			continue
		}

		if err = g.AddEdge(i, node.Index()); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		ordered[i] = struct{}{}
		anc, err := g.Ancestors(i)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		for _, a := range anc {
			ordered[a.Index()] = struct{}{}
		}
	}

	return nil
}

// sharesResource reports whether the two nodes touch a common qubit or
// clbit.
func sharesResource(a, b *depgraph.Node) bool {
	bq := b.Op().QubitSet()
	for _, q := range a.Op().Qubits() {
		if bq.Contains(q) {
			return true
		}
	}
	bc := b.Op().ClbitSet()
	for _, c := range a.Op().Clbits() {
		if bc.Contains(c) {
			return true
		}
	}

	return false
}
