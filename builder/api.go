// SPDX-License-Identifier: MIT
// Package: qdag/builder
//
// api.go - the public entry point for dependency-graph construction.
//
// Design contract (strict):
//   - One orchestrator: Build(seq, opts...). Resolves config, appends nodes
//     in program order, wires edges per the reduction rule in reduce.go.
//   - Functional options (Option) resolve into an immutable config (no
//     global state).
//   - Determinism: same sequence, options, and oracle ⇒ identical graph.
//   - Safety: never panic; return sentinel errors; no partial graph escapes
//     on failure.

package builder

import (
	"fmt"

	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/depgraph"
)

// Build constructs the dependency graph of seq. Node order matches input
// order; edges record exactly the non-redundant non-commuting constraints.
//
// Errors are wrapped with the offending position; on any error the
// partially built graph is discarded and nil is returned.
// Complexity: O(n²) candidate scans for n operations; oracle calls only for
// overlapping candidates not already ordered through recorded edges, each
// paying the oracle's own cost (exponential in shared-support width on the
// exact path).
func Build(seq []*circuit.Operation, opts ...Option) (*depgraph.Graph, error) {
	cfg := newConfig(opts...)
	oracle := cfg.resolveOracle()

	g := depgraph.New()
	for pos, op := range seq {
		if op == nil {
			return nil, fmt.Errorf("Build: position %d: %w", pos, ErrNilOperation)
		}
		if err := cfg.checkUniverse(pos, op); err != nil {
			return nil, err
		}
		node, err := g.Append(op)
		if err != nil {
			return nil, fmt.Errorf("Build: position %d: %w", pos, err)
		}
		if err = wireEdges(g, node, oracle); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// checkUniverse enforces the fixed resource universe, when configured.
func (c config) checkUniverse(pos int, op *circuit.Operation) error {
	if c.qubitUniverse == nil && c.clbitUniverse == nil {
		return nil
	}
	if c.qubitUniverse != nil && !c.qubitUniverse.IsSuperset(op.QubitSet()) {
		return fmt.Errorf("Build: position %d (%q): qubits %v: %w",
			pos, op.Name(), op.Qubits(), ErrInvalidSequence)
	}
	if c.clbitUniverse != nil && !c.clbitUniverse.IsSuperset(op.ClbitSet()) {
		return fmt.Errorf("Build: position %d (%q): clbits %v: %w",
			pos, op.Name(), op.Clbits(), ErrInvalidSequence)
	}

	return nil
}
