// Package qdag builds commutation-aware dependency graphs of quantum-circuit
// operations: a DAG whose edges record only the orderings that must be
// respected because two operations fail to commute, rather than every
// ordering implied by program text.
//
// Why a dependency graph?
//
//	A linear circuit (or a full-precedence execution DAG) over-constrains
//	its operations: two gates acting on disjoint qubits, or two gates that
//	happen to commute on shared qubits, may be freely reordered. Recording
//	only the non-commuting pairs gives downstream passes (gate cancellation,
//	scheduling, depth reduction) the minimal set of constraints to work with.
//
// Under the hood, everything is organized in flat subpackages:
//
//	circuit/    — operation records: kinds, qubit/clbit supports, gate matrices
//	operator/   — dense complex matrix algebra for unitaries (Mul, Embed, ...)
//	commute/    — the commutation oracle and its pair cache
//	depgraph/   — the dependency DAG: edges, queries, deterministic linearization
//	builder/    — sequence → graph construction with transitive reduction
//	converters/ — sequence⇄graph and execution-DAG⇄graph adapters
//
// Quick ASCII example — H·q0, X·q0, Z·q1 yields a single edge:
//
//	    H(q0) ──→ X(q0)      Z(q1)
//
//	H and X share q0 and do not commute; Z acts elsewhere and stays free.
//
// Determinism is a contract throughout: identical inputs and options always
// produce identical graphs, and linearization reproduces original program
// order wherever no dependency forces otherwise.
//
//	go get github.com/quantakit/qdag
package qdag
