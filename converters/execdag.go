// Package converters: execution-DAG adapters.
//
// An execution DAG is the conventional full-precedence form of a circuit:
// every pair of operations sharing a wire is ordered, whether or not they
// commute. Converting it to a dependency graph first flattens it along its
// own topological order, then rebuilds edges by commutation testing.

package converters

import (
	"fmt"
	"sort"

	"github.com/quantakit/qdag/builder"
	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/depgraph"
)

// ExecutionNode is one node of an external execution DAG. Operation returns
// the node's operation record; an error marks a node the operation-record
// model cannot represent (reported as ErrUnsupportedNode by the converter).
type ExecutionNode interface {
	Operation() (*circuit.Operation, error)
}

// ExecutionDAG is the contract an external execution DAG must satisfy:
// a deterministic topological traversal of its operation nodes.
type ExecutionDAG interface {
	TopologicalNodes() ([]ExecutionNode, error)
}

// FromExecutionDAG converts an execution DAG to a dependency graph by
// flattening it along its own topological order and rebuilding the minimal
// edge set by commutation testing. A node that cannot produce an operation
// record fails the conversion with ErrUnsupportedNode; nothing partial is
// returned.
func FromExecutionDAG(dag ExecutionDAG, opts ...builder.Option) (*depgraph.Graph, error) {
	if dag == nil {
		return nil, fmt.Errorf("FromExecutionDAG: %w", ErrNilDAG)
	}
	nodes, err := dag.TopologicalNodes()
	if err != nil {
		return nil, fmt.Errorf("FromExecutionDAG: %w", err)
	}
	seq := make([]*circuit.Operation, len(nodes))
	for i, node := range nodes {
		op, opErr := node.Operation()
		if opErr != nil {
			return nil, fmt.Errorf("FromExecutionDAG: node %d: %w: %v", i, ErrUnsupportedNode, opErr)
		}
		seq[i] = op
	}

	return builder.Build(seq, opts...)
}

// GraphToExecutionDAG converts a dependency graph back to a full-precedence
// execution DAG, materialized as a WireDAG over the graph's deterministic
// linearization.
func GraphToExecutionDAG(g *depgraph.Graph) (*WireDAG, error) {
	if g == nil {
		return nil, fmt.Errorf("GraphToExecutionDAG: %w", ErrNilGraph)
	}
	seq, err := g.ToSequence()
	if err != nil {
		return nil, fmt.Errorf("GraphToExecutionDAG: %w", err)
	}

	return NewWireDAG(seq)
}

// WireDAG is a full-precedence execution DAG of a linear sequence: each
// operation is ordered after the previous operation on every wire (qubit or
// clbit) it touches, commuting or not. It is the bundled reference
// implementation of ExecutionDAG.
type WireDAG struct {
	ops   []*circuit.Operation
	edges [][2]int // (earlier, later) per-wire precedence pairs, deduplicated
}

// Compile-time conformance checks.
var (
	_ ExecutionDAG  = (*WireDAG)(nil)
	_ ExecutionNode = wireNode{}
)

// NewWireDAG builds the per-wire precedence structure of seq. Operations
// keep their sequence positions as node identities.
func NewWireDAG(seq []*circuit.Operation) (*WireDAG, error) {
	d := &WireDAG{ops: append([]*circuit.Operation(nil), seq...)}
	lastOnWire := make(map[depgraph.Resource]int)
	for i, op := range seq {
		if op == nil {
			return nil, fmt.Errorf("NewWireDAG: position %d: %w", i, circuit.ErrNilOperation)
		}
		// One edge per distinct predecessor, not per shared wire; emitted
		// in ascending order to keep Edges deterministic.
		fromSet := make(map[int]struct{})
		for _, r := range wiresOf(op) {
			if prev, ok := lastOnWire[r]; ok {
				fromSet[prev] = struct{}{}
			}
			lastOnWire[r] = i
		}
		froms := make([]int, 0, len(fromSet))
		for prev := range fromSet {
			froms = append(froms, prev)
		}
		sort.Ints(froms)
		for _, prev := range froms {
			d.edges = append(d.edges, [2]int{prev, i})
		}
	}

	return d, nil
}

// wiresOf lists every wire an operation touches, qubits first.
func wiresOf(op *circuit.Operation) []depgraph.Resource {
	out := make([]depgraph.Resource, 0, len(op.Qubits())+len(op.Clbits()))
	for _, q := range op.Qubits() {
		out = append(out, depgraph.QubitOf(q))
	}
	for _, c := range op.Clbits() {
		out = append(out, depgraph.ClbitOf(c))
	}

	return out
}

// Len returns the number of nodes.
func (d *WireDAG) Len() int { return len(d.ops) }

// Edges returns the per-wire precedence pairs. Read-only.
func (d *WireDAG) Edges() [][2]int { return d.edges }

// TopologicalNodes returns the nodes in sequence order, which is a valid
// topological order of the per-wire precedence relation.
func (d *WireDAG) TopologicalNodes() ([]ExecutionNode, error) {
	nodes := make([]ExecutionNode, len(d.ops))
	for i, op := range d.ops {
		nodes[i] = wireNode{op: op}
	}

	return nodes, nil
}

// wireNode adapts one operation as an ExecutionNode.
type wireNode struct {
	op *circuit.Operation
}

// Operation returns the node's operation record; WireDAG nodes are always
// representable.
func (n wireNode) Operation() (*circuit.Operation, error) { return n.op, nil }
